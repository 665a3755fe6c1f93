package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// OrderStatus is the settlement state of an order. It is derived from the
// unpaid amount and never set by hand.
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusCompleted OrderStatus = 1
)

var orderStatusNames = [...]string{"Pending", "Completed"}

func (s OrderStatus) String() string {
	if s < 0 || int(s) >= len(orderStatusNames) {
		return orderStatusNames[OrderStatusPending]
	}
	return orderStatusNames[s]
}

// ParseOrderStatus accepts the display names used on the wire.
func ParseOrderStatus(str string) (OrderStatus, error) {
	switch str {
	case "Pending", "pending":
		return OrderStatusPending, nil
	case "Completed", "completed":
		return OrderStatusCompleted, nil
	}
	return OrderStatusPending, fmt.Errorf("unknown order status %q", str)
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if i != int(OrderStatusPending) && i != int(OrderStatusCompleted) {
			return fmt.Errorf("unknown order status %d", i)
		}
		*s = OrderStatus(i)
		return nil
	}
	parsed, err := ParseOrderStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = OrderStatusPending
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	case []byte:
		return s.scanString(string(v))
	case string:
		return s.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into OrderStatus", value)
	}
	return nil
}

func (s *OrderStatus) scanString(v string) error {
	if i, err := strconv.Atoi(v); err == nil {
		*s = OrderStatus(i)
		return nil
	}
	parsed, err := ParseOrderStatus(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
