package enum

import "strings"

// OrderFilter selects which orders a listing returns. The zero value is All,
// which hides dummy orders.
type OrderFilter string

const (
	OrderFilterAll       OrderFilter = "All"
	OrderFilterPending   OrderFilter = "Pending"
	OrderFilterCompleted OrderFilter = "Completed"
	OrderFilterDummy     OrderFilter = "Dummy"
)

// ParseOrderFilter is case-insensitive and falls back to All.
func ParseOrderFilter(s string) OrderFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return OrderFilterPending
	case "completed":
		return OrderFilterCompleted
	case "dummy":
		return OrderFilterDummy
	}
	return OrderFilterAll
}

// Status reports the status the filter narrows to, if any.
func (f OrderFilter) Status() (OrderStatus, bool) {
	switch f {
	case OrderFilterPending:
		return OrderStatusPending, true
	case OrderFilterCompleted:
		return OrderStatusCompleted, true
	}
	return OrderStatusPending, false
}
