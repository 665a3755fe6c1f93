package request

import (
	"strconv"
	"strings"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
)

// Amount is a money or quantity field that accepts either a JSON number or
// a string such as "1,250.50". Anything unparseable or negative reads as 0.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*a = Amount(billing.ParseAmount(s))
	return nil
}

// Float returns the value as float64
func (a Amount) Float() float64 {
	return float64(a)
}

// FloatPtr returns nil for a nil Amount
func (a *Amount) FloatPtr() *float64 {
	if a == nil {
		return nil
	}
	v := float64(*a)
	return &v
}
