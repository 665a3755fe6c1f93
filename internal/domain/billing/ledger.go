// Package billing holds the order computation engine: the line-item ledger,
// the payment/status resolver and the invoice formatter. Everything here is
// a pure function over plain values.
package billing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/storefront-admin/internal/domain/enum"
)

// LineItem is one row of an order. Name is a snapshot of the catalog name at
// the time the line was added.
type LineItem struct {
	ItemID    string
	Name      string
	Quantity  float64
	UnitPrice float64
	Unit      string
}

// Total is never stored; it is recomputed from quantity and price.
func (l LineItem) Total() float64 {
	return l.Quantity * l.UnitPrice
}

// Order is the billing view of an order. TotalAmount, UnpaidAmount and
// Status are derived by Recompute.
type Order struct {
	ID           string
	InvoiceNo    string
	CustomerID   string
	CustomerName string
	Contact      string
	Date         *time.Time
	Items        []LineItem
	Discount     float64
	TotalAmount  float64
	PaidAmount   float64
	UnpaidAmount float64
	Status       enum.OrderStatus
	IsDummy      bool
}

// IsDraft reports whether the order has not been saved yet.
func (o Order) IsDraft() bool {
	return o.ID == ""
}

func (o Order) clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]LineItem, len(o.Items))
		copy(out.Items, o.Items)
	}
	if o.Date != nil {
		d := *o.Date
		out.Date = &d
	}
	return out
}

// CatalogItem is what a catalog lookup yields for a new line.
type CatalogItem struct {
	ID    string
	Name  string
	Price float64
	Unit  string
}

// Catalog resolves an item id or name.
type Catalog interface {
	Lookup(key string) (CatalogItem, bool)
}

// CatalogMap is an in-memory Catalog keyed by id. Names match
// case-insensitively.
type CatalogMap map[string]CatalogItem

func (m CatalogMap) Lookup(key string) (CatalogItem, bool) {
	if item, ok := m[key]; ok {
		return item, true
	}
	for _, item := range m {
		if strings.EqualFold(item.Name, key) {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// LineInput describes a line to add. Key is a catalog id or name. Nil
// Quantity defaults to 1; nil UnitPrice takes the catalog price.
type LineInput struct {
	Key       string
	Name      string
	Quantity  *float64
	UnitPrice *float64
	Unit      string
}

// AddLine appends a line and recomputes the order. It reports false and
// returns the order unchanged when the input matches no catalog item and
// carries no name of its own.
func AddLine(o Order, in LineInput, cat Catalog) (Order, bool) {
	line := LineItem{
		Name:     strings.TrimSpace(in.Name),
		Unit:     strings.TrimSpace(in.Unit),
		Quantity: 1,
	}

	var (
		match CatalogItem
		found bool
	)
	if cat != nil {
		if key := strings.TrimSpace(in.Key); key != "" {
			match, found = cat.Lookup(key)
		}
		if !found && line.Name != "" {
			match, found = cat.Lookup(line.Name)
		}
	}
	if !found && line.Name == "" {
		return o, false
	}

	if found {
		line.ItemID = match.ID
		line.UnitPrice = nonNegative(match.Price)
		if line.Name == "" {
			line.Name = match.Name
		}
		if line.Unit == "" {
			line.Unit = match.Unit
		}
	}
	if in.Quantity != nil {
		line.Quantity = nonNegative(*in.Quantity)
	}
	if in.UnitPrice != nil {
		line.UnitPrice = nonNegative(*in.UnitPrice)
	}

	out := o.clone()
	out.Items = append(out.Items, line)
	return Recompute(out), true
}

// Field names an editable column of a line.
type Field int

const (
	FieldName Field = iota
	FieldQuantity
	FieldUnitPrice
	FieldUnit
)

// ParseField maps wire names ("name", "quantity", "price", "unit") to a Field.
func ParseField(s string) (Field, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return FieldName, true
	case "quantity", "qty":
		return FieldQuantity, true
	case "price", "unit_price", "rate":
		return FieldUnitPrice, true
	case "unit":
		return FieldUnit, true
	}
	return 0, false
}

// UpdateLine replaces one field of one line. Numeric fields go through
// ParseAmount, so bad input becomes 0. An out-of-range index is a no-op.
func UpdateLine(o Order, index int, field Field, value string) Order {
	if index < 0 || index >= len(o.Items) {
		return o
	}
	out := o.clone()
	line := &out.Items[index]
	switch field {
	case FieldName:
		line.Name = value
	case FieldQuantity:
		line.Quantity = ParseAmount(value)
	case FieldUnitPrice:
		line.UnitPrice = ParseAmount(value)
	case FieldUnit:
		line.Unit = value
	default:
		return o
	}
	return Recompute(out)
}

// RemoveLine drops the line at index. Later lines shift down.
func RemoveLine(o Order, index int) Order {
	if index < 0 || index >= len(o.Items) {
		return o
	}
	out := o.clone()
	out.Items = append(out.Items[:index], out.Items[index+1:]...)
	return Recompute(out)
}

// Subtotal sums the line totals in plain float arithmetic. Rounding happens
// only when values are formatted.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total()
	}
	return sum
}

// Recompute refreshes every derived field of o from its lines, discount and
// paid amount.
func Recompute(o Order) Order {
	out := o.clone()
	s := Resolve(Subtotal(out.Items), out.Discount, out.PaidAmount)
	out.Discount = nonNegative(out.Discount)
	out.TotalAmount = s.TotalAmount
	out.PaidAmount = s.PaidAmount
	out.UnpaidAmount = s.UnpaidAmount
	out.Status = s.Status
	return out
}

// ParseAmount converts user-entered text to a non-negative number. Empty,
// malformed, non-finite and negative input all yield 0. Indian or
// international digit grouping is accepted.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return nonNegative(v)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
