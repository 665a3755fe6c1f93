package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
	"github.com/sangkips/storefront-admin/internal/domain/enum"
)

// DateLayout is the wire format of order dates
const DateLayout = "2006-01-02"

// Order represents a bill. CustomerName and Contact are copied from the
// customer when the order is created and are not kept in sync afterwards.
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo    string           `gorm:"size:50;uniqueIndex;not null" json:"invoice_no"`
	CustomerID   *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id"`
	CustomerName string           `gorm:"size:255" json:"customer_name"`
	Contact      string           `gorm:"size:50" json:"contact"`
	Date         *time.Time       `gorm:"type:date;index" json:"-"`
	Discount     int64            `gorm:"default:0" json:"-"` // paise
	TotalAmount  int64            `gorm:"default:0" json:"-"` // paise
	PaidAmount   int64            `gorm:"default:0" json:"-"` // paise
	UnpaidAmount int64            `gorm:"default:0" json:"-"` // paise
	Status       enum.OrderStatus `gorm:"default:0;index" json:"status"`
	IsDummy      bool             `gorm:"default:false;index" json:"is_dummy"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// MarshalJSON converts paise to rupees and the date to YYYY-MM-DD
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	var date *string
	if o.Date != nil {
		s := o.Date.Format(DateLayout)
		date = &s
	}
	items := o.Items
	if items == nil {
		items = []OrderItem{}
	}
	a := Alias(o)
	a.Items = items
	return json.Marshal(&struct {
		Alias
		Date         *string `json:"date"`
		Discount     float64 `json:"discount"`
		TotalAmount  float64 `json:"total_amount"`
		PaidAmount   float64 `json:"paid_amount"`
		UnpaidAmount float64 `json:"unpaid_amount"`
	}{
		Alias:        a,
		Date:         date,
		Discount:     FromPaise(o.Discount),
		TotalAmount:  FromPaise(o.TotalAmount),
		PaidAmount:   FromPaise(o.PaidAmount),
		UnpaidAmount: FromPaise(o.UnpaidAmount),
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ToBilling maps the stored order onto the billing engine's model.
func (o *Order) ToBilling() billing.Order {
	b := billing.Order{
		InvoiceNo:    o.InvoiceNo,
		CustomerName: o.CustomerName,
		Contact:      o.Contact,
		Discount:     FromPaise(o.Discount),
		TotalAmount:  FromPaise(o.TotalAmount),
		PaidAmount:   FromPaise(o.PaidAmount),
		UnpaidAmount: FromPaise(o.UnpaidAmount),
		Status:       o.Status,
		IsDummy:      o.IsDummy,
		Items:        make([]billing.LineItem, 0, len(o.Items)),
	}
	if o.ID != uuid.Nil {
		b.ID = o.ID.String()
	}
	if o.CustomerID != nil {
		b.CustomerID = o.CustomerID.String()
	}
	if o.Date != nil {
		d := *o.Date
		b.Date = &d
	}
	for _, it := range o.Items {
		b.Items = append(b.Items, it.toBilling())
	}
	return b
}

// Apply copies a computed billing order onto o, replacing all lines. The id,
// invoice number and timestamps of o are kept. Status follows the unpaid
// amount as stored in paise.
func (o *Order) Apply(b billing.Order) {
	o.CustomerID = parseOptionalUUID(b.CustomerID)
	o.CustomerName = b.CustomerName
	o.Contact = b.Contact
	o.Date = nil
	if b.Date != nil {
		d := truncateDate(*b.Date)
		o.Date = &d
	}
	o.Discount = ToPaise(b.Discount)
	o.TotalAmount = ToPaise(b.TotalAmount)
	o.PaidAmount = ToPaise(b.PaidAmount)
	o.UnpaidAmount = ToPaise(b.UnpaidAmount)
	o.Status = enum.OrderStatusPending
	if o.UnpaidAmount == 0 {
		o.Status = enum.OrderStatusCompleted
	}
	o.IsDummy = b.IsDummy

	o.Items = make([]OrderItem, 0, len(b.Items))
	for i, line := range b.Items {
		o.Items = append(o.Items, orderItemFromBilling(o.ID, i, line))
	}
}

// OrderItem is one stored line of an order
type OrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"-"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Position  int        `gorm:"not null;default:0" json:"-"`
	ItemID    *uuid.UUID `gorm:"type:uuid;index" json:"item_id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Quantity  float64    `gorm:"not null;default:0" json:"quantity"`
	Price     int64      `gorm:"not null;default:0" json:"-"` // paise
	Unit      string     `gorm:"size:50" json:"unit"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// MarshalJSON exposes price and line total in rupees
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(oi),
		Price: FromPaise(oi.Price),
		Total: oi.toBilling().Total(),
	})
}

// BeforeCreate generates a UUID before creating a new order line
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

func (oi OrderItem) toBilling() billing.LineItem {
	line := billing.LineItem{
		Name:      oi.Name,
		Quantity:  oi.Quantity,
		UnitPrice: FromPaise(oi.Price),
		Unit:      oi.Unit,
	}
	if oi.ItemID != nil {
		line.ItemID = oi.ItemID.String()
	}
	return line
}

func orderItemFromBilling(orderID uuid.UUID, pos int, line billing.LineItem) OrderItem {
	return OrderItem{
		OrderID:  orderID,
		Position: pos,
		ItemID:   parseOptionalUUID(line.ItemID),
		Name:     line.Name,
		Quantity: line.Quantity,
		Price:    ToPaise(line.UnitPrice),
		Unit:     line.Unit,
	}
}

func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
