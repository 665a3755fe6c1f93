package request

import "github.com/google/uuid"

// OrderLineRequest is one line of an order. ItemID may be a catalog item id
// or name; a line with only a name and price is billed as a custom item.
type OrderLineRequest struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name" binding:"max=255"`
	Quantity *Amount `json:"quantity"`
	Price    *Amount `json:"price"`
	Unit     string  `json:"unit" binding:"max=50"`
}

// OrderRequest creates or replaces an order
type OrderRequest struct {
	CustomerID   *uuid.UUID         `json:"customer_id"`
	CustomerName string             `json:"customer_name" binding:"max=255"`
	Contact      string             `json:"contact" binding:"max=50"`
	Date         *string            `json:"date"`
	Items        []OrderLineRequest `json:"items" binding:"dive"`
	Discount     Amount             `json:"discount"`
	PaidAmount   Amount             `json:"paid_amount"`
	IsDummy      bool               `json:"is_dummy"`
}

// PaymentRequest records a payment against an order
type PaymentRequest struct {
	Amount Amount `json:"amount"`
}

// OrderListQuery holds the order listing query parameters
type OrderListQuery struct {
	Filter     string `form:"filter"`
	CustomerID string `form:"customer_id"`
	Search     string `form:"search"`
	From       string `form:"from"`
	To         string `form:"to"`
	Format     string `form:"format"`
}
