package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/domain/enum"
	"github.com/sangkips/storefront-admin/pkg/pagination"
)

// OrderFilterParams narrows order listings. The zero value lists every
// non-dummy order.
type OrderFilterParams struct {
	Filter     enum.OrderFilter
	CustomerID *uuid.UUID
	Search     string
	From       *time.Time
	To         *time.Time
}

// OrderSummary aggregates a set of orders. Amounts are in paise.
type OrderSummary struct {
	Orders      int64
	Pending     int64
	Completed   int64
	Billed      int64
	Collected   int64
	Outstanding int64
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// GetByID loads the order with its lines in display order; nil, nil if missing
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error)
	// Update saves the order and replaces all of its lines
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, filter OrderFilterParams) ([]entity.Order, int64, error)
	// ListAll returns every matching order with lines, newest first
	ListAll(ctx context.Context, filter OrderFilterParams) ([]entity.Order, error)
	Summary(ctx context.Context, filter OrderFilterParams) (*OrderSummary, error)
}
