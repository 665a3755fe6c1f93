package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/pkg/apperror"
	"github.com/sangkips/storefront-admin/pkg/pagination"
	"github.com/sangkips/storefront-admin/pkg/utils"
)

// CatalogSource resolves order line keys to catalog entries
type CatalogSource interface {
	Catalog(ctx context.Context, keys []string) (billing.CatalogMap, error)
}

// OrderService handles order-related operations. All totals are produced by
// the billing engine; nothing here sets a status directly.
type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	catalog      CatalogSource
	formatter    billing.Formatter
	now          func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	catalog CatalogSource,
	formatter billing.Formatter,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		catalog:      catalog,
		formatter:    formatter,
		now:          time.Now,
	}
}

// OrderLineInput is one requested line. ItemID may be a catalog id or name;
// Quantity defaults to 1 and Price to the catalog price.
type OrderLineInput struct {
	ItemID   string
	Name     string
	Quantity *float64
	Price    *float64
	Unit     string
}

// OrderInput is the full content of an order. Updates replace the whole
// order with it.
type OrderInput struct {
	CustomerID   *uuid.UUID
	CustomerName string // walk-in customer when CustomerID is nil
	Contact      string
	Date         *time.Time
	Items        []OrderLineInput
	Discount     float64
	PaidAmount   float64
	IsDummy      bool
}

// CreateOrder computes and stores a new order
func (s *OrderService) CreateOrder(ctx context.Context, input *OrderInput) (*entity.Order, error) {
	draft, err := s.customerSnapshot(ctx, input, billing.Order{})
	if err != nil {
		return nil, err
	}
	b, err := s.compute(ctx, input, draft)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{InvoiceNo: utils.GenerateInvoiceNo(s.now())}
	order.Apply(b)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// UpdateOrder replaces an order's content. The customer snapshot is kept
// unless the order is moved to a different customer.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *OrderInput) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	draft, err := s.customerSnapshot(ctx, input, order.ToBilling())
	if err != nil {
		return nil, err
	}
	b, err := s.compute(ctx, input, draft)
	if err != nil {
		return nil, err
	}

	order.Apply(b)
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

// RecordPayment adds amount to what has been paid. Anything beyond the
// outstanding balance is dropped, never kept as credit.
func (s *OrderService) RecordPayment(ctx context.Context, id uuid.UUID, amount float64) (*entity.Order, error) {
	if amount <= 0 {
		return nil, apperror.NewFieldError("amount", "amount must be greater than zero")
	}
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	b := order.ToBilling()
	b.PaidAmount += amount
	order.Apply(billing.Recompute(b))
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	return order, nil
}

// GetOrder retrieves an order with its lines
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders; the default filter hides dummy orders
func (s *OrderService) ListOrders(ctx context.Context, params *pagination.PaginationParams, filter repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetOrder(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// OrderPreview is a computed but unsaved order
type OrderPreview struct {
	TotalAmount  float64             `json:"total_amount"`
	PaidAmount   float64             `json:"paid_amount"`
	UnpaidAmount float64             `json:"unpaid_amount"`
	Status       string              `json:"status"`
	Invoice      billing.InvoiceView `json:"invoice"`
}

// PreviewOrder runs the billing engine on input without saving anything.
// The invoice carries today's date only as a print stamp.
func (s *OrderService) PreviewOrder(ctx context.Context, input *OrderInput) (*OrderPreview, error) {
	draft, err := s.customerSnapshot(ctx, input, billing.Order{})
	if err != nil {
		return nil, err
	}
	b, err := s.compute(ctx, input, draft)
	if err != nil {
		return nil, err
	}
	return &OrderPreview{
		TotalAmount:  b.TotalAmount,
		PaidAmount:   b.PaidAmount,
		UnpaidAmount: b.UnpaidAmount,
		Status:       b.Status.String(),
		Invoice:      s.formatter.Format(b),
	}, nil
}

// OrderSummary totals a set of orders
type OrderSummary struct {
	Orders      int64   `json:"orders"`
	Pending     int64   `json:"pending"`
	Completed   int64   `json:"completed"`
	Billed      float64 `json:"billed"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
	Display     struct {
		Billed      string `json:"billed"`
		Collected   string `json:"collected"`
		Outstanding string `json:"outstanding"`
	} `json:"display"`
}

// Summary aggregates the orders matching filter
func (s *OrderService) Summary(ctx context.Context, filter repository.OrderFilterParams) (*OrderSummary, error) {
	agg, err := s.orderRepo.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &OrderSummary{
		Orders:      agg.Orders,
		Pending:     agg.Pending,
		Completed:   agg.Completed,
		Billed:      entity.FromPaise(agg.Billed),
		Collected:   entity.FromPaise(agg.Collected),
		Outstanding: entity.FromPaise(agg.Outstanding),
	}
	out.Display.Billed = billing.FormatCurrency(out.Billed)
	out.Display.Collected = billing.FormatCurrency(out.Collected)
	out.Display.Outstanding = billing.FormatCurrency(out.Outstanding)
	return out, nil
}

// customerSnapshot fills the customer fields of base. The stored name and
// contact are reused when the customer has not changed.
func (s *OrderService) customerSnapshot(ctx context.Context, input *OrderInput, base billing.Order) (billing.Order, error) {
	if input.CustomerID == nil {
		name := strings.TrimSpace(input.CustomerName)
		if name == "" {
			return base, apperror.NewFieldError("customer_id", "customer_id or customer_name is required")
		}
		base.CustomerID = ""
		base.CustomerName = name
		base.Contact = strings.TrimSpace(input.Contact)
		return base, nil
	}

	if base.CustomerID == input.CustomerID.String() {
		return base, nil
	}
	customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
	if err != nil {
		return base, err
	}
	if customer == nil {
		return base, apperror.NewFieldError("customer_id", "customer does not exist")
	}
	base.CustomerID = customer.ID.String()
	base.CustomerName = customer.Name
	base.Contact = customer.Contact()
	return base, nil
}

// compute rebuilds base's lines from input through the ledger and resolves
// the totals.
func (s *OrderService) compute(ctx context.Context, input *OrderInput, base billing.Order) (billing.Order, error) {
	if len(input.Items) == 0 {
		return base, apperror.NewFieldError("items", "at least one item is required")
	}
	if input.Discount < 0 {
		return base, apperror.NewFieldError("discount", "discount cannot be negative")
	}

	cat, err := s.catalog.Catalog(ctx, lo.FlatMap(input.Items, func(l OrderLineInput, _ int) []string {
		return []string{l.ItemID, l.Name}
	}))
	if err != nil {
		return base, fmt.Errorf("load catalog: %w", err)
	}

	base.Items = nil
	base.Date = input.Date
	base.Discount = input.Discount
	base.PaidAmount = input.PaidAmount
	base.IsDummy = input.IsDummy

	var fieldErrs []apperror.FieldError
	for i, line := range input.Items {
		next, ok := billing.AddLine(base, billing.LineInput{
			Key:       line.ItemID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			Unit:      line.Unit,
		}, cat)
		if !ok {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].item_id", i),
				Message: "item not found in catalog and no name given",
			})
			continue
		}
		base = next
	}
	if len(fieldErrs) > 0 {
		return base, apperror.NewValidationError(fieldErrs)
	}
	return billing.Recompute(base), nil
}
