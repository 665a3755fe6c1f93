package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/domain/enum"
	"github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/pkg/pagination"
)

type memOrderRepository struct {
	orders map[uuid.UUID]entity.Order
	saves  int
}

func newMemOrderRepository() *memOrderRepository {
	return &memOrderRepository{orders: map[uuid.UUID]entity.Order{}}
}

func (r *memOrderRepository) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	r.saves++
	return nil
}

func (r *memOrderRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	return &o, nil
}

func (r *memOrderRepository) GetByInvoiceNo(_ context.Context, invoiceNo string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.InvoiceNo == invoiceNo {
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepository) Update(_ context.Context, order *entity.Order) error {
	r.orders[order.ID] = *order
	r.saves++
	return nil
}

func (r *memOrderRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *memOrderRepository) matching(filter repository.OrderFilterParams) []entity.Order {
	status, byStatus := filter.Filter.Status()
	var out []entity.Order
	for _, o := range r.orders {
		if filter.Filter == enum.OrderFilterDummy {
			if !o.IsDummy {
				continue
			}
		} else if o.IsDummy {
			continue
		}
		if byStatus && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNo < out[j].InvoiceNo })
	return out
}

func (r *memOrderRepository) List(_ context.Context, _ *pagination.PaginationParams, filter repository.OrderFilterParams) ([]entity.Order, int64, error) {
	out := r.matching(filter)
	return out, int64(len(out)), nil
}

func (r *memOrderRepository) ListAll(_ context.Context, filter repository.OrderFilterParams) ([]entity.Order, error) {
	return r.matching(filter), nil
}

func (r *memOrderRepository) Summary(_ context.Context, filter repository.OrderFilterParams) (*repository.OrderSummary, error) {
	var s repository.OrderSummary
	for _, o := range r.matching(filter) {
		s.Orders++
		if o.UnpaidAmount == 0 {
			s.Completed++
		} else {
			s.Pending++
		}
		s.Billed += o.TotalAmount
		s.Collected += o.PaidAmount
		s.Outstanding += o.UnpaidAmount
	}
	return &s, nil
}

type memCustomerRepository struct {
	customers map[uuid.UUID]entity.Customer
}

func newMemCustomerRepository(seed ...entity.Customer) *memCustomerRepository {
	r := &memCustomerRepository{customers: map[uuid.UUID]entity.Customer{}}
	for _, c := range seed {
		r.customers[c.ID] = c
	}
	return r
}

func (r *memCustomerRepository) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCustomerRepository) GetByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone != nil && *c.Phone == phone {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *memCustomerRepository) List(_ context.Context, _ *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

// stubCatalog only returns entries one of the keys asks for, by id or name.
type stubCatalog billing.CatalogMap

func (c stubCatalog) Catalog(_ context.Context, keys []string) (billing.CatalogMap, error) {
	out := billing.CatalogMap{}
	for _, key := range keys {
		if key == "" {
			continue
		}
		for id, item := range c {
			if id == key || strings.EqualFold(item.Name, key) {
				out[id] = item
			}
		}
	}
	return out, nil
}

type stubItemRepository struct {
	repository.ItemRepository
	getByIDsFn    func(context.Context, []uuid.UUID) ([]entity.Item, error)
	findByNamesFn func(context.Context, []string) ([]entity.Item, error)
	getByCodeFn   func(context.Context, string) (*entity.Item, error)
	createBatchFn func(context.Context, []entity.Item) error
}

func (s stubItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	return s.getByIDsFn(ctx, ids)
}

func (s stubItemRepository) FindByNames(ctx context.Context, names []string) ([]entity.Item, error) {
	return s.findByNamesFn(ctx, names)
}

func (s stubItemRepository) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	return s.getByCodeFn(ctx, code)
}

func (s stubItemRepository) CreateBatch(ctx context.Context, items []entity.Item) error {
	return s.createBatchFn(ctx, items)
}

type recordingPrinter struct {
	kind      string
	connected bool
	err       error
	jobs      [][]byte
}

func (p *recordingPrinter) Print(_ context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *recordingPrinter) IsConnected(context.Context) bool { return p.connected }

func (p *recordingPrinter) Kind() string { return p.kind }
