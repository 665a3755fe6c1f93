package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/pkg/apperror"
	"github.com/sangkips/storefront-admin/pkg/pagination"
	"github.com/sangkips/storefront-admin/pkg/utils"
)

// ItemService manages the catalog
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Code  string
	Name  string
	Price float64
	Unit  string
}

// CreateItem adds a catalog item, generating a code when none is given
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewFieldError("name", "name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewFieldError("price", "price cannot be negative")
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		code = utils.GenerateItemCode(name)
	} else if err := s.ensureCodeFree(ctx, code, uuid.Nil); err != nil {
		return nil, err
	}

	item := &entity.Item{
		Code:  code,
		Name:  name,
		Price: entity.ToPaise(input.Price),
		Unit:  strings.TrimSpace(input.Unit),
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists catalog items matching search
func (s *ItemService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	ID    uuid.UUID
	Code  *string
	Name  *string
	Price *float64
	Unit  *string
}

// UpdateItem changes a catalog item. Existing order lines keep their own
// copy of name and price.
func (s *ItemService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*input.Code))
		if code == "" {
			return nil, apperror.NewFieldError("code", "code cannot be empty")
		}
		if err := s.ensureCodeFree(ctx, code, item.ID); err != nil {
			return nil, err
		}
		item.Code = code
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewFieldError("name", "name cannot be empty")
		}
		item.Name = name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewFieldError("price", "price cannot be negative")
		}
		item.Price = entity.ToPaise(*input.Price)
	}
	if input.Unit != nil {
		item.Unit = strings.TrimSpace(*input.Unit)
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// Catalog loads the catalog entries that keys (ids or names) can refer to,
// with one query per kind of key.
func (s *ItemService) Catalog(ctx context.Context, keys []string) (billing.CatalogMap, error) {
	keys = lo.Uniq(lo.Compact(lo.Map(keys, func(k string, _ int) string {
		return strings.TrimSpace(k)
	})))
	ids := lo.FilterMap(keys, func(k string, _ int) (uuid.UUID, bool) {
		id, err := uuid.Parse(k)
		return id, err == nil
	})
	names := lo.Reject(keys, func(k string, _ int) bool {
		_, err := uuid.Parse(k)
		return err == nil
	})

	byID, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byName, err := s.itemRepo.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	return lo.SliceToMap(append(byID, byName...), func(it entity.Item) (string, billing.CatalogItem) {
		return it.ID.String(), it.CatalogEntry()
	}), nil
}

func (s *ItemService) ensureCodeFree(ctx context.Context, code string, self uuid.UUID) error {
	existing, err := s.itemRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return apperror.NewConflictError("An item with this code already exists")
	}
	return nil
}
