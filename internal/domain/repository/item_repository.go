package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/pkg/pagination"
)

// ItemRepository defines the interface for catalog item operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	CreateBatch(ctx context.Context, items []entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error)
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	// FindByNames matches names case-insensitively
	FindByNames(ctx context.Context, names []string) ([]entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Item, int64, error)
}
