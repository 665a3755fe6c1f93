package repository

import (
	"context"

	"github.com/sangkips/storefront-admin/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves a stored response for key on endpoint
	GetByKey(ctx context.Context, key, endpoint string) (*entity.IdempotencyKey, error)
	// Reserve inserts ikey unless its key and endpoint are taken and reports
	// whether the row was inserted
	Reserve(ctx context.Context, ikey *entity.IdempotencyKey) (bool, error)
	// Complete stores the response of a reserved key
	Complete(ctx context.Context, key, endpoint string, code int, body string) error
	// Release drops a reservation that never got a response
	Release(ctx context.Context, key, endpoint string) error
	// DeleteExpired removes expired keys
	DeleteExpired(ctx context.Context) error
}
