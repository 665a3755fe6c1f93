package repository

import "go.uber.org/fx"

// Module provides the gorm-backed repositories
var Module = fx.Provide(
	NewCustomerRepository,
	NewItemRepository,
	NewOrderRepository,
	NewIdempotencyRepository,
)
