package handler

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sangkips/storefront-admin/internal/config"
)

// Module provides the HTTP handlers
var Module = fx.Provide(
	func(db *gorm.DB, cfg *config.Config) *HealthHandler {
		return NewHealthHandler(db, cfg.App.Name)
	},
	NewCustomerHandler,
	NewItemHandler,
	NewOrderHandler,
	NewInvoiceHandler,
)
