package di

import (
	"go.uber.org/fx"

	"github.com/sangkips/storefront-admin/internal/app"
	"github.com/sangkips/storefront-admin/internal/application/service"
	"github.com/sangkips/storefront-admin/internal/config"
	"github.com/sangkips/storefront-admin/internal/infrastructure/database"
	"github.com/sangkips/storefront-admin/internal/infrastructure/repository"
	"github.com/sangkips/storefront-admin/internal/logger"
	"github.com/sangkips/storefront-admin/internal/presentation/http/handler"
	"github.com/sangkips/storefront-admin/internal/presentation/http/routes"
)

// Module assembles the whole application graph. opts are appended last so
// callers can fx.Replace or fx.Decorate any part of it.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		database.Module,
		repository.Module,
		service.Module,
		handler.Module,
		routes.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
