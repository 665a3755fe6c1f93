package service

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sangkips/storefront-admin/internal/config"
	"github.com/sangkips/storefront-admin/internal/domain/billing"
	"github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/pkg/printer"
)

// Module provides the application services and what they need beyond
// repositories: the invoice formatter and the receipt printer.
var Module = fx.Provide(
	NewCustomerService,
	NewItemService,
	func(s *ItemService) CatalogSource { return s },
	NewOrderService,
	newFormatter,
	newPrinter,
	newInvoiceService,
)

func newFormatter(cfg *config.Config) (billing.Formatter, error) {
	shop, err := cfg.Shop.ShopProfile()
	if err != nil {
		return billing.Formatter{}, err
	}
	return billing.NewFormatter(shop), nil
}

func newPrinter(cfg *config.Config) (printer.Printer, error) {
	return printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
}

func newInvoiceService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	formatter billing.Formatter,
	p printer.Printer,
	log *slog.Logger,
) *InvoiceService {
	return NewInvoiceService(orderRepo, formatter, p, cfg.Printer.Width, log)
}
