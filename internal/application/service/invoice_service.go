package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/internal/infrastructure/document"
	"github.com/sangkips/storefront-admin/pkg/apperror"
	"github.com/sangkips/storefront-admin/pkg/printer"
)

// InvoiceService renders stored orders as invoices, receipts and exports.
type InvoiceService struct {
	orderRepo repository.OrderRepository
	formatter billing.Formatter
	printer   printer.Printer
	width     int
	log       *slog.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	orderRepo repository.OrderRepository,
	formatter billing.Formatter,
	p printer.Printer,
	width int,
	log *slog.Logger,
) *InvoiceService {
	if p == nil {
		p = printer.NewNullPrinter()
	}
	return &InvoiceService{
		orderRepo: orderRepo,
		formatter: formatter,
		printer:   p,
		width:     width,
		log:       log,
	}
}

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Invoice returns the formatted view of an order
func (s *InvoiceService) Invoice(ctx context.Context, id uuid.UUID) (billing.InvoiceView, error) {
	order, err := s.order(ctx, id)
	if err != nil {
		return billing.InvoiceView{}, err
	}
	return s.formatter.Format(order.ToBilling()), nil
}

// InvoicePDF renders an order as an A4 PDF
func (s *InvoiceService) InvoicePDF(ctx context.Context, id uuid.UUID) (*File, error) {
	view, err := s.Invoice(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := document.InvoicePDF(view)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        document.InvoiceFilename(view, "pdf"),
		ContentType: document.ContentTypePDF,
		Data:        data,
	}, nil
}

// PrintResult describes a receipt print job
type PrintResult struct {
	Printed bool                `json:"printed"`
	Printer string              `json:"printer"`
	Invoice billing.InvoiceView `json:"invoice"`
}

// Print sends an order's receipt to the thermal printer. With no printer
// configured the job is skipped and only the view is returned.
func (s *InvoiceService) Print(ctx context.Context, id uuid.UUID) (*PrintResult, error) {
	view, err := s.Invoice(ctx, id)
	if err != nil {
		return nil, err
	}
	result := &PrintResult{Printer: s.printer.Kind(), Invoice: view}
	if s.printer.Kind() == "none" {
		return result, nil
	}

	if err := s.printer.Print(ctx, document.Receipt(view, s.width)); err != nil {
		s.log.WarnContext(ctx, "receipt print failed",
			slog.String("order_id", id.String()),
			slog.String("printer", s.printer.Kind()),
			slog.String("error", err.Error()),
		)
		return nil, apperror.ErrPrinterOffline
	}
	result.Printed = true
	return result, nil
}

// PrinterStatus reports the configured printer
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// PrinterStatus checks whether the printer is reachable
func (s *InvoiceService) PrinterStatus(ctx context.Context) *PrinterStatus {
	kind := s.printer.Kind()
	return &PrinterStatus{
		Configured: kind != "none",
		Connected:  s.printer.IsConnected(ctx),
		Type:       kind,
		Width:      s.width,
	}
}

// TestPrint prints a sample receipt for a fake order
func (s *InvoiceService) TestPrint(ctx context.Context) error {
	if s.printer.Kind() == "none" {
		return apperror.NewBadRequestError("no printer configured")
	}
	now := time.Now()
	one := 1.0
	sample, ok := billing.AddLine(billing.Order{
		CustomerName: "Printer Test",
		Date:         &now,
		IsDummy:      true,
	}, billing.LineInput{Name: "Test Item", Quantity: &one, UnitPrice: &one}, nil)
	if !ok {
		return errors.New("build test receipt: sample line rejected")
	}

	if err := s.printer.Print(ctx, document.Receipt(s.formatter.Format(sample), s.width)); err != nil {
		return errors.Join(apperror.ErrPrinterOffline, err)
	}
	return nil
}

// Export renders every order matching filter as csv or xlsx
func (s *InvoiceService) Export(ctx context.Context, filter repository.OrderFilterParams, format string) (*File, error) {
	orders, err := s.orderRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := lo.Map(orders, func(o entity.Order, _ int) document.OrderRow {
		return document.RowFromOrder(o.ToBilling())
	})
	stamp := time.Now().Format("20060102")

	switch format {
	case document.FormatCSV, "":
		var buf bytes.Buffer
		if err := document.WriteOrdersCSV(&buf, rows); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
		return &File{Name: "orders-" + stamp + ".csv", ContentType: document.ContentTypeCSV, Data: buf.Bytes()}, nil
	case document.FormatXLSX:
		data, err := document.OrdersWorkbook(rows)
		if err != nil {
			return nil, fmt.Errorf("export xlsx: %w", err)
		}
		return &File{Name: "orders-" + stamp + ".xlsx", ContentType: document.ContentTypeXLSX, Data: data}, nil
	default:
		return nil, apperror.NewFieldError("format", "format must be csv or xlsx")
	}
}

func (s *InvoiceService) order(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}
