package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/storefront-admin/internal/application/service"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/request"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/response"
)

// InvoiceHandler serves invoices, receipts and exports
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Get returns the formatted invoice of an order
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}
	view, err := h.invoiceService.Invoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved successfully", view)
}

// PDF streams the invoice as a PDF download
func (h *InvoiceHandler) PDF(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}
	file, err := h.invoiceService.InvoicePDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Name, file.ContentType, file.Data)
}

// Print sends the receipt to the thermal printer
func (h *InvoiceHandler) Print(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}
	result, err := h.invoiceService.Print(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	message := "Receipt printed successfully"
	if !result.Printed {
		message = "No printer configured, receipt not printed"
	}
	response.OK(c, message, result)
}

// Export downloads the orders matching the list filters as csv or xlsx
func (h *InvoiceHandler) Export(c *gin.Context) {
	var q request.OrderListQuery
	_ = c.ShouldBindQuery(&q)
	filter, err := orderFilter(q)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.invoiceService.Export(c.Request.Context(), filter, q.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Name, file.ContentType, file.Data)
}

// PrinterStatus reports the printer connection
func (h *InvoiceHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.invoiceService.PrinterStatus(c.Request.Context()))
}

// TestPrint prints a sample receipt
func (h *InvoiceHandler) TestPrint(c *gin.Context) {
	if err := h.invoiceService.TestPrint(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test page sent to printer", nil)
}
