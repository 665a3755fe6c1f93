package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/storefront-admin/internal/application/service"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/request"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/response"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders. filter is All (default), Pending, Completed
// or Dummy.
func (h *OrderHandler) List(c *gin.Context) {
	var q request.OrderListQuery
	_ = c.ShouldBindQuery(&q)
	filter, err := orderFilter(q)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), pageParams(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, "Orders retrieved successfully", result)
}

// Summary handles order totals for a filter
func (h *OrderHandler) Summary(c *gin.Context) {
	var q request.OrderListQuery
	_ = c.ShouldBindQuery(&q)
	filter, err := orderFilter(q)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.orderService.Summary(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order summary retrieved successfully", summary)
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	input, ok := bindOrder(c)
	if !ok {
		return
	}
	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order created successfully", order)
}

// Preview handles computing an order without saving it
func (h *OrderHandler) Preview(c *gin.Context) {
	input, ok := bindOrder(c)
	if !ok {
		return
	}
	preview, err := h.orderService.PreviewOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order computed successfully", preview)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// Update handles replacing an order's content
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}
	input, ok := bindOrder(c)
	if !ok {
		return
	}
	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order updated successfully", order)
}

// Pay handles recording a payment
func (h *OrderHandler) Pay(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}
	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	order, err := h.orderService.RecordPayment(c.Request.Context(), id, req.Amount.Float())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment recorded successfully", order)
}

// Delete handles deleting an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "order")
	if !ok {
		return
	}
	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order deleted successfully", nil)
}

func bindOrder(c *gin.Context) (*service.OrderInput, bool) {
	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return nil, false
	}
	input, err := orderInput(&req)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return input, true
}
