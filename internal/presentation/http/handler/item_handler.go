package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/storefront-admin/internal/application/service"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/request"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/response"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles listing catalog items
func (h *ItemHandler) List(c *gin.Context) {
	result, err := h.itemService.ListItems(c.Request.Context(), pageParams(c), strings.TrimSpace(c.Query("search")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, "Items retrieved successfully", result)
}

// Create handles creating a catalog item
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Code:  req.Code,
		Name:  req.Name,
		Price: req.Price.Float(),
		Unit:  req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item created successfully", item)
}

// Get handles getting a catalog item
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "item")
	if !ok {
		return
	}
	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item retrieved successfully", item)
}

// Update handles updating a catalog item
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "item")
	if !ok {
		return
	}
	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		ID:    id,
		Code:  req.Code,
		Name:  req.Name,
		Price: req.Price.FloatPtr(),
		Unit:  req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting a catalog item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "item")
	if !ok {
		return
	}
	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item deleted successfully", nil)
}

// maxImportSize caps catalog uploads
const maxImportSize = 5 << 20

// Import handles a bulk catalog upload (.csv or .xlsx in the "file" field)
func (h *ItemHandler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A .csv or .xlsx file is required in the 'file' field")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, "Could not read the uploaded file")
		return
	}
	defer f.Close()

	result, err := h.itemService.ImportItemsFile(c.Request.Context(), fh.Filename, f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Import completed", result)
}
