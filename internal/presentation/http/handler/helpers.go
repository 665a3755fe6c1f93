package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sangkips/storefront-admin/internal/application/service"
	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/domain/enum"
	"github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/request"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/response"
	"github.com/sangkips/storefront-admin/pkg/apperror"
	"github.com/sangkips/storefront-admin/pkg/pagination"
)

// paramID parses the :id path parameter, answering 400 when it is not a UUID
func paramID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+resource+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page, per_page and page_size from the query string
func pageParams(c *gin.Context) *pagination.PaginationParams {
	params := &pagination.PaginationParams{}
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}

// parseDate accepts YYYY-MM-DD or RFC 3339. Blank means no date.
func parseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(entity.DateLayout, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	return nil, false
}

// orderFilter builds the listing filter from the query string
func orderFilter(q request.OrderListQuery) (repository.OrderFilterParams, error) {
	filter := repository.OrderFilterParams{
		Filter: enum.ParseOrderFilter(q.Filter),
		Search: strings.TrimSpace(q.Search),
	}
	var fieldErrs []apperror.FieldError

	if q.CustomerID != "" {
		id, err := uuid.Parse(q.CustomerID)
		if err != nil {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customer_id", Message: "must be a UUID"})
		} else {
			filter.CustomerID = &id
		}
	}
	from, ok := parseDate(q.From)
	if !ok {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "from", Message: "must be a date (YYYY-MM-DD)"})
	}
	to, ok := parseDate(q.To)
	if !ok {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "to", Message: "must be a date (YYYY-MM-DD)"})
	}
	filter.From, filter.To = from, to

	if len(fieldErrs) > 0 {
		return filter, apperror.NewValidationError(fieldErrs)
	}
	return filter, nil
}

// orderInput maps the request body onto the service input
func orderInput(req *request.OrderRequest) (*service.OrderInput, error) {
	input := &service.OrderInput{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		Discount:     req.Discount.Float(),
		PaidAmount:   req.PaidAmount.Float(),
		IsDummy:      req.IsDummy,
		Items:        make([]service.OrderLineInput, 0, len(req.Items)),
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			return nil, apperror.NewFieldError("date", "must be a date (YYYY-MM-DD)")
		}
		input.Date = date
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, service.OrderLineInput{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Quantity: line.Quantity.FloatPtr(),
			Price:    line.Price.FloatPtr(),
			Unit:     line.Unit,
		})
	}
	return input, nil
}
