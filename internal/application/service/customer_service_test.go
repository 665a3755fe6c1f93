package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/storefront-admin/pkg/pagination"
)

func TestCreateCustomer(t *testing.T) {
	svc := NewCustomerService(newMemCustomerRepository())
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: " Sita Devi ", Phone: ptr(" 9000000001 "), Email: ptr("  ")})
	require.NoError(t, err)
	assert.Equal(t, "Sita Devi", c.Name)
	assert.Equal(t, "9000000001", *c.Phone)
	assert.Nil(t, c.Email)

	_, err = svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Other", Phone: ptr("9000000001")})
	assert.Equal(t, http.StatusConflict, appErr(t, err).Code)

	_, err = svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "   "})
	assert.Equal(t, "name", appErr(t, err).Errors[0].Field)
}

func TestUpdateCustomer(t *testing.T) {
	svc := NewCustomerService(newMemCustomerRepository())
	ctx := context.Background()

	a, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "A", Phone: ptr("1")})
	require.NoError(t, err)
	b, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "B", Phone: ptr("2")})
	require.NoError(t, err)

	_, err = svc.UpdateCustomer(ctx, &UpdateCustomerInput{ID: b.ID, Phone: ptr("1")})
	assert.Equal(t, http.StatusConflict, appErr(t, err).Code)

	updated, err := svc.UpdateCustomer(ctx, &UpdateCustomerInput{ID: a.ID, Name: ptr("A. Sharma"), Phone: ptr("1")})
	require.NoError(t, err)
	assert.Equal(t, "A. Sharma", updated.Name)
	assert.Equal(t, "1", *updated.Phone)

	cleared, err := svc.UpdateCustomer(ctx, &UpdateCustomerInput{ID: a.ID, Phone: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Phone)

	_, err = svc.UpdateCustomer(ctx, &UpdateCustomerInput{ID: uuid.New(), Name: ptr("x")})
	assert.Equal(t, http.StatusNotFound, appErr(t, err).Code)
}

func TestListAndDeleteCustomers(t *testing.T) {
	svc := NewCustomerService(newMemCustomerRepository())
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Mohan"})
	require.NoError(t, err)

	page, err := svc.ListCustomers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "moh")
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	require.NoError(t, svc.DeleteCustomer(ctx, c.ID))
	_, err = svc.GetCustomer(ctx, c.ID)
	assert.Equal(t, http.StatusNotFound, appErr(t, err).Code)
}
