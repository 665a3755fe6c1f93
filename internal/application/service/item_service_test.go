package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/storefront-admin/internal/domain/entity"
)

func TestItemCatalogSplitsKeys(t *testing.T) {
	rice := entity.Item{ID: uuid.New(), Code: "ITM-RICE-0001", Name: "Basmati Rice", Price: 9500, Unit: "kg"}
	salt := entity.Item{ID: uuid.New(), Code: "ITM-SALT-0001", Name: "Salt", Price: 2000, Unit: "pkt"}

	var gotIDs []uuid.UUID
	var gotNames []string
	svc := NewItemService(stubItemRepository{
		getByIDsFn: func(_ context.Context, ids []uuid.UUID) ([]entity.Item, error) {
			gotIDs = ids
			return []entity.Item{rice}, nil
		},
		findByNamesFn: func(_ context.Context, names []string) ([]entity.Item, error) {
			gotNames = names
			return []entity.Item{salt}, nil
		},
	})

	cat, err := svc.Catalog(context.Background(), []string{rice.ID.String(), " salt ", "", rice.ID.String(), "salt"})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{rice.ID}, gotIDs)
	assert.Equal(t, []string{"salt"}, gotNames)

	got, ok := cat.Lookup(rice.ID.String())
	require.True(t, ok)
	assert.Equal(t, 95.0, got.Price)

	got, ok = cat.Lookup("SALT")
	require.True(t, ok)
	assert.Equal(t, salt.ID.String(), got.ID)
	assert.Equal(t, "pkt", got.Unit)
}

func TestCreateItemValidation(t *testing.T) {
	svc := NewItemService(stubItemRepository{})

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{Name: " "})
	assert.Equal(t, "name", appErr(t, err).Errors[0].Field)

	_, err = svc.CreateItem(context.Background(), &CreateItemInput{Name: "Ghee", Price: -1})
	assert.Equal(t, "price", appErr(t, err).Errors[0].Field)
}
