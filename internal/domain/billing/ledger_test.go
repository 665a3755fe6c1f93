package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/storefront-admin/internal/domain/enum"
)

var testCatalog = CatalogMap{
	"itm-rice":  {ID: "itm-rice", Name: "Basmati Rice", Price: 50, Unit: "kg"},
	"itm-ghee":  {ID: "itm-ghee", Name: "Desi Ghee", Price: 150, Unit: "ltr"},
	"itm-sugar": {ID: "itm-sugar", Name: "Sugar", Price: 42.5, Unit: "kg"},
}

func qty(v float64) *float64 { return &v }

func simpleOrder(t *testing.T) Order {
	t.Helper()
	o, ok := AddLine(Order{}, LineInput{Key: "itm-rice", Quantity: qty(2)}, testCatalog)
	require.True(t, ok)
	o, ok = AddLine(o, LineInput{Key: "itm-ghee"}, testCatalog)
	require.True(t, ok)
	return o
}

func TestAddLine(t *testing.T) {
	t.Run("defaults quantity to one and copies catalog fields", func(t *testing.T) {
		o, ok := AddLine(Order{}, LineInput{Key: "itm-ghee"}, testCatalog)
		require.True(t, ok)
		require.Len(t, o.Items, 1)
		assert.Equal(t, LineItem{ItemID: "itm-ghee", Name: "Desi Ghee", Quantity: 1, UnitPrice: 150, Unit: "ltr"}, o.Items[0])
		assert.Equal(t, 150.0, o.TotalAmount)
	})

	t.Run("matches catalog by name", func(t *testing.T) {
		o, ok := AddLine(Order{}, LineInput{Key: "sugar"}, testCatalog)
		require.True(t, ok)
		assert.Equal(t, "itm-sugar", o.Items[0].ItemID)
	})

	t.Run("explicit values override catalog", func(t *testing.T) {
		o, ok := AddLine(Order{}, LineInput{Key: "itm-rice", Quantity: qty(0.5), UnitPrice: qty(60), Unit: "g"}, testCatalog)
		require.True(t, ok)
		assert.Equal(t, 0.5, o.Items[0].Quantity)
		assert.Equal(t, 60.0, o.Items[0].UnitPrice)
		assert.Equal(t, "g", o.Items[0].Unit)
		assert.Equal(t, 30.0, o.TotalAmount)
	})

	t.Run("free text line without catalog match", func(t *testing.T) {
		o, ok := AddLine(Order{}, LineInput{Name: "Loose jaggery", UnitPrice: qty(80)}, testCatalog)
		require.True(t, ok)
		assert.Empty(t, o.Items[0].ItemID)
		assert.Equal(t, "Loose jaggery", o.Items[0].Name)
		assert.Equal(t, 80.0, o.TotalAmount)
	})

	t.Run("rejects unknown item without a name", func(t *testing.T) {
		base := simpleOrder(t)
		o, ok := AddLine(base, LineInput{Key: "nope"}, testCatalog)
		assert.False(t, ok)
		assert.Equal(t, base, o)
	})

	t.Run("rejects with nil catalog and no name", func(t *testing.T) {
		_, ok := AddLine(Order{}, LineInput{Key: "itm-rice"}, nil)
		assert.False(t, ok)
	})

	t.Run("duplicates are kept as separate lines", func(t *testing.T) {
		o, _ := AddLine(Order{}, LineInput{Key: "itm-rice"}, testCatalog)
		o, _ = AddLine(o, LineInput{Key: "itm-rice"}, testCatalog)
		assert.Len(t, o.Items, 2)
		assert.Equal(t, 100.0, o.TotalAmount)
	})

	t.Run("does not touch the input order", func(t *testing.T) {
		base := simpleOrder(t)
		_, _ = AddLine(base, LineInput{Key: "itm-sugar"}, testCatalog)
		assert.Len(t, base.Items, 2)
	})
}

func TestUpdateLine(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		check func(t *testing.T, o Order)
	}{
		{"quantity", FieldQuantity, "3", func(t *testing.T, o Order) {
			assert.Equal(t, 3.0, o.Items[0].Quantity)
			assert.Equal(t, 300.0, o.TotalAmount)
		}},
		{"price", FieldUnitPrice, "55.5", func(t *testing.T, o Order) {
			assert.Equal(t, 55.5, o.Items[0].UnitPrice)
			assert.Equal(t, 261.0, o.TotalAmount)
		}},
		{"non numeric quantity becomes zero", FieldQuantity, "abc", func(t *testing.T, o Order) {
			assert.Equal(t, 0.0, o.Items[0].Quantity)
			assert.Equal(t, 150.0, o.TotalAmount)
		}},
		{"empty price becomes zero", FieldUnitPrice, "", func(t *testing.T, o Order) {
			assert.Equal(t, 0.0, o.Items[0].UnitPrice)
		}},
		{"name", FieldName, "Kolam Rice", func(t *testing.T, o Order) {
			assert.Equal(t, "Kolam Rice", o.Items[0].Name)
			assert.Equal(t, 250.0, o.TotalAmount)
		}},
		{"unit", FieldUnit, "bag", func(t *testing.T, o Order) {
			assert.Equal(t, "bag", o.Items[0].Unit)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := simpleOrder(t)
			tt.check(t, UpdateLine(base, 0, tt.field, tt.value))
			assert.Equal(t, 2.0, base.Items[0].Quantity, "input must not change")
		})
	}

	t.Run("out of range index is a no-op", func(t *testing.T) {
		base := simpleOrder(t)
		assert.Equal(t, base, UpdateLine(base, 5, FieldQuantity, "9"))
		assert.Equal(t, base, UpdateLine(base, -1, FieldQuantity, "9"))
	})
}

func TestRemoveLine(t *testing.T) {
	base := simpleOrder(t)

	o := RemoveLine(base, 0)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "itm-ghee", o.Items[0].ItemID)
	assert.Equal(t, 150.0, Subtotal(o.Items))
	assert.Equal(t, 150.0, o.TotalAmount)
	assert.Len(t, base.Items, 2)

	assert.Equal(t, base, RemoveLine(base, 2))
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal(nil))

	items := simpleOrder(t).Items
	first := Subtotal(items)
	assert.Equal(t, 250.0, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Subtotal(items))
	}
}

func TestRecompute(t *testing.T) {
	o := simpleOrder(t)
	o.PaidAmount = 250
	o = Recompute(o)
	assert.Equal(t, enum.OrderStatusCompleted, o.Status)

	o = UpdateLine(o, 1, FieldQuantity, "2")
	assert.Equal(t, 400.0, o.TotalAmount)
	assert.Equal(t, 150.0, o.UnpaidAmount)
	assert.Equal(t, enum.OrderStatusPending, o.Status)
}

func TestParseAmount(t *testing.T) {
	tests := map[string]float64{
		"":          0,
		"   ":       0,
		"abc":       0,
		"12":        12,
		" 12.5 ":    12.5,
		"1,250.00":  1250,
		"12,34,567": 1234567,
		"-5":        0,
		"NaN":       0,
		"Inf":       0,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseAmount(in), "ParseAmount(%q)", in)
	}
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("Price")
	assert.True(t, ok)
	assert.Equal(t, FieldUnitPrice, f)

	_, ok = ParseField("colour")
	assert.False(t, ok)
}
