package billing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{999.999, "1,000.00"},
		{1250, "1,250.00"},
		{12345.6, "12,345.60"},
		{100000, "1,00,000.00"},
		{1234567.5, "12,34,567.50"},
		{10000000, "1,00,00,000.00"},
		{0.1 + 0.2, "0.30"},
		{2.675, "2.68"},
		{-1250, "-1,250.00"},
		{math.NaN(), "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in), "FormatCurrency(%v)", tt.in)
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", FormatQuantity(2))
	assert.Equal(t, "1.5", FormatQuantity(1.5))
	assert.Equal(t, "0.3", FormatQuantity(0.1+0.2))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "07/03/2024", FormatDate(&d))
	assert.Equal(t, NoDate, FormatDate(nil))

	var zero time.Time
	assert.Equal(t, NoDate, FormatDate(&zero))
}
