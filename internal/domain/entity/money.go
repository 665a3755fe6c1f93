package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money columns are stored in paise, like the original cents columns, and
// exposed as rupees in JSON and to the billing engine.

// ToPaise rounds a rupee amount to whole paise.
func ToPaise(rupees float64) int64 {
	if math.IsNaN(rupees) || math.IsInf(rupees, 0) {
		return 0
	}
	return decimal.NewFromFloat(rupees).Shift(2).Round(0).IntPart()
}

// FromPaise converts a stored amount back to rupees.
func FromPaise(paise int64) float64 {
	return float64(paise) / 100
}
