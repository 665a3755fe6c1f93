package billing

import (
	"math"

	"github.com/sangkips/storefront-admin/internal/domain/enum"
)

// Settlement is the outcome of Resolve.
type Settlement struct {
	TotalAmount  float64
	PaidAmount   float64
	UnpaidAmount float64
	Status       enum.OrderStatus
}

// Resolve derives the payable total, the effective paid amount and the
// status. The discount is a flat amount and the total never drops below
// zero. Paid amounts outside [0, total] are clamped, so overpayment is never
// carried as credit. Completed is returned only when nothing is left unpaid.
func Resolve(subtotal, discount, paid float64) Settlement {
	total := math.Max(nonNegative(subtotal)-nonNegative(discount), 0)
	paid = math.Min(nonNegative(paid), total)
	unpaid := total - paid

	status := enum.OrderStatusPending
	if unpaid == 0 {
		status = enum.OrderStatusCompleted
	}
	return Settlement{
		TotalAmount:  total,
		PaidAmount:   paid,
		UnpaidAmount: unpaid,
		Status:       status,
	}
}
