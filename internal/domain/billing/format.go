package billing

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the invoice date format.
const DateLayout = "02/01/2006"

// NoDate is shown in place of a missing date.
const NoDate = "-"

// FormatCurrency renders an amount with Indian digit grouping and exactly two
// decimals, without a currency symbol: 1234567.5 becomes "12,34,567.50".
func FormatCurrency(amount float64) string {
	d := toDecimal(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	return sign + groupIndian(fixed[:dot]) + fixed[dot:]
}

// groupIndian puts a comma before the last three digits and then after every
// two digits further left.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// FormatQuantity drops trailing zeros, so 2 prints as "2" and 1.5 as "1.5".
func FormatQuantity(q float64) string {
	return toDecimal(q).Round(3).String()
}

// FormatDate renders a date as dd/mm/yyyy, or NoDate when absent.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NoDate
	}
	return t.Format(DateLayout)
}

func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
