package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
)

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords spells an amount in the Indian numbering system:
//
//	0       -> "Zero Rupees Only"
//	250     -> "Two Hundred Fifty Rupees Only"
//	100000  -> "One Lakh Rupees Only"
//	1250.50 -> "One Thousand Two Hundred Fifty Rupees and Fifty Paise Only"
//
// Negative and non-finite amounts read as zero.
func AmountInWords(amount float64) string {
	d := toDecimal(amount).Round(2)
	if !d.IsPositive() {
		return "Zero Rupees Only"
	}
	rupees := d.IntPart()
	paise := d.Sub(decimal.NewFromInt(rupees)).Shift(2).IntPart()

	switch {
	case rupees > 0 && paise > 0:
		return indianWords(rupees) + " Rupees and " + belowHundred(paise) + " Paise Only"
	case rupees > 0:
		return indianWords(rupees) + " Rupees Only"
	case paise > 0:
		return belowHundred(paise) + " Paise Only"
	}
	return "Zero Rupees Only"
}

func indianWords(n int64) string {
	var parts []string
	if n >= crore {
		parts = append(parts, indianWords(n/crore), "Crore")
		n %= crore
	}
	if n >= lakh {
		parts = append(parts, belowThousand(n/lakh), "Lakh")
		n %= lakh
	}
	if n >= thousand {
		parts = append(parts, belowThousand(n/thousand), "Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	w := tensWords[n/10]
	if n%10 != 0 {
		w += " " + onesWords[n%10]
	}
	return w
}
