package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	nonSlug    = regexp.MustCompile("[^a-z0-9-]")
	multiDash  = regexp.MustCompile("-+")
	nonAlnumUp = regexp.MustCompile("[^A-Z0-9]")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlug.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateInvoiceNo returns an invoice number such as INV-240815-1A2B3C4D.
func GenerateInvoiceNo(now time.Time) string {
	return "INV-" + now.Format("060102") + "-" + shortID()
}

// GenerateItemCode derives a catalog code from the item name, e.g.
// "Toor Dal" becomes ITM-TOOR-1A2B.
func GenerateItemCode(name string) string {
	stem := nonAlnumUp.ReplaceAllString(strings.ToUpper(Slugify(name)), "")
	if len(stem) > 4 {
		stem = stem[:4]
	}
	if stem == "" {
		return "ITM-" + shortID()
	}
	return "ITM-" + stem + "-" + shortID()[:4]
}

func shortID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
