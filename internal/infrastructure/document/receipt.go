package document

import (
	"strings"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
	"github.com/sangkips/storefront-admin/pkg/printer"
)

// Receipt lays out view as an ESC/POS job for a roll of the given width.
func Receipt(view billing.InvoiceView, width int) []byte {
	d := printer.NewDocument(width)

	d.Align(printer.AlignCenter).
		SetSize(printer.SizeDouble).Bold(true).
		Line(view.Shop.Name).
		SetSize(printer.SizeNormal).Bold(false)
	if view.Shop.Address != "" {
		d.Line(view.Shop.Address)
	}
	if view.Shop.Contact != "" {
		d.Line("Tel: " + view.Shop.Contact)
	}
	if view.Shop.GSTIN != "" {
		d.Line("GSTIN: " + view.Shop.GSTIN)
	}
	if view.IsDummy {
		d.Bold(true).Line("** SAMPLE **").Bold(false)
	}

	d.Align(printer.AlignLeft).Rule('=')
	if view.InvoiceNo != "" {
		d.Pair("Invoice:", view.InvoiceNo)
	}
	d.Pair("Date:", view.PrintedOn)
	d.Pair("Customer:", view.CustomerName)
	if view.Contact != "" {
		d.Pair("Contact:", view.Contact)
	}
	d.Rule('-')

	for _, l := range view.Lines {
		qty := l.Quantity
		if l.Unit != "" {
			qty += " " + l.Unit
		}
		d.Item(l.Name, qty, l.Rate, l.Amount)
	}

	d.Rule('-').
		Pair("Subtotal:", view.Subtotal).
		Pair("Discount:", view.Discount).
		Bold(true).Pair("TOTAL:", "Rs."+view.Total).Bold(false).
		Pair("Paid:", view.Paid).
		Pair("Balance:", view.Unpaid).
		Rule('=')

	d.Align(printer.AlignCenter).
		Line(strings.TrimSpace(view.AmountInWords)).
		Feed(1).
		Line("Thank you, visit again!").
		Feed(3).
		Cut(true)

	return d.Bytes()
}
