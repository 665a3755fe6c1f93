package document

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
)

// CurrencyPrefix is printed before amounts. The built-in PDF fonts have no
// rupee glyph.
const CurrencyPrefix = "Rs. "

var (
	muted   = &props.Color{Red: 100, Green: 100, Blue: 100}
	heading = props.Text{Style: fontstyle.Bold, Size: 16, Align: align.Center}
	small   = props.Text{Size: 9, Align: align.Center, Color: muted}
	label   = props.Text{Size: 10, Style: fontstyle.Bold}
	body    = props.Text{Size: 10}
)

// InvoicePDF renders an A4 invoice.
func InvoicePDF(view billing.InvoiceView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithRightMargin(12).
		WithTopMargin(12).
		WithBottomMargin(12).
		Build()

	m := maroto.New(cfg)
	m.AddRows(header(view)...)
	m.AddRows(parties(view)...)
	m.AddRows(lineTable(view)...)
	m.AddRows(totals(view)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// InvoiceFilename is the download name for an invoice.
func InvoiceFilename(view billing.InvoiceView, ext string) string {
	name := view.InvoiceNo
	if name == "" {
		name = "draft"
	}
	return "invoice-" + name + "." + ext
}

func header(view billing.InvoiceView) []core.Row {
	shop := view.Shop
	rows := []core.Row{text.NewRow(9, shop.Name, heading)}
	if shop.Address != "" {
		rows = append(rows, text.NewRow(5, shop.Address, small))
	}
	if shop.Contact != "" {
		rows = append(rows, text.NewRow(5, "Phone: "+shop.Contact, small))
	}
	if shop.GSTIN != "" {
		rows = append(rows, text.NewRow(5, "GSTIN: "+shop.GSTIN, small))
	}

	title := "TAX INVOICE"
	switch {
	case view.IsDummy:
		title = "SAMPLE INVOICE"
	case view.Draft:
		title = "DRAFT INVOICE"
	}
	rows = append(rows,
		line.NewRow(4, props.Line{Thickness: 0.4}),
		text.NewRow(8, title, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center}),
	)
	return rows
}

func parties(view billing.InvoiceView) []core.Row {
	invoiceNo := view.InvoiceNo
	if invoiceNo == "" {
		invoiceNo = billing.NoDate
	}
	contact := view.Contact
	if contact == "" {
		contact = billing.NoDate
	}
	return []core.Row{
		row.New(6).Add(
			text.NewCol(2, "Invoice No:", label),
			text.NewCol(4, invoiceNo, body),
			text.NewCol(2, "Date:", label),
			text.NewCol(4, view.PrintedOn, body),
		),
		row.New(6).Add(
			text.NewCol(2, "Customer:", label),
			text.NewCol(4, view.CustomerName, body),
			text.NewCol(2, "Contact:", label),
			text.NewCol(4, contact, body),
		),
		row.New(4),
	}
}

func lineTable(view billing.InvoiceView) []core.Row {
	right := props.Text{Size: 10, Align: align.Right}
	rightBold := props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold}

	rows := []core.Row{
		row.New(7).Add(
			text.NewCol(1, "#", label),
			text.NewCol(5, "Item", label),
			text.NewCol(2, "Qty", rightBold),
			text.NewCol(2, "Rate", rightBold),
			text.NewCol(2, "Amount", rightBold),
		),
		line.NewRow(2, props.Line{Thickness: 0.2}),
	}
	for _, l := range view.Lines {
		qty := l.Quantity
		if l.Unit != "" {
			qty += " " + l.Unit
		}
		rows = append(rows, row.New(6).Add(
			text.NewCol(1, fmt.Sprintf("%d", l.No), body),
			text.NewCol(5, l.Name, body),
			text.NewCol(2, qty, right),
			text.NewCol(2, l.Rate, right),
			text.NewCol(2, l.Amount, right),
		))
	}
	return append(rows, line.NewRow(4, props.Line{Thickness: 0.4}))
}

func totals(view billing.InvoiceView) []core.Row {
	entries := []struct {
		name, value string
		strong      bool
	}{
		{"Subtotal", view.Subtotal, false},
		{"Discount", view.Discount, false},
		{"Total", view.Total, true},
		{"Paid", view.Paid, false},
		{"Balance Due", view.Unpaid, true},
	}

	rows := make([]core.Row, 0, len(entries)+3)
	for _, e := range entries {
		p := props.Text{Size: 10, Align: align.Right}
		if e.strong {
			p.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(6),
			text.NewCol(3, e.name, p),
			text.NewCol(3, CurrencyPrefix+e.value, p),
		))
	}
	return append(rows,
		row.New(6).Add(
			col.New(6),
			text.NewCol(3, "Status", props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold}),
			text.NewCol(3, view.Status, props.Text{Size: 10, Align: align.Right}),
		),
		row.New(4),
		text.NewRow(8, "Amount in words: "+view.AmountInWords, props.Text{Size: 10, Style: fontstyle.Italic}),
	)
}
