package billing

import (
	"time"

	"github.com/sangkips/storefront-admin/internal/domain/enum"
)

// InvoiceLine is one formatted row of an invoice.
type InvoiceLine struct {
	No       int    `json:"no"`
	ItemID   string `json:"item_id,omitempty"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
}

// InvoiceView is a read-only rendering of an order. Every amount is already
// formatted; callers add the currency symbol themselves.
type InvoiceView struct {
	Shop          ShopProfile   `json:"shop"`
	OrderID       string        `json:"order_id,omitempty"`
	InvoiceNo     string        `json:"invoice_no,omitempty"`
	CustomerName  string        `json:"customer_name"`
	Contact       string        `json:"contact"`
	Date          string        `json:"date"`
	PrintedOn     string        `json:"printed_on"`
	Draft         bool          `json:"draft"`
	IsDummy       bool          `json:"is_dummy"`
	Lines         []InvoiceLine `json:"lines"`
	Subtotal      string        `json:"subtotal"`
	Discount      string        `json:"discount"`
	Total         string        `json:"total"`
	Paid          string        `json:"paid"`
	Unpaid        string        `json:"unpaid"`
	Status        string        `json:"status"`
	AmountInWords string        `json:"amount_in_words"`
}

// Formatter turns orders into InvoiceViews.
type Formatter struct {
	Shop ShopProfile
	// Now stamps PrintedOn for unsaved drafts. Defaults to time.Now.
	Now func() time.Time
}

// NewFormatter returns a Formatter for the given shop.
func NewFormatter(shop ShopProfile) Formatter {
	return Formatter{Shop: shop, Now: time.Now}
}

// Format renders o. The stored date is shown as is; only a draft without a
// date gets today's date, and only in PrintedOn.
func (f Formatter) Format(o Order) InvoiceView {
	snap := Recompute(o)

	view := InvoiceView{
		Shop:          f.Shop,
		OrderID:       snap.ID,
		InvoiceNo:     snap.InvoiceNo,
		CustomerName:  snap.CustomerName,
		Contact:       snap.Contact,
		Date:          FormatDate(snap.Date),
		Draft:         snap.IsDraft(),
		IsDummy:       snap.IsDummy,
		Lines:         make([]InvoiceLine, 0, len(snap.Items)),
		Subtotal:      FormatCurrency(Subtotal(snap.Items)),
		Discount:      FormatCurrency(snap.Discount),
		Total:         FormatCurrency(snap.TotalAmount),
		Paid:          FormatCurrency(snap.PaidAmount),
		Unpaid:        FormatCurrency(snap.UnpaidAmount),
		Status:        displayStatus(snap.UnpaidAmount).String(),
		AmountInWords: AmountInWords(snap.TotalAmount),
	}

	view.PrintedOn = view.Date
	if view.Draft && snap.Date == nil {
		now := time.Now
		if f.Now != nil {
			now = f.Now
		}
		today := now()
		view.PrintedOn = FormatDate(&today)
	}

	for i, it := range snap.Items {
		view.Lines = append(view.Lines, InvoiceLine{
			No:       i + 1,
			ItemID:   it.ItemID,
			Name:     it.Name,
			Quantity: FormatQuantity(it.Quantity),
			Unit:     it.Unit,
			Rate:     FormatCurrency(it.UnitPrice),
			Amount:   FormatCurrency(it.Total()),
		})
	}
	return view
}

// displayStatus is the status matching the unpaid amount as printed.
func displayStatus(unpaid float64) enum.OrderStatus {
	if toDecimal(unpaid).Round(2).IsZero() {
		return enum.OrderStatusCompleted
	}
	return enum.OrderStatusPending
}
