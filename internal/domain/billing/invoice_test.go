package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.August, 15, 9, 30, 0, 0, time.UTC)
}

func TestFormatterFormat(t *testing.T) {
	shop := DefaultShopProfile()
	f := Formatter{Shop: shop, Now: fixedClock}

	date := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	o := simpleOrder(t)
	o.ID = "ord-1"
	o.InvoiceNo = "INV-0001"
	o.CustomerName = "Asha Patil"
	o.Contact = "9822012345"
	o.Date = &date
	o.PaidAmount = 100
	o = Recompute(o)

	v := f.Format(o)
	assert.Equal(t, "02/01/2024", v.Date)
	assert.Equal(t, "02/01/2024", v.PrintedOn)
	assert.False(t, v.Draft)
	assert.Equal(t, "250.00", v.Total)
	assert.Equal(t, "100.00", v.Paid)
	assert.Equal(t, "150.00", v.Unpaid)
	assert.Equal(t, "Pending", v.Status)
	assert.Equal(t, "Two Hundred Fifty Rupees Only", v.AmountInWords)
	require.Len(t, v.Lines, 2)
	assert.Equal(t, InvoiceLine{No: 1, ItemID: "itm-rice", Name: "Basmati Rice", Quantity: "2", Unit: "kg", Rate: "50.00", Amount: "100.00"}, v.Lines[0])
	assert.Equal(t, shop.NameLocal, v.Shop.NameLocal)
}

func TestFormatterDraftDate(t *testing.T) {
	f := Formatter{Shop: DefaultShopProfile(), Now: fixedClock}
	o := simpleOrder(t)

	v := f.Format(o)
	assert.True(t, v.Draft)
	assert.Equal(t, NoDate, v.Date)
	assert.Equal(t, "15/08/2024", v.PrintedOn)
	assert.Nil(t, o.Date, "today must never be written back")
}

func TestFormatterSavedOrderWithoutDate(t *testing.T) {
	f := Formatter{Shop: DefaultShopProfile(), Now: fixedClock}
	o := simpleOrder(t)
	o.ID = "ord-2"

	v := f.Format(o)
	assert.Equal(t, NoDate, v.Date)
	assert.Equal(t, NoDate, v.PrintedOn)
}

func TestFormatterStatusFollowsPrintedUnpaid(t *testing.T) {
	f := Formatter{Shop: DefaultShopProfile(), Now: fixedClock}
	o := Order{
		ID:         "ord-3",
		Items:      []LineItem{{Name: "Loose rice", Quantity: 1.1, UnitPrice: 3}},
		PaidAmount: 3.30,
	}

	v := f.Format(o)
	assert.Equal(t, "3.30", v.Total)
	assert.Equal(t, "0.00", v.Unpaid)
	assert.Equal(t, "Completed", v.Status)
}

func TestFormatterDoesNotMutate(t *testing.T) {
	f := NewFormatter(DefaultShopProfile())
	o := simpleOrder(t)
	o.PaidAmount = 999
	before := o.clone()

	_ = f.Format(o)
	assert.Equal(t, before, o)
}

func TestDefaultShopProfileIsBilingual(t *testing.T) {
	p := DefaultShopProfile()
	assert.Equal(t, "Shree Ganesh Kirana Store", p.Name)
	assert.Equal(t, "श्री गणेश किराना स्टोर", p.NameLocal)
	assert.NotEmpty(t, p.AddressLocal)
}

func TestParseShopProfile(t *testing.T) {
	p, err := ParseShopProfile([]byte("name: Test Mart\nname_local: टेस्ट मार्ट\n"))
	require.NoError(t, err)
	assert.Equal(t, "टेस्ट मार्ट", p.NameLocal)

	_, err = ParseShopProfile([]byte("address: nowhere\n"))
	assert.Error(t, err)

	_, err = ParseShopProfile([]byte("name: [unterminated"))
	assert.Error(t, err)
}
