package document

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// OrderRow is one order flattened for export.
type OrderRow struct {
	InvoiceNo    string
	Date         string
	CustomerName string
	Contact      string
	Items        int
	Subtotal     float64
	Discount     float64
	Total        float64
	Paid         float64
	Unpaid       float64
	Status       string
	IsDummy      bool
}

var exportHeader = []string{
	"Invoice No", "Date", "Customer", "Contact", "Items",
	"Subtotal", "Discount", "Total", "Paid", "Unpaid", "Status", "Sample",
}

// RowFromOrder flattens o. Amounts are recomputed from the lines.
func RowFromOrder(o billing.Order) OrderRow {
	snap := billing.Recompute(o)
	date := ""
	if snap.Date != nil {
		date = snap.Date.Format("2006-01-02")
	}
	return OrderRow{
		InvoiceNo:    snap.InvoiceNo,
		Date:         date,
		CustomerName: snap.CustomerName,
		Contact:      snap.Contact,
		Items:        len(snap.Items),
		Subtotal:     billing.Subtotal(snap.Items),
		Discount:     snap.Discount,
		Total:        snap.TotalAmount,
		Paid:         snap.PaidAmount,
		Unpaid:       snap.UnpaidAmount,
		Status:       snap.Status.String(),
		IsDummy:      snap.IsDummy,
	}
}

func (r OrderRow) strings() []string {
	money := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	return []string{
		r.InvoiceNo, r.Date, r.CustomerName, r.Contact, strconv.Itoa(r.Items),
		money(r.Subtotal), money(r.Discount), money(r.Total), money(r.Paid), money(r.Unpaid),
		r.Status, strconv.FormatBool(r.IsDummy),
	}
}

// WriteOrdersCSV writes a header line and one record per row.
func WriteOrdersCSV(w io.Writer, rows []OrderRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.strings()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const ordersSheet = "Orders"

// OrdersWorkbook builds an xlsx file with one sheet of orders and a totals row.
func OrdersWorkbook(rows []OrderRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			r.InvoiceNo, r.Date, r.CustomerName, r.Contact, r.Items,
			r.Subtotal, r.Discount, r.Total, r.Paid, r.Unpaid, r.Status, r.IsDummy,
		}
		if err := f.SetSheetRow(ordersSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	if err := styleWorkbook(f, len(rows)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func styleWorkbook(f *excelize.File, n int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(ordersSheet, "A1", "L1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(ordersSheet, "A", "D", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(ordersSheet, "F", "J", 14); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	last := n + 1
	totalRow := last + 1
	if err := f.SetCellStyle(ordersSheet, "F2", fmt.Sprintf("J%d", totalRow), money); err != nil {
		return err
	}
	if err := f.SetCellValue(ordersSheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return err
	}
	for _, column := range []string{"F", "G", "H", "I", "J"} {
		cell := fmt.Sprintf("%s%d", column, totalRow)
		formula := fmt.Sprintf("SUM(%s2:%s%d)", column, column, last)
		if err := f.SetCellFormula(ordersSheet, cell, formula); err != nil {
			return err
		}
	}
	return f.SetCellStyle(ordersSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("E%d", totalRow), bold)
}
