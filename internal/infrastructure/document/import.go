package document

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ItemRow is one catalog row read from an import file. Line is the row
// number in the file, the header being line 1.
type ItemRow struct {
	Line  int
	Name  string
	Code  string
	Price string
	Unit  string
}

// ErrNoNameColumn is returned when the header has no name column.
var ErrNoNameColumn = errors.New("import file has no name column")

var itemColumns = map[string]string{
	"name":          "name",
	"item":          "name",
	"item name":     "name",
	"code":          "code",
	"item code":     "code",
	"price":         "price",
	"rate":          "price",
	"selling price": "price",
	"unit":          "unit",
}

// FormatFromFilename picks csv or xlsx from the file extension.
func FormatFromFilename(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return FormatXLSX
	case strings.HasSuffix(lower, ".csv"):
		return FormatCSV
	}
	return ""
}

// ReadItemRows reads a catalog import file. The first row is the header;
// columns are matched by name in any order and blank rows are skipped.
func ReadItemRows(r io.Reader, format string) ([]ItemRow, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatCSV:
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		records, err = cr.ReadAll()
	case FormatXLSX:
		records, err = readFirstSheet(r)
	default:
		return nil, fmt.Errorf("unsupported import format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	index := map[string]int{}
	for i, h := range records[0] {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if col, ok := itemColumns[h]; ok {
			if _, seen := index[col]; !seen {
				index[col] = i
			}
		}
	}
	if _, ok := index["name"]; !ok {
		return nil, ErrNoNameColumn
	}

	cell := func(rec []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	rows := make([]ItemRow, 0, len(records)-1)
	for n, rec := range records[1:] {
		row := ItemRow{
			Line:  n + 2,
			Name:  cell(rec, "name"),
			Code:  cell(rec, "code"),
			Price: cell(rec, "price"),
			Unit:  cell(rec, "unit"),
		}
		if row.Name == "" && row.Code == "" && row.Price == "" && row.Unit == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return f.GetRows(sheets[0])
}
