package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/infrastructure/document"
	"github.com/sangkips/storefront-admin/pkg/apperror"
	"github.com/sangkips/storefront-admin/pkg/utils"
)

// ImportResult reports how a bulk catalog import went
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors"`
}

// ImportRowError is a rejected import row
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportItemsFile reads a .csv or .xlsx upload and imports its rows
func (s *ItemService) ImportItemsFile(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	format := document.FormatFromFilename(filename)
	if format == "" {
		return nil, apperror.NewFieldError("file", "file must be .csv or .xlsx")
	}
	rows, err := document.ReadItemRows(r, format)
	if err != nil {
		return nil, apperror.NewFieldError("file", err.Error())
	}
	return s.ImportItems(ctx, rows)
}

// ImportItems validates every row and creates the valid ones in one batch.
// Rows that fail are reported and skipped.
func (s *ItemService) ImportItems(ctx context.Context, rows []document.ItemRow) (*ImportResult, error) {
	result := &ImportResult{TotalRows: len(rows), Errors: []ImportRowError{}}
	fail := func(row int, field, msg string) {
		result.Errors = append(result.Errors, ImportRowError{Row: row, Field: field, Message: msg})
		result.Failed++
	}

	seenCodes := make(map[string]int)
	items := make([]entity.Item, 0, len(rows))

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			fail(row.Line, "name", "Name is required")
			continue
		}

		price := decimal.Zero
		if raw := strings.ReplaceAll(strings.TrimSpace(row.Price), ",", ""); raw != "" {
			p, err := decimal.NewFromString(raw)
			if err != nil {
				fail(row.Line, "price", fmt.Sprintf("Invalid price '%s'", row.Price))
				continue
			}
			if p.IsNegative() {
				fail(row.Line, "price", "Price cannot be negative")
				continue
			}
			price = p
		}

		code := strings.ToUpper(strings.TrimSpace(row.Code))
		if code == "" {
			code = utils.GenerateItemCode(name)
		}
		if first, dup := seenCodes[code]; dup {
			fail(row.Line, "code", fmt.Sprintf("Duplicate code '%s' (same as row %d)", code, first))
			continue
		}
		if err := s.ensureCodeFree(ctx, code, uuid.Nil); err != nil {
			if !apperror.IsAppError(err) {
				return nil, err
			}
			fail(row.Line, "code", fmt.Sprintf("Item code '%s' already exists", code))
			continue
		}
		seenCodes[code] = row.Line

		items = append(items, entity.Item{
			Code:  code,
			Name:  name,
			Price: entity.ToPaise(price.InexactFloat64()),
			Unit:  strings.TrimSpace(row.Unit),
		})
	}

	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	result.Successful = len(items)
	return result, nil
}
