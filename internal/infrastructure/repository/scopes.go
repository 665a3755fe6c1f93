package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/sangkips/storefront-admin/internal/domain/enum"
	domainRepo "github.com/sangkips/storefront-admin/internal/domain/repository"
)

// SearchScope matches term case-insensitively against any of columns.
// LOWER/LIKE keeps the query portable between Postgres and SQLite.
func SearchScope(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}

// OrderFilterScope applies an order listing filter. Dummy orders are only
// returned by the Dummy filter.
func OrderFilterScope(f domainRepo.OrderFilterParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Filter == enum.OrderFilterDummy {
			db = db.Where("is_dummy = ?", true)
		} else {
			db = db.Where("is_dummy = ?", false)
			if status, ok := f.Filter.Status(); ok {
				db = db.Where("status = ?", status)
			}
		}
		if f.CustomerID != nil {
			db = db.Where("customer_id = ?", *f.CustomerID)
		}
		if f.From != nil {
			db = db.Where("date >= ?", *f.From)
		}
		if f.To != nil {
			db = db.Where("date <= ?", *f.To)
		}
		return db.Scopes(SearchScope(f.Search, "customer_name", "contact", "invoice_no"))
	}
}
