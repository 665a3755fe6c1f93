package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
)

// Item is a catalog entry that order lines are picked from
type Item struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code      string         `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Name      string         `gorm:"size:255;not null;index" json:"name"`
	Price     int64          `gorm:"default:0" json:"-"` // paise
	Unit      string         `gorm:"size:50" json:"unit"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON exposes the price in rupees
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: FromPaise(i.Price),
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// PriceRupees returns the price as a decimal
func (i *Item) PriceRupees() float64 {
	return FromPaise(i.Price)
}

// CatalogEntry is the item as the billing engine sees it.
func (i *Item) CatalogEntry() billing.CatalogItem {
	return billing.CatalogItem{
		ID:    i.ID.String(),
		Name:  i.Name,
		Price: i.PriceRupees(),
		Unit:  i.Unit,
	}
}
