package config

import (
	"fmt"
	"os"

	"github.com/sangkips/storefront-admin/internal/domain/billing"
)

// ShopProfile returns the invoice header configured by SHOP_PROFILE_PATH, or
// the built-in one when no path is set.
func (c ShopConfig) ShopProfile() (billing.ShopProfile, error) {
	if c.ProfilePath == "" {
		return billing.DefaultShopProfile(), nil
	}
	data, err := os.ReadFile(c.ProfilePath)
	if err != nil {
		return billing.ShopProfile{}, fmt.Errorf("read shop profile: %w", err)
	}
	return billing.ParseShopProfile(data)
}
