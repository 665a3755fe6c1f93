package billing

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ShopProfile is the fixed bilingual header printed on every invoice. The
// *Local fields carry the shop's own script and are reproduced verbatim.
type ShopProfile struct {
	Name         string `yaml:"name" json:"name"`
	NameLocal    string `yaml:"name_local" json:"name_local"`
	Address      string `yaml:"address" json:"address"`
	AddressLocal string `yaml:"address_local" json:"address_local"`
	Contact      string `yaml:"contact" json:"contact"`
	ContactLocal string `yaml:"contact_local" json:"contact_local"`
	GSTIN        string `yaml:"gstin" json:"gstin,omitempty"`
}

//go:embed shop_profile.yaml
var defaultShopProfile []byte

// DefaultShopProfile returns the built-in header.
func DefaultShopProfile() ShopProfile {
	p, err := ParseShopProfile(defaultShopProfile)
	if err != nil {
		panic(fmt.Sprintf("billing: embedded shop profile: %v", err))
	}
	return p
}

// ParseShopProfile decodes a YAML shop header. Name is required.
func ParseShopProfile(data []byte) (ShopProfile, error) {
	var p ShopProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return ShopProfile{}, fmt.Errorf("parse shop profile: %w", err)
	}
	if p.Name == "" {
		return ShopProfile{}, fmt.Errorf("parse shop profile: name is required")
	}
	return p, nil
}
