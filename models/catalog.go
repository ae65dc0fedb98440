package models

import "github.com/lib/pq"

type ItemKind string

const (
	KindProduct ItemKind = "product"
	KindCombo   ItemKind = "combo"
)

// CatalogItem is a sellable offering: a single subscription product or a
// bundled combo, discriminated by Kind.
type CatalogItem struct {
	ID       string   `gorm:"primaryKey" json:"id"`
	Kind     ItemKind `gorm:"type:VARCHAR(10);not null" json:"kind"`
	Name     string   `gorm:"not null" json:"name"`
	Category string   `json:"category,omitempty"`
	PriceUSD float64  `gorm:"not null" json:"priceUSD"`
	PriceBS  float64  `gorm:"not null" json:"priceBS"`
	SoldOut  bool     `json:"soldOut,omitempty"`

	// Only set for combos: names of the subscriptions the bundle includes.
	IncludedNames pq.StringArray `gorm:"type:text[]" json:"includedNames,omitempty"`

	// Seed order, used so listings keep the storefront's display order.
	Position int `json:"-"`
}
