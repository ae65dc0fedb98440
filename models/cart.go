package models

import "time"

// CartLine is one entry of a cart: a catalog item with its quantity.
// A cart holds at most one line per catalog item id.
type CartLine struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
	AddedAt  time.Time   `json:"addedAt"`
}

// CartView is the read model returned to the storefront.
type CartView struct {
	Items     []CartLine `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	ItemCount int        `json:"itemCount"`
}
