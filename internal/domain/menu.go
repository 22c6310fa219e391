package domain

import "github.com/shopspring/decimal"

// MenuItem is a sellable menu entry. Menu data is read-only reference
// data owned by the catalog; the rest of the system only looks items up.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
}
