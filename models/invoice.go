package models

import "time"

// PricingSummary holds the cart totals. Values are kept unrounded;
// rounding happens only when an amount is formatted for display.
type PricingSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Invoice is an immutable snapshot of the cart taken at checkout time.
type Invoice struct {
	Number   string         `json:"number"`
	IssuedAt time.Time      `json:"issued_at"`
	Lines    []LineItem     `json:"lines"`
	Summary  PricingSummary `json:"summary"`
}
