package cart

import (
	"fmt"

	"tienda-storefront/models"
)

const (
	// Orders above this subtotal ship for free.
	FreeShippingThreshold = 50.0
	ShippingFee           = 5.99
	TaxRate               = 0.08
)

// Summarize computes the totals for a set of line items. Values stay
// unrounded; use FormatAmount when presenting them.
func Summarize(items []models.LineItem) models.PricingSummary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	shipping := ShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	tax := subtotal * TaxRate

	return models.PricingSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// FormatAmount renders a monetary value for display, rounded to cents.
func FormatAmount(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}
