package cart

import (
	"testing"

	"tienda-storefront/models"
)

func TestSummarizeEmptyCart(t *testing.T) {
	s := Summarize(nil)

	if s.Subtotal != 0 {
		t.Errorf("expected subtotal 0, got %v", s.Subtotal)
	}
	// The base shipping fee applies whenever the subtotal is not over the
	// threshold, including an empty cart.
	if !almostEqual(s.Shipping, 5.99) {
		t.Errorf("expected shipping 5.99, got %v", s.Shipping)
	}
	if s.Tax != 0 {
		t.Errorf("expected tax 0, got %v", s.Tax)
	}
}

func TestSummarizeExactlyAtThreshold(t *testing.T) {
	items := []models.LineItem{
		{ProductID: 1, Name: "Voucher", Price: 50.00, Quantity: 1, MaxQuantity: 5},
	}
	s := Summarize(items)

	// Free shipping requires strictly more than the threshold.
	if !almostEqual(s.Shipping, 5.99) {
		t.Errorf("expected shipping 5.99 at exactly 50.00, got %v", s.Shipping)
	}
}

func TestSummarizeMultipleLines(t *testing.T) {
	items := []models.LineItem{
		{ProductID: 1, Price: 3.50, Quantity: 2, MaxQuantity: 10},
		{ProductID: 2, Price: 2.20, Quantity: 3, MaxQuantity: 10},
	}
	s := Summarize(items)

	if !almostEqual(s.Subtotal, 13.60) {
		t.Errorf("expected subtotal 13.60, got %v", s.Subtotal)
	}
	if !almostEqual(s.Tax, 13.60*0.08) {
		t.Errorf("expected 8%% tax, got %v", s.Tax)
	}
	if !almostEqual(s.Total, s.Subtotal+s.Shipping+s.Tax) {
		t.Errorf("expected total to be the sum of parts, got %v", s.Total)
	}
}

func TestLineTotal(t *testing.T) {
	item := models.LineItem{Price: 25.99, Quantity: 2}
	if !almostEqual(item.LineTotal(), 51.98) {
		t.Errorf("expected line total 51.98, got %v", item.LineTotal())
	}
}
