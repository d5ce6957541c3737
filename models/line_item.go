package models

// LineItem is one entry of the persisted cart. MaxQuantity is a snapshot of
// the product's stock taken when the item was first added; later mutations
// are clamped against it, not against live stock.
type LineItem struct {
	ProductID   uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	MaxQuantity int     `json:"maxQuantity"`
	Image       *string `json:"image"`
}

// LineTotal returns the extended price for this line.
func (li LineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}
