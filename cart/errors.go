package cart

import "errors"

var (
	// ErrInsufficientStock means the requested quantity would exceed the
	// stock ceiling snapshotted when the item was first added.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidProduct means the product cannot be added at all, e.g. it
	// was out of stock at add time.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrStorageUnavailable means the cart could not be persisted. The
	// in-memory cart is left exactly as it was before the mutation.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotPrepared means ConfirmPurchase was called on a non-empty cart
	// without a prior PrepareInvoice.
	ErrNotPrepared = errors.New("no invoice prepared")
)
