package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"tienda-storefront/models"
	"tienda-storefront/notify"
	"tienda-storefront/storage"

	"github.com/google/uuid"
)

// StorageKey is the key the serialized cart lives under.
const StorageKey = "cart"

// Engine owns the cart: an ordered list of line items, unique by product
// id, mirrored to the key-value store after every mutation. It is not safe
// for concurrent use; the storefront drives it from a single event loop.
type Engine struct {
	store    storage.Store
	notifier notify.Notifier

	items   []models.LineItem
	pending *models.Invoice
}

// NewEngine builds an engine over the given store and notifier and loads
// whatever cart was persisted by a previous run.
func NewEngine(store storage.Store, notifier notify.Notifier) *Engine {
	e := &Engine{store: store, notifier: notifier}
	e.Load()
	return e
}

// Load replaces the in-memory cart with the persisted one. A missing key
// or malformed payload falls back to an empty cart; the malformed case is
// reported as a warning instead of being silently ignored.
func (e *Engine) Load() {
	e.items = nil

	data, ok, err := e.store.Get(StorageKey)
	if err != nil {
		e.notifier.Warning("Could not read your saved cart, starting empty")
		return
	}
	if !ok {
		return
	}

	var items []models.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		e.notifier.Warning("Saved cart was unreadable, starting empty")
		return
	}
	e.items = items
}

// commit persists the candidate item list and only then makes it current,
// so a failed write leaves the cart untouched.
func (e *Engine) commit(items []models.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := e.store.Set(StorageKey, data); err != nil {
		e.notifier.Error("Could not save your cart")
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	e.items = items
	return nil
}

func (e *Engine) cloneItems() []models.LineItem {
	items := make([]models.LineItem, len(e.items))
	copy(items, e.items)
	return items
}

func (e *Engine) find(productID uint) int {
	for i, item := range e.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem puts one unit of the product in the cart. If the product is
// already present its quantity is incremented, clamped by the stock
// snapshot taken when it was first added.
func (e *Engine) AddItem(product *models.Product) error {
	items := e.cloneItems()

	if i := e.find(product.ID); i >= 0 {
		if items[i].Quantity+1 > items[i].MaxQuantity {
			e.notifier.Error("Not enough stock available")
			return ErrInsufficientStock
		}
		items[i].Quantity++
	} else {
		if product.Stock <= 0 {
			e.notifier.Error("Product is out of stock")
			return ErrInvalidProduct
		}
		var image *string
		if product.ImageURL != "" {
			url := product.ImageURL
			image = &url
		}
		items = append(items, models.LineItem{
			ProductID:   product.ID,
			Name:        product.Name,
			Price:       product.Price,
			Quantity:    1,
			MaxQuantity: product.Stock,
			Image:       image,
		})
	}

	if err := e.commit(items); err != nil {
		return err
	}
	e.notifier.Success(fmt.Sprintf("%s added to cart", product.Name))
	return nil
}

// ChangeQuantity adjusts a line by a signed delta. An unknown product id is
// a no-op. Driving the quantity below 1 removes the line; exceeding the
// stock snapshot fails and leaves the cart unchanged.
func (e *Engine) ChangeQuantity(productID uint, delta int) error {
	i := e.find(productID)
	if i < 0 {
		return nil
	}

	newQuantity := e.items[i].Quantity + delta
	if newQuantity < 1 {
		return e.RemoveItem(productID)
	}
	if newQuantity > e.items[i].MaxQuantity {
		e.notifier.Error("Not enough stock available")
		return ErrInsufficientStock
	}

	items := e.cloneItems()
	items[i].Quantity = newQuantity
	return e.commit(items)
}

// RemoveItem deletes the line for the product if present.
func (e *Engine) RemoveItem(productID uint) error {
	i := e.find(productID)
	if i < 0 {
		return nil
	}

	items := e.cloneItems()
	items = append(items[:i], items[i+1:]...)
	return e.commit(items)
}

// Clear empties the cart.
func (e *Engine) Clear() error {
	return e.commit([]models.LineItem{})
}

// Items returns a read-only snapshot of the current line items.
func (e *Engine) Items() []models.LineItem {
	return e.cloneItems()
}

// Summary computes the totals for the current cart. Pure: no side effects,
// safe to call repeatedly.
func (e *Engine) Summary() models.PricingSummary {
	return Summarize(e.items)
}

// ItemCount is the sum of all quantities, used for the cart badge.
func (e *Engine) ItemCount() int {
	count := 0
	for _, item := range e.items {
		count += item.Quantity
	}
	return count
}

// PrepareInvoice snapshots the cart and its totals into an invoice without
// mutating anything. Calling it again before confirmation yields a fresh
// number and timestamp over the same lines.
func (e *Engine) PrepareInvoice() models.Invoice {
	invoice := models.Invoice{
		Number:   fmt.Sprintf("INV-%s", uuid.NewString()),
		IssuedAt: time.Now(),
		Lines:    e.cloneItems(),
		Summary:  e.Summary(),
	}
	e.pending = &invoice
	return invoice
}

// ConfirmPurchase completes the checkout: it requires a prepared invoice
// when the cart has items, then clears the cart unconditionally. On an
// empty cart it is a success no-op.
func (e *Engine) ConfirmPurchase() error {
	if len(e.items) == 0 {
		e.pending = nil
		e.notifier.Success("Purchase completed, thank you!")
		return nil
	}

	if e.pending == nil || len(e.pending.Lines) == 0 {
		return ErrNotPrepared
	}

	if err := e.Clear(); err != nil {
		return err
	}
	e.pending = nil
	e.notifier.Success("Purchase completed, thank you!")
	return nil
}
