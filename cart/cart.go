// Package cart holds the client-session shopping cart: an ordered list of
// line items keyed by (product, size, colour) with derived totals and an
// open/closed visibility flag.
//
// A Store belongs to a single interaction goroutine. All mutations happen
// synchronously in response to user events, so the type carries no locking;
// construct one per session and pass it explicitly rather than sharing a
// package-level singleton.
package cart

import "github.com/SOf1AN3/myks-sports-bolt/models"

// LineKey identifies a cart line. Two additions with the same key merge
// into one line instead of creating a duplicate.
type LineKey struct {
	ProductID string
	Size      string
	Color     string
}

// LineItem is one (product, size, colour) combination with a quantity.
// The product is snapshotted at add time.
type LineItem struct {
	Product  models.Product
	Size     string
	Color    string
	Quantity int
}

// Key returns the merge key for the line.
func (li LineItem) Key() LineKey {
	return LineKey{ProductID: li.Product.ID, Size: li.Size, Color: li.Color}
}

// UnitPrice is the amount one unit of this line is charged at,
// following the sale → original-price rule of the product.
func (li LineItem) UnitPrice() float64 {
	return li.Product.ChargedPrice()
}

// Store is the cart state container.
type Store struct {
	items []LineItem
	open  bool
}

// NewStore returns an empty, closed cart.
func NewStore() *Store {
	return &Store{items: make([]LineItem, 0)}
}

// AddItem merges quantity 1 into an existing line with the same
// (product, size, colour) key, or appends a new line at the end.
// Size/colour membership is the caller's concern; the product detail
// screen validates the selection before calling.
func (s *Store) AddItem(product models.Product, size, color string) {
	key := LineKey{ProductID: product.ID, Size: size, Color: color}
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, LineItem{
		Product:  product,
		Size:     size,
		Color:    color,
		Quantity: 1,
	})
}

// UpdateQuantity sets the line's quantity, removing the line when the new
// quantity drops below 1. Unknown keys are a silent no-op.
func (s *Store) UpdateQuantity(key LineKey, quantity int) {
	if quantity < 1 {
		s.RemoveItem(key)
		return
	}
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line with the given key if present.
func (s *Store) RemoveItem(key LineKey) {
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. The open flag is untouched.
func (s *Store) Clear() {
	s.items = s.items[:0]
}

// Items returns the lines in insertion order. The slice is a copy; mutating
// it does not affect the cart.
func (s *Store) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of distinct lines (not the total quantity).
func (s *Store) Len() int {
	return len(s.items)
}

// TotalItems is the sum of quantities across all lines; 0 for an empty cart.
func (s *Store) TotalItems() int {
	total := 0
	for _, li := range s.items {
		total += li.Quantity
	}
	return total
}

// TotalPrice is the sum of charged unit price × quantity across all lines.
func (s *Store) TotalPrice() float64 {
	var total float64
	for _, li := range s.items {
		total += li.UnitPrice() * float64(li.Quantity)
	}
	return total
}

// Open marks the cart UI as visible.
func (s *Store) Open() {
	s.open = true
}

// Close marks the cart UI as hidden.
func (s *Store) Close() {
	s.open = false
}

// IsOpen reports the UI visibility flag.
func (s *Store) IsOpen() bool {
	return s.open
}
