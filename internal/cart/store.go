// Package cart holds the active session's cart: an ordered collection
// of line items, unique by product id, owned by exactly one session.
package cart

import (
	"sync"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/pricing"
	"github.com/shopspring/decimal"
)

// Store keeps line items in insertion order. Every mutating operation
// leaves the store internally consistent: no duplicate ids and no
// quantity below 1.
type Store struct {
	mu    sync.RWMutex
	items []domain.LineItem
}

func NewStore() *Store {
	return &Store{}
}

// Add inserts item at the end of the cart, or increments the existing
// entry's quantity when the product id is already present. A quantity
// below 1 is a no-op, mirroring UpdateQuantity.
func (s *Store) Add(item domain.LineItem, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += quantity
			return
		}
	}

	item.Quantity = quantity
	s.items = append(s.items, item)
}

// UpdateQuantity replaces the quantity for the given product id.
// Values below 1 are silently ignored; removal is an explicit,
// separate action.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line item with the given product id, if present.
func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. The checkout flow calls this only after the
// order has been durably appended to the ledger.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a deep copy of the cart contents in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneItems(s.items)
}

// Breakdown derives the current price breakdown. It is recomputed on
// every call, never cached across mutations.
func (s *Store) Breakdown() pricing.Breakdown {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pricing.Compute(s.items)
}

// TotalPrice is the freshly derived total over current contents.
func (s *Store) TotalPrice() decimal.Decimal {
	return s.Breakdown().Total
}

// IsEmpty is true iff no line items remain.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) == 0
}

// Len is the number of distinct line items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
