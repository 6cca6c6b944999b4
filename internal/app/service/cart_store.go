package service

import (
	"sync"

	"github.com/dsev/locknlock-bff/internal/app/model"
)

// CartStore holds one shopper's cart lines in memory between backend syncs.
// All mutations go through the store so totals never drift from the items.
type CartStore struct {
	mu    sync.Mutex
	items []model.CartLineItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// ReplaceAll swaps the whole cart for the lines the backend returned.
func (s *CartStore) ReplaceAll(items []model.CartLineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]model.CartLineItem, len(items))
	copy(s.items, items)
}

// AddOrMerge inserts a line, or bumps the quantity when a line with the
// same id is already present.
func (s *CartStore) AddOrMerge(item model.CartLineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			return
		}
	}
	s.items = append(s.items, item)
}

// SetQuantity updates a line's quantity. Quantities below one are ignored,
// removal is an explicit operation.
func (s *CartStore) SetQuantity(itemID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops a line by id. Removing an unknown id is a no-op.
func (s *CartStore) Remove(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// Items returns a copy of the current lines.
func (s *CartStore) Items() []model.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount is the total quantity across all lines.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.items {
		count += s.items[i].Quantity
	}
	return count
}

// Subtotal is the sum of unit price times quantity across all lines.
func (s *CartStore) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for i := range s.items {
		total += s.items[i].UnitPrice * int64(s.items[i].Quantity)
	}
	return total
}

// View snapshots the cart into the shape the storefront renders.
func (s *CartStore) View() model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.CartLineItem, len(s.items))
	copy(items, s.items)

	count := 0
	var total int64
	for i := range items {
		count += items[i].Quantity
		total += items[i].UnitPrice * int64(items[i].Quantity)
	}

	return model.CartView{
		Items:     items,
		ItemCount: count,
		Subtotal:  total,
	}
}
