// Package wishlist holds per-session wishlists in process memory. Like carts,
// wishlists are ephemeral and vanish on restart.
package wishlist

import "sync"

// Item is one saved product.
type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Store is a single session's wishlist. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	items []Item
}

// NewStore returns an empty wishlist.
func NewStore() *Store {
	return &Store{}
}

// Toggle adds the item when absent and removes it when present. It reports
// whether the item is on the list after the call.
func (s *Store) Toggle(item Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, item)
	return true
}

// RemoveItem drops the item if present.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the wishlist.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the saved products in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count reports the number of saved products.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
