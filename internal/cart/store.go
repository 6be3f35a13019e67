// Package cart holds per-session shopping carts in process memory. Carts are
// deliberately ephemeral; checkout persistence belongs to the payment
// collaborator.
package cart

import "sync"

// Item is one cart line.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ItemInput identifies a product being added; quantity always starts at one.
type ItemInput struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Summary is the derived cart roll-up.
type Summary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Store is a single session's cart. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	items []Item
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// AddItem inserts the product or bumps its quantity when already present.
// Insertion order is preserved either way.
func (s *Store) AddItem(input ItemInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == input.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, Item{
		ID:       input.ID,
		Name:     input.Name,
		Price:    input.Price,
		Quantity: 1,
	})
}

// Increment bumps the quantity of an existing line. Unknown ids are a no-op.
func (s *Store) Increment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity++
			return
		}
	}
}

// Decrement lowers the quantity of an existing line and drops the line when
// it reaches zero. Unknown ids are a no-op.
func (s *Store) Decrement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].Quantity--
		if s.items[i].Quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		return
	}
}

// RemoveItem drops a line regardless of quantity.
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

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Summary derives the item count and rand total across all lines.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	var summary Summary
	for _, item := range s.items {
		summary.Count += item.Quantity
		summary.Total += item.Price * float64(item.Quantity)
	}
	return summary
}
