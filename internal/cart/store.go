package cart

import (
	"log"
	"strings"
	"sync"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
)

const placeholderDescription = "Sin descripción disponible"

// Listener receives the full cart snapshot after every mutation.
type Listener func(domain.CartState)

// Store owns the cart's item collection. It is the single writer: every
// mutation recomputes the derived totals and publishes one consistent
// snapshot, so readers never observe items and totals that disagree.
type Store struct {
	mu        sync.RWMutex
	items     []domain.CartItem
	state     domain.CartState
	listeners []Listener
}

func NewStore() *Store {
	return &Store{state: domain.CartState{Items: []domain.CartItem{}}}
}

// Subscribe registers a listener for cart snapshots. Listeners are invoked
// after the new state is published, outside the store lock.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// CurrentState returns the latest published snapshot.
func (s *Store) CurrentState() domain.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Add puts qty units of the product into the cart. The product is normalized
// first; if an item with the same id is already present its quantity is
// incremented instead of adding a second line.
func (s *Store) Add(product domain.Product, qty int) domain.CartState {
	if qty < 1 {
		log.Printf("cart: ignoring add of %q with quantity %d", product.ID, qty)
		return s.CurrentState()
	}

	normalized := normalizeProduct(product)

	return s.mutate(func() bool {
		for i := range s.items {
			if s.items[i].ProductID == normalized.ID {
				s.items[i].Quantity += qty
				return true
			}
		}
		s.items = append(s.items, domain.CartItem{
			ProductID: normalized.ID,
			Name:      normalized.Name,
			UnitPrice: normalized.Price,
			Quantity:  qty,
			ImageURL:  resolveImageURL(normalized),
			Product:   &normalized,
		})
		return true
	})
}

// SetQuantity replaces the quantity of the item with the given id.
// Quantities below 1 are rejected; removal is a separate explicit action.
func (s *Store) SetQuantity(productID string, qty int) domain.CartState {
	if qty < 1 {
		log.Printf("cart: ignoring quantity %d for %q", qty, productID)
		return s.CurrentState()
	}

	return s.mutate(func() bool {
		for i := range s.items {
			if s.items[i].ProductID == productID {
				s.items[i].Quantity = qty
				return true
			}
		}
		return false
	})
}

func (s *Store) IncrementQuantity(productID string) domain.CartState {
	return s.mutate(func() bool {
		for i := range s.items {
			if s.items[i].ProductID == productID {
				s.items[i].Quantity++
				return true
			}
		}
		return false
	})
}

// DecrementQuantity lowers the quantity by one, flooring at 1.
func (s *Store) DecrementQuantity(productID string) domain.CartState {
	return s.mutate(func() bool {
		for i := range s.items {
			if s.items[i].ProductID == productID && s.items[i].Quantity > 1 {
				s.items[i].Quantity--
				return true
			}
		}
		return false
	})
}

// Remove deletes the item if present; absent ids are not an error.
func (s *Store) Remove(productID string) domain.CartState {
	return s.mutate(func() bool {
		for i := range s.items {
			if s.items[i].ProductID == productID {
				s.items = append(s.items[:i], s.items[i+1:]...)
				return true
			}
		}
		return false
	})
}

// Clear resets the cart to the empty state.
func (s *Store) Clear() domain.CartState {
	return s.mutate(func() bool {
		s.items = nil
		return true
	})
}

func (s *Store) IsInCart(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// QuantityOf returns the quantity of the item, or 0 when absent.
func (s *Store) QuantityOf(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// mutate applies fn under the write lock, recomputes the derived totals, and
// publishes the resulting snapshot in the same critical section. Listeners
// fire afterwards, outside the lock. When fn reports no change the previous
// snapshot is returned untouched and nothing is published.
func (s *Store) mutate(fn func() bool) domain.CartState {
	s.mu.Lock()

	if !fn() {
		state := s.state
		s.mu.Unlock()
		return state
	}

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	var total float64
	var count int
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
		count += item.Quantity
	}

	state := domain.CartState{Items: items, Total: total, Count: count}
	s.state = state

	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
	return state
}

// normalizeProduct fills the gaps a partially loaded catalog record may have
// before it is compared or stored.
func normalizeProduct(p domain.Product) domain.Product {
	if strings.TrimSpace(p.Description) == "" {
		p.Description = placeholderDescription
	}
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	if len(p.Images) == 0 {
		p.Images = []string{domain.DefaultImageURL}
	}
	return p
}

// resolveImageURL picks the first usable image, falling back to the default asset.
func resolveImageURL(p domain.Product) string {
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			return img
		}
	}
	return domain.DefaultImageURL
}
