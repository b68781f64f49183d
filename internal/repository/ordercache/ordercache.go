package ordercache

import (
	"sync"

	"laundry-admin/internal/entities"
)

// Store is the in-memory snapshot of the last successful backend join.
// Readers get copies; the snapshot is only swapped wholesale or patched
// through SetStatus, so a slow reader never observes a half-applied refresh.
type Store struct {
	mu     sync.RWMutex
	orders []entities.Order
}

func New() *Store {
	return &Store{}
}

// Replace swaps the whole snapshot, preserving the backend's ordering.
func (s *Store) Replace(orders []entities.Order) {
	copied := make([]entities.Order, len(orders))
	copy(copied, orders)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = copied
}

// All returns a copy of the current snapshot.
func (s *Store) All() []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]entities.Order, len(s.orders))
	copy(copied, s.orders)
	return copied
}

// Get looks an order up by id.
func (s *Store) Get(id int64) (entities.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return entities.Order{}, false
}

// SetStatus patches one order's status in place and returns the previous
// status, so a failed backend write can be reverted.
func (s *Store) SetStatus(id int64, status entities.OrderStatusType) (entities.OrderStatusType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			previous := s.orders[i].Status
			s.orders[i].Status = status
			return previous, true
		}
	}
	return "", false
}

// Len reports the snapshot size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
