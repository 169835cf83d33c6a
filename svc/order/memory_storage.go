package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage is an in-memory Storage implementation used in tests and
// local development.
type MemoryStorage struct {
	mu           sync.RWMutex
	orders       map[uuid.UUID]Order
	fulfillments map[uuid.UUID][]Fulfillment
}

// NewMemoryStorage creates empty storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		orders:       make(map[uuid.UUID]Order),
		fulfillments: make(map[uuid.UUID][]Fulfillment),
	}
}

// AddOrder stores or replaces an order.
func (s *MemoryStorage) AddOrder(ctx context.Context, o Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return nil
}

// AddFulfillment stores a fulfillment under its order.
func (s *MemoryStorage) AddFulfillment(ctx context.Context, f Fulfillment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fulfillments[f.OrderID] = append(s.fulfillments[f.OrderID], f)
	return nil
}

// GetOrder returns the order with the given id.
func (s *MemoryStorage) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

// GetFulfillment returns the fulfillment with the given id on the given order.
func (s *MemoryStorage) GetFulfillment(ctx context.Context, orderID, fulfillmentID uuid.UUID) (Fulfillment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.fulfillments[orderID] {
		if f.ID == fulfillmentID {
			return f, nil
		}
	}
	return Fulfillment{}, ErrFulfillmentNotFound
}
