package order

import (
	"context"

	"github.com/google/uuid"
)

// Storage provides access to order records.
type Storage interface {
	// GetOrder returns the order with the given id, lines included and the
	// owning user attached when the order is not a guest order.
	// ErrOrderNotFound when no such order exists.
	GetOrder(ctx context.Context, id uuid.UUID) (Order, error)

	// GetFulfillment returns the fulfillment with the given id belonging to
	// the given order. ErrFulfillmentNotFound when no such fulfillment
	// exists on that order.
	GetFulfillment(ctx context.Context, orderID, fulfillmentID uuid.UUID) (Fulfillment, error)
}
