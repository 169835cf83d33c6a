package order

import "errors"

var (
	ErrOrderNotFound       = errors.New("order.errors.order_not_found")
	ErrFulfillmentNotFound = errors.New("order.errors.fulfillment_not_found")
)
