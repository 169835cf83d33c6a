package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jnbao2020/saleor/svc/account"
)

// Status of an order.
type Status string

const (
	StatusDraft              Status = "draft"
	StatusUnfulfilled        Status = "unfulfilled"
	StatusPartiallyFulfilled Status = "partially_fulfilled"
	StatusFulfilled          Status = "fulfilled"
	StatusCanceled           Status = "canceled"
)

// FulfillmentStatus of a fulfillment.
type FulfillmentStatus string

const (
	FulfillmentStatusFulfilled FulfillmentStatus = "fulfilled"
	FulfillmentStatusCanceled  FulfillmentStatus = "canceled"
)

// Money is an amount in minor units of a currency. Prices stay in integer
// minor units end to end; display formatting is the only place a decimal
// point appears.
type Money struct {
	Amount   int64
	Currency string
}

// Display renders the amount with two decimal places, e.g. 1234 -> "12.34".
func (m Money) Display() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

// String renders the amount with its currency code.
func (m Money) String() string {
	return m.Display() + " " + m.Currency
}

// Address is a postal address attached to an order. Orders for digital
// goods may carry no address at all.
type Address struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	StreetAddress1 string `json:"street_address_1"`
	StreetAddress2 string `json:"street_address_2"`
	City           string `json:"city"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
}

// Line is a single purchasable position of an order.
type Line struct {
	ID          uuid.UUID
	ProductName string
	ProductSKU  string
	Quantity    int
	UnitPrice   Money
}

// Fulfillment groups shipped lines of an order.
type Fulfillment struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	FulfillmentOrder int
	TrackingNumber   string
	Status           FulfillmentStatus
	CreatedAt        time.Time
}

// CompositeID is the customer-facing fulfillment identifier, derived from
// the order number and the fulfillment's position within the order.
func (f Fulfillment) CompositeID(orderNumber int64) string {
	return fmt.Sprintf("%d-%d", orderNumber, f.FulfillmentOrder)
}

// Order is a placed storefront order.
type Order struct {
	ID                 uuid.UUID
	Number             int64
	Token              uuid.UUID // public identifier used in customer-facing URLs
	User               *account.User
	UserEmail          string // email captured at checkout for guest orders
	BillingAddress     *Address
	ShippingAddress    *Address
	ShippingMethodName string
	Lines              []Line
	Total              Money
	Status             Status
	CreatedAt          time.Time
}

// CustomerEmail returns the address order notifications go to: the account
// email when the order belongs to a user, otherwise the email captured at
// checkout.
func (o Order) CustomerEmail() string {
	if o.User != nil && o.User.Email != "" {
		return o.User.Email
	}
	return o.UserEmail
}
