package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jnbao2020/saleor/pkg/pg"
	"github.com/jnbao2020/saleor/svc/account"
)

// PGStorage is the Postgres-backed Storage implementation.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates storage over the given connection pool.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

// GetOrder loads an order with its lines and owning user.
func (s *PGStorage) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	const orderQuery = `
		SELECT o.id, o.number, o.token, o.user_email,
		       o.billing_address, o.shipping_address, o.shipping_method_name,
		       o.total_amount, o.currency, o.status, o.created_at,
		       u.id, u.email, u.first_name, u.last_name, u.is_staff, u.is_active, u.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.id = $1`

	var (
		o            Order
		billing      *Address
		shipping     *Address
		userID       *uuid.UUID
		userEmail    *string
		userFirst    *string
		userLast     *string
		userIsStaff  *bool
		userIsActive *bool
		userCreated  *time.Time
	)
	err := s.pool.QueryRow(ctx, orderQuery, id).Scan(
		&o.ID,
		&o.Number,
		&o.Token,
		&o.UserEmail,
		&billing,
		&shipping,
		&o.ShippingMethodName,
		&o.Total.Amount,
		&o.Total.Currency,
		&o.Status,
		&o.CreatedAt,
		&userID,
		&userEmail,
		&userFirst,
		&userLast,
		&userIsStaff,
		&userIsActive,
		&userCreated,
	)
	if err != nil {
		return Order{}, pg.WrapNotFound(err, "order.get", ErrOrderNotFound)
	}
	o.BillingAddress = billing
	o.ShippingAddress = shipping
	if userID != nil {
		user := account.User{ID: *userID}
		if userEmail != nil {
			user.Email = *userEmail
		}
		if userFirst != nil {
			user.FirstName = *userFirst
		}
		if userLast != nil {
			user.LastName = *userLast
		}
		if userIsStaff != nil {
			user.IsStaff = *userIsStaff
		}
		if userIsActive != nil {
			user.IsActive = *userIsActive
		}
		if userCreated != nil {
			user.CreatedAt = *userCreated
		}
		o.User = &user
	}

	lines, err := s.orderLines(ctx, id)
	if err != nil {
		return Order{}, err
	}
	o.Lines = lines
	return o, nil
}

func (s *PGStorage) orderLines(ctx context.Context, orderID uuid.UUID) ([]Line, error) {
	const query = `
		SELECT id, product_name, product_sku, quantity, unit_price_amount, currency
		FROM order_lines
		WHERE order_id = $1
		ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ID, &l.ProductName, &l.ProductSKU, &l.Quantity, &l.UnitPrice.Amount, &l.UnitPrice.Currency); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// GetFulfillment loads a fulfillment scoped to its order; a fulfillment id
// from another order is treated as not found.
func (s *PGStorage) GetFulfillment(ctx context.Context, orderID, fulfillmentID uuid.UUID) (Fulfillment, error) {
	const query = `
		SELECT id, order_id, fulfillment_order, tracking_number, status, created_at
		FROM fulfillments
		WHERE id = $1 AND order_id = $2`

	var f Fulfillment
	err := s.pool.QueryRow(ctx, query, fulfillmentID, orderID).Scan(
		&f.ID,
		&f.OrderID,
		&f.FulfillmentOrder,
		&f.TrackingNumber,
		&f.Status,
		&f.CreatedAt,
	)
	if err != nil {
		return Fulfillment{}, pg.WrapNotFound(err, "order.get_fulfillment", ErrFulfillmentNotFound)
	}
	return f, nil
}
