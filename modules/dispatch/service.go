package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jnbao2020/saleor/pkg/logger"
	"github.com/jnbao2020/saleor/svc/account"
	"github.com/jnbao2020/saleor/svc/order"
)

// Service exposes the email dispatch operations over HTTP so the storefront
// can trigger transactional mail on order and account events.
type Service struct {
	orders   *order.Emails
	accounts *account.Emails
	health   func(context.Context) error
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithHealthcheck registers a readiness check served on GET /health.
func WithHealthcheck(check func(context.Context) error) Option {
	return func(s *Service) {
		s.health = check
	}
}

// NewService creates the dispatch service over the given email dispatchers.
func NewService(orders *order.Emails, accounts *account.Emails, opts ...Option) *Service {
	s := &Service{
		orders:   orders,
		accounts: accounts,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the HTTP handler for the dispatch API. Sends are
// synchronous: a 200 response means the transport accepted the message.
//
//	POST /orders/{orderID}/emails/confirmation
//	POST /orders/{orderID}/emails/payment-confirmation
//	POST /orders/{orderID}/emails/staff-notification
//	POST /orders/{orderID}/fulfillments/{fulfillmentID}/emails/confirmation
//	POST /orders/{orderID}/fulfillments/{fulfillmentID}/emails/update
//	POST /users/{userID}/emails/account-delete
//	POST /users/{userID}/emails/password-reset
//	POST /users/{userID}/emails/staff-set-password
//	GET  /health
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/orders/{orderID}/emails/confirmation", s.orderEmail(s.orders.SendOrderConfirmation))
	r.Post("/orders/{orderID}/emails/payment-confirmation", s.orderEmail(s.orders.SendPaymentConfirmation))
	r.Post("/orders/{orderID}/emails/staff-notification", s.orderEmail(s.orders.SendStaffOrderConfirmation))
	r.Post("/orders/{orderID}/fulfillments/{fulfillmentID}/emails/confirmation", s.fulfillmentEmail(s.orders.SendFulfillmentConfirmation))
	r.Post("/orders/{orderID}/fulfillments/{fulfillmentID}/emails/update", s.fulfillmentEmail(s.orders.SendFulfillmentUpdate))

	r.Post("/users/{userID}/emails/account-delete", s.userEmail(s.accounts.SendAccountDeleteConfirmation))
	r.Post("/users/{userID}/emails/password-reset", s.userEmail(s.accounts.SendPasswordResetEmail))
	r.Post("/users/{userID}/emails/staff-set-password", s.userEmail(s.accounts.SendStaffSetPasswordEmail))

	r.Get("/health", s.healthcheck)

	return r
}

func (s *Service) orderEmail(send func(context.Context, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}
		if err := send(r.Context(), orderID); err != nil {
			s.sendError(w, r, err, logger.OrderID(orderID))
			return
		}
		s.sent(w, r)
	}
}

func (s *Service) fulfillmentEmail(send func(context.Context, uuid.UUID, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}
		fulfillmentID, err := uuid.Parse(chi.URLParam(r, "fulfillmentID"))
		if err != nil {
			http.Error(w, "invalid fulfillment id", http.StatusBadRequest)
			return
		}
		if err := send(r.Context(), orderID, fulfillmentID); err != nil {
			s.sendError(w, r, err, logger.OrderID(orderID))
			return
		}
		s.sent(w, r)
	}
}

func (s *Service) userEmail(send func(context.Context, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}
		if err := send(r.Context(), userID); err != nil {
			s.sendError(w, r, err, logger.UserID(userID))
			return
		}
		s.sent(w, r)
	}
}

func (s *Service) sendError(w http.ResponseWriter, r *http.Request, err error, attrs ...slog.Attr) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrFulfillmentNotFound),
		errors.Is(err, account.ErrUserNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		attrs = append(attrs, logger.Error(err))
		s.log.LogAttrs(r.Context(), slog.LevelError, "Failed to dispatch email", attrs...)
		http.Error(w, "failed to dispatch email", http.StatusInternalServerError)
	}
}

func (s *Service) sent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "sent"}); err != nil {
		s.log.ErrorContext(r.Context(), "Failed to encode dispatch response", logger.Error(err))
	}
}

func (s *Service) healthcheck(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			s.log.ErrorContext(r.Context(), "Healthcheck failed", logger.Error(err))
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}
