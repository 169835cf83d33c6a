package dispatch

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/jnbao2020/saleor/svc/account"
	"github.com/jnbao2020/saleor/svc/order"
)

// RouterOptions configures the dispatch module router.
type RouterOptions struct {
	// Orders dispatches order lifecycle emails.
	Orders *order.Emails

	// Accounts dispatches account management emails.
	Accounts *account.Emails

	// Health is an optional readiness check served on GET /health.
	Health func(context.Context) error

	// Logger is optional; the default slog logger is used when nil.
	Logger *slog.Logger
}

// Router creates the dispatch module router:
//
//	r.Mount("/internal/emails", dispatch.Router(dispatch.RouterOptions{
//		Orders:   orderEmails,
//		Accounts: accountEmails,
//		Health:   pg.Healthcheck(pool),
//	}))
func Router(opts RouterOptions) chi.Router {
	svcOpts := []Option{WithHealthcheck(opts.Health)}
	if opts.Logger != nil {
		svcOpts = append(svcOpts, WithLogger(opts.Logger))
	}
	svc := NewService(opts.Orders, opts.Accounts, svcOpts...)

	r := chi.NewRouter()
	r.Mount("/", svc.Handle())
	return r
}
