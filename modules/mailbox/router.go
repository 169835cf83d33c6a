package mailbox

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// RouterOptions configures the mailbox module router.
type RouterOptions struct {
	// Dir is the directory the development sender writes captured emails to.
	Dir string

	// Logger is optional; the default slog logger is used when nil.
	Logger *slog.Logger
}

// Router creates the mailbox module router. Mount it under a dev-only path:
//
//	r.Mount("/dev/mailbox", mailbox.Router(mailbox.RouterOptions{Dir: sender.Dir()}))
func Router(opts RouterOptions) chi.Router {
	var svcOpts []Option
	if opts.Logger != nil {
		svcOpts = append(svcOpts, WithLogger(opts.Logger))
	}
	svc := NewService(opts.Dir, svcOpts...)

	r := chi.NewRouter()
	r.Mount("/", svc.Handle())
	return r
}
