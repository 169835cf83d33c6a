package pg

import "context"

// logger is the slice of slog the migration runner needs. Satisfied by
// *slog.Logger, so Migrate takes whatever logger the process was wired with.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
