package account

import (
	"context"

	"github.com/google/uuid"
)

// Storage provides access to user records.
type Storage interface {
	// GetUser returns the user with the given id. ErrUserNotFound when no
	// such user exists.
	GetUser(ctx context.Context, id uuid.UUID) (User, error)
}
