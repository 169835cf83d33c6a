package account

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront or staff account.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	IsStaff   bool
	IsActive  bool
	CreatedAt time.Time
}

// DisplayName returns the human-facing name, falling back to the email
// address when no name was provided.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}
