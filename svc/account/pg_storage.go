package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jnbao2020/saleor/pkg/pg"
)

// PGStorage is the Postgres-backed Storage implementation.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates storage over the given connection pool.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

// GetUser loads a user by primary key.
func (s *PGStorage) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	const query = `
		SELECT id, email, first_name, last_name, is_staff, is_active, created_at
		FROM users
		WHERE id = $1`

	var u User
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.IsStaff,
		&u.IsActive,
		&u.CreatedAt,
	)
	if err != nil {
		return User{}, pg.WrapNotFound(err, "account.get_user", ErrUserNotFound)
	}
	return u, nil
}
