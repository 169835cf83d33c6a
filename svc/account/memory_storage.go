package account

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage is an in-memory Storage implementation used in tests and
// local development.
type MemoryStorage struct {
	mu    sync.RWMutex
	users map[uuid.UUID]User
}

// NewMemoryStorage creates storage seeded with the given users.
func NewMemoryStorage(users ...User) *MemoryStorage {
	s := &MemoryStorage{users: make(map[uuid.UUID]User, len(users))}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

// AddUser stores or replaces a user record.
func (s *MemoryStorage) AddUser(ctx context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return nil
}

// GetUser returns the user with the given id.
func (s *MemoryStorage) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}
