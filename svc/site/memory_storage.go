package site

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory Storage implementation used in tests and
// local development.
type MemoryStorage struct {
	mu         sync.RWMutex
	settings   *Settings
	recipients []StaffNotificationRecipient
}

// NewMemoryStorage creates storage seeded with the given settings.
func NewMemoryStorage(settings Settings) *MemoryStorage {
	return &MemoryStorage{settings: &settings}
}

// GetSettings returns the current settings snapshot.
func (s *MemoryStorage) GetSettings(ctx context.Context) (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return Settings{}, ErrSettingsNotFound
	}
	return *s.settings, nil
}

// UpdateSettings replaces the stored settings, mirroring an admin edit.
func (s *MemoryStorage) UpdateSettings(ctx context.Context, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

// AddStaffNotificationRecipient registers a staff notification recipient.
func (s *MemoryStorage) AddStaffNotificationRecipient(ctx context.Context, r StaffNotificationRecipient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipients = append(s.recipients, r)
	return nil
}

// ListStaffNotificationRecipients returns the active recipients.
func (s *MemoryStorage) ListStaffNotificationRecipients(ctx context.Context) ([]StaffNotificationRecipient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StaffNotificationRecipient, 0, len(s.recipients))
	for _, r := range s.recipients {
		if r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}
