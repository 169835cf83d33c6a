package site

import (
	"context"

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

// GetSettings loads the single site settings row.
func (s *PGStorage) GetSettings(ctx context.Context) (Settings, error) {
	const query = `
		SELECT id, domain, name, sender_name, sender_address
		FROM site_settings
		ORDER BY created_at
		LIMIT 1`

	var settings Settings
	err := s.pool.QueryRow(ctx, query).Scan(
		&settings.ID,
		&settings.Domain,
		&settings.Name,
		&settings.SenderName,
		&settings.SenderAddress,
	)
	if err != nil {
		return Settings{}, pg.WrapNotFound(err, "site.get_settings", ErrSettingsNotFound)
	}
	return settings, nil
}

// ListStaffNotificationRecipients returns active recipients with their
// delivery address resolved: recipients bound to a staff user notify that
// user's current address, standalone ones use the stored email.
func (s *PGStorage) ListStaffNotificationRecipients(ctx context.Context) ([]StaffNotificationRecipient, error) {
	const query = `
		SELECT r.id, COALESCE(u.email, r.email, ''), r.active
		FROM staff_notification_recipients r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.active`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipients []StaffNotificationRecipient
	for rows.Next() {
		var r StaffNotificationRecipient
		if err := rows.Scan(&r.ID, &r.Email, &r.Active); err != nil {
			return nil, err
		}
		recipients = append(recipients, r)
	}
	return recipients, rows.Err()
}
