package site

import "context"

// Storage provides access to site configuration records.
type Storage interface {
	// GetSettings returns the site settings. ErrSettingsNotFound when the
	// site has not been configured yet.
	GetSettings(ctx context.Context) (Settings, error)

	// ListStaffNotificationRecipients returns the active staff notification
	// recipients. An empty list is not an error; callers treat it as
	// "nobody subscribed".
	ListStaffNotificationRecipients(ctx context.Context) ([]StaffNotificationRecipient, error)
}
