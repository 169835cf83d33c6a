package site

import "errors"

var (
	// ErrNoSenderAddress is returned when neither the site settings nor the
	// global configuration provide a sender address. The message is part of
	// the operator-facing contract, surfaced verbatim in configuration
	// diagnostics.
	ErrNoSenderAddress = errors.New("No sender email address has been set-up")

	// ErrUnsafeSenderValue is returned when an admin-editable sender field
	// contains a header-delimiting character. Sending with such a value
	// would allow header injection, so the send is refused.
	ErrUnsafeSenderValue = errors.New("site.errors.unsafe_sender_value")

	// ErrSettingsNotFound is returned when no site settings record exists.
	ErrSettingsNotFound = errors.New("site.errors.settings_not_found")
)
