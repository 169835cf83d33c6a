package account

import "errors"

var (
	ErrUserNotFound  = errors.New("account.errors.user_not_found")
	ErrMissingSecret = errors.New("account.errors.token_secret_not_configured")
)
