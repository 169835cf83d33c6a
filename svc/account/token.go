package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/jnbao2020/saleor/pkg/token"
)

// TokenPurpose scopes a confirmation token to one flow; a password reset
// token must not be able to confirm an account deletion.
type TokenPurpose string

const (
	PurposeAccountDelete TokenPurpose = "account_delete"
	PurposePasswordReset TokenPurpose = "password_reset"
)

// ConfirmationClaims is the payload of account confirmation tokens.
// Binding the email address invalidates outstanding tokens when the user
// changes their address.
type ConfirmationClaims struct {
	UserID   uuid.UUID    `json:"user_id"`
	Email    string       `json:"email"`
	Purpose  TokenPurpose `json:"purpose"`
	IssuedAt int64        `json:"issued_at"`
}

func newConfirmationToken(u User, purpose TokenPurpose, secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	return token.GenerateToken(ConfirmationClaims{
		UserID:   u.ID,
		Email:    u.Email,
		Purpose:  purpose,
		IssuedAt: time.Now().Unix(),
	}, secret)
}

// VerifyConfirmationToken parses a confirmation token and checks it was
// issued for the expected purpose.
func VerifyConfirmationToken(tok string, purpose TokenPurpose, secret string) (ConfirmationClaims, error) {
	if secret == "" {
		return ConfirmationClaims{}, ErrMissingSecret
	}
	claims, err := token.ParseToken[ConfirmationClaims](tok, secret)
	if err != nil {
		return ConfirmationClaims{}, err
	}
	if claims.Purpose != purpose {
		return ConfirmationClaims{}, token.ErrInvalidToken
	}
	return claims, nil
}
