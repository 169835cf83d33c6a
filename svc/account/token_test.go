package account_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnbao2020/saleor/pkg/token"
	"github.com/jnbao2020/saleor/svc/account"
)

// resetTokenFromBody pulls the token query parameter out of the reset link
// embedded in a sent email body.
func resetTokenFromBody(t *testing.T, body string) string {
	t.Helper()

	const marker = "?token="
	start := strings.Index(body, marker)
	require.GreaterOrEqual(t, start, 0, "no token link in body")
	rest := body[start+len(marker):]
	end := strings.IndexAny(rest, `"'`)
	require.GreaterOrEqual(t, end, 0)

	tok, err := url.QueryUnescape(rest[:end])
	require.NoError(t, err)
	return tok
}

func TestVerifyConfirmationToken(t *testing.T) {
	t.Parallel()

	t.Run("round trip through a sent email", func(t *testing.T) {
		t.Parallel()

		user := testUser()
		f := newEmailsFixture(t, testSettings(), user)

		require.NoError(t, f.emails.SendPasswordResetEmail(context.Background(), user.ID))
		messages := f.outbox.Messages()
		require.Len(t, messages, 1)

		tok := resetTokenFromBody(t, messages[0].BodyHTML)
		claims, err := account.VerifyConfirmationToken(tok, account.PurposePasswordReset, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, account.PurposePasswordReset, claims.Purpose)
		assert.NotZero(t, claims.IssuedAt)
	})

	t.Run("wrong purpose is rejected", func(t *testing.T) {
		t.Parallel()

		user := testUser()
		f := newEmailsFixture(t, testSettings(), user)

		require.NoError(t, f.emails.SendAccountDeleteConfirmation(context.Background(), user.ID))
		messages := f.outbox.Messages()
		require.Len(t, messages, 1)

		tok := resetTokenFromBody(t, messages[0].BodyHTML)
		_, err := account.VerifyConfirmationToken(tok, account.PurposePasswordReset, "test-secret")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		t.Parallel()

		user := testUser()
		f := newEmailsFixture(t, testSettings(), user)

		require.NoError(t, f.emails.SendPasswordResetEmail(context.Background(), user.ID))
		tok := resetTokenFromBody(t, f.outbox.Messages()[0].BodyHTML)

		_, err := account.VerifyConfirmationToken(tok, account.PurposePasswordReset, "other-secret")
		assert.Error(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()

		_, err := account.VerifyConfirmationToken("anything", account.PurposePasswordReset, "")
		assert.ErrorIs(t, err, account.ErrMissingSecret)
	})
}

func TestUserDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user account.User
		want string
	}{
		{name: "full name", user: account.User{FirstName: "Jane", LastName: "Doe", Email: "j@example.com"}, want: "Jane Doe"},
		{name: "first name only", user: account.User{FirstName: "Jane", Email: "j@example.com"}, want: "Jane"},
		{name: "email fallback", user: account.User{Email: "j@example.com"}, want: "j@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}
