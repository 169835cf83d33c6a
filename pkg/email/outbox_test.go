package email_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnbao2020/saleor/pkg/email"
)

func TestOutbox_SendEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("records valid messages in order", func(t *testing.T) {
		t.Parallel()

		outbox := email.NewOutbox()

		first := email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   []string{"one@example.com"},
			Subject:  "First",
			BodyHTML: "<p>first</p>",
		}
		second := email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   []string{"two@example.com"},
			Subject:  "Second",
			BodyHTML: "<p>second</p>",
		}

		require.NoError(t, outbox.SendEmail(ctx, first))
		require.NoError(t, outbox.SendEmail(ctx, second))

		messages := outbox.Messages()
		require.Len(t, messages, 2)
		assert.Equal(t, "First", messages[0].Subject)
		assert.Equal(t, "Second", messages[1].Subject)
		assert.Equal(t, 2, outbox.Len())
	})

	t.Run("rejects invalid messages and stays empty", func(t *testing.T) {
		t.Parallel()

		outbox := email.NewOutbox()

		err := outbox.SendEmail(ctx, email.SendEmailParams{
			From:     "store@example.com\nBcc: attacker@example.com",
			SendTo:   []string{"user@example.com"},
			Subject:  "Hi",
			BodyHTML: "<p>hi</p>",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, email.ErrInvalidParams)
		assert.Equal(t, 0, outbox.Len())
	})

	t.Run("messages returns a copy", func(t *testing.T) {
		t.Parallel()

		outbox := email.NewOutbox()
		require.NoError(t, outbox.SendEmail(ctx, email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   []string{"user@example.com"},
			Subject:  "Hi",
			BodyHTML: "<p>hi</p>",
		}))

		messages := outbox.Messages()
		messages[0].Subject = "mutated"
		assert.Equal(t, "Hi", outbox.Messages()[0].Subject)
	})

	t.Run("clear empties the outbox", func(t *testing.T) {
		t.Parallel()

		outbox := email.NewOutbox()
		require.NoError(t, outbox.SendEmail(ctx, email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   []string{"user@example.com"},
			Subject:  "Hi",
			BodyHTML: "<p>hi</p>",
		}))
		require.Equal(t, 1, outbox.Len())

		outbox.Clear()
		assert.Equal(t, 0, outbox.Len())
		assert.Empty(t, outbox.Messages())
	})
}
