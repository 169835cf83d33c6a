package templatedmail_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnbao2020/saleor/pkg/email"
	"github.com/jnbao2020/saleor/pkg/templatedmail"
)

func testRegistry(t *testing.T) *templatedmail.Registry {
	t.Helper()

	registry := templatedmail.NewRegistry()
	registry.MustRegister(templatedmail.Template{
		Name:    "order/confirm_order",
		Subject: "Order details from {{ .site_name }}",
		Body: func(c templatedmail.Context) templ.Component {
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				_, err := fmt.Fprintf(w, "<h1>Thank you for your order at %s</h1>", templ.EscapeString(c["site_name"].(string)))
				return err
			})
		},
	})
	return registry
}

func TestMailer_RenderMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("renders subject and body against context", func(t *testing.T) {
		t.Parallel()

		mailer := templatedmail.New(testRegistry(t), email.NewOutbox())

		msg, err := mailer.RenderMessage(ctx, templatedmail.SendParams{
			TemplateName: "order/confirm_order",
			Context:      templatedmail.Context{"site_name": "Mirumee Store"},
			From:         "Mirumee Store <hello@example.com>",
			Recipients:   []string{"customer@example.com"},
		})
		require.NoError(t, err)

		assert.Equal(t, "order/confirm_order", msg.TemplateName)
		assert.Equal(t, "Mirumee Store <hello@example.com>", msg.From)
		assert.Equal(t, []string{"customer@example.com"}, msg.To)
		assert.Equal(t, "Order details from Mirumee Store", msg.Subject)
		assert.Equal(t, "<h1>Thank you for your order at Mirumee Store</h1>", msg.BodyHTML)
		assert.Equal(t, "order_confirm_order", msg.Tag)
	})

	t.Run("missing from header", func(t *testing.T) {
		t.Parallel()

		mailer := templatedmail.New(testRegistry(t), email.NewOutbox())

		_, err := mailer.RenderMessage(ctx, templatedmail.SendParams{
			TemplateName: "order/confirm_order",
			Context:      templatedmail.Context{"site_name": "Store"},
			Recipients:   []string{"customer@example.com"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, templatedmail.ErrMissingFromHeader)
	})

	t.Run("no recipients", func(t *testing.T) {
		t.Parallel()

		mailer := templatedmail.New(testRegistry(t), email.NewOutbox())

		_, err := mailer.RenderMessage(ctx, templatedmail.SendParams{
			TemplateName: "order/confirm_order",
			Context:      templatedmail.Context{"site_name": "Store"},
			From:         "hello@example.com",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, templatedmail.ErrNoRecipients)
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		mailer := templatedmail.New(testRegistry(t), email.NewOutbox())

		_, err := mailer.RenderMessage(ctx, templatedmail.SendParams{
			TemplateName: "order/unknown",
			Context:      templatedmail.Context{},
			From:         "hello@example.com",
			Recipients:   []string{"customer@example.com"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, templatedmail.ErrTemplateNotFound)
	})

	t.Run("subject referencing missing key fails render", func(t *testing.T) {
		t.Parallel()

		mailer := templatedmail.New(testRegistry(t), email.NewOutbox())

		_, err := mailer.RenderMessage(ctx, templatedmail.SendParams{
			TemplateName: "order/confirm_order",
			Context:      templatedmail.Context{},
			From:         "hello@example.com",
			Recipients:   []string{"customer@example.com"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, templatedmail.ErrRenderFailed)
	})
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("delivers exactly one message", func(t *testing.T) {
		t.Parallel()

		outbox := email.NewOutbox()
		mailer := templatedmail.New(testRegistry(t), outbox)

		err := mailer.Send(ctx, templatedmail.SendParams{
			TemplateName: "order/confirm_order",
			Context:      templatedmail.Context{"site_name": "Mirumee Store"},
			From:         "Mirumee Store <hello@example.com>",
			Recipients:   []string{"customer@example.com"},
		})
		require.NoError(t, err)

		messages := outbox.Messages()
		require.Len(t, messages, 1)
		assert.Equal(t, "Mirumee Store <hello@example.com>", messages[0].From)
		assert.Equal(t, []string{"customer@example.com"}, messages[0].SendTo)
		assert.Equal(t, "Order details from Mirumee Store", messages[0].Subject)
		assert.Equal(t, "order_confirm_order", messages[0].Tag)
	})

	t.Run("render failure sends nothing", func(t *testing.T) {
		t.Parallel()

		outbox := email.NewOutbox()
		mailer := templatedmail.New(testRegistry(t), outbox)

		err := mailer.Send(ctx, templatedmail.SendParams{
			TemplateName: "order/unknown",
			Context:      templatedmail.Context{},
			From:         "hello@example.com",
			Recipients:   []string{"customer@example.com"},
		})
		require.Error(t, err)
		assert.Equal(t, 0, outbox.Len())
	})

	t.Run("transport rejection propagates", func(t *testing.T) {
		t.Parallel()

		outbox := email.NewOutbox()
		mailer := templatedmail.New(testRegistry(t), outbox)

		// The malformed recipient passes the mailer but is rejected by the
		// transport's own validation, so the outbox stays empty.
		err := mailer.Send(ctx, templatedmail.SendParams{
			TemplateName: "order/confirm_order",
			Context:      templatedmail.Context{"site_name": "Store"},
			From:         "hello@example.com",
			Recipients:   []string{"not-an-email"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, email.ErrInvalidParams)
		assert.Equal(t, 0, outbox.Len())
	})
}
