package templatedmail

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jnbao2020/saleor/pkg/email"
	"github.com/jnbao2020/saleor/pkg/logger"
)

// Mailer renders registered templates and hands the result to the transport.
// One Send performs at most one transport call; delivery reliability beyond
// that is the provider's responsibility.
type Mailer struct {
	registry *Registry
	sender   email.EmailSender
	log      *slog.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for send diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(m *Mailer) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Mailer over the given registry and transport.
func New(registry *Registry, sender email.EmailSender, opts ...Option) *Mailer {
	m := &Mailer{
		registry: registry,
		sender:   sender,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendParams identifies what to render and where to deliver it.
type SendParams struct {
	TemplateName string
	Context      Context
	From         string
	Recipients   []string
}

// Message is a fully rendered email, materialized for inspection or delivery.
type Message struct {
	TemplateName string
	From         string
	To           []string
	Subject      string
	BodyHTML     string
	Tag          string
}

// RenderMessage renders the named template against the context without
// sending anything. Tests use it to assert on the exact outgoing message.
func (m *Mailer) RenderMessage(ctx context.Context, params SendParams) (Message, error) {
	if strings.TrimSpace(params.From) == "" {
		return Message{}, ErrMissingFromHeader
	}
	if len(params.Recipients) == 0 {
		return Message{}, ErrNoRecipients
	}

	tpl, err := m.registry.Lookup(params.TemplateName)
	if err != nil {
		return Message{}, err
	}

	subject, err := renderSubject(tpl.Subject, params.Context)
	if err != nil {
		return Message{}, errors.Join(ErrRenderFailed, err)
	}

	body, err := renderComponent(ctx, tpl.Body(params.Context))
	if err != nil {
		return Message{}, errors.Join(ErrRenderFailed, err)
	}

	return Message{
		TemplateName: tpl.Name,
		From:         params.From,
		To:           params.Recipients,
		Subject:      subject,
		BodyHTML:     body,
		Tag:          tpl.Tag(),
	}, nil
}

// Send renders the template and delivers the message through the transport.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	msg, err := m.RenderMessage(ctx, params)
	if err != nil {
		return err
	}

	if err := m.sender.SendEmail(ctx, email.SendEmailParams{
		From:     msg.From,
		SendTo:   msg.To,
		Subject:  msg.Subject,
		BodyHTML: msg.BodyHTML,
		Tag:      msg.Tag,
	}); err != nil {
		m.log.LogAttrs(ctx, slog.LevelError, "Failed to send templated email",
			logger.Template(msg.TemplateName),
			logger.RecipientCount(len(msg.To)),
			logger.Error(err),
		)
		return err
	}

	m.log.LogAttrs(ctx, slog.LevelDebug, "Templated email sent",
		logger.Template(msg.TemplateName),
		logger.RecipientCount(len(msg.To)),
	)
	return nil
}
