package account

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"github.com/jnbao2020/saleor/pkg/templatedmail"
	"github.com/jnbao2020/saleor/svc/site"
)

// Template names for account management emails.
const (
	AccountDeleteTemplate    = "account/account_delete"
	PasswordResetTemplate    = "account/password_reset"
	StaffSetPasswordTemplate = "dashboard/staff/set_password"
)

// Config holds account email configuration. TokenSecret signs the
// confirmation tokens embedded in account emails and is required for any
// of the flows to work.
type Config struct {
	TokenSecret string `env:"ACCOUNT_TOKEN_SECRET"`
}

// Emails dispatches account management emails.
type Emails struct {
	cfg     site.Config
	account Config
	users   Storage
	sites   site.Storage
	mailer  *templatedmail.Mailer
	log     *slog.Logger
}

// EmailsOption configures an Emails service.
type EmailsOption func(*Emails)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(log *slog.Logger) EmailsOption {
	return func(e *Emails) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEmails creates the account email dispatcher.
func NewEmails(cfg site.Config, account Config, users Storage, sites site.Storage, mailer *templatedmail.Mailer, opts ...EmailsOption) *Emails {
	e := &Emails{
		cfg:     cfg,
		account: account,
		users:   users,
		sites:   sites,
		mailer:  mailer,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SendAccountDeleteConfirmation emails the user a link confirming deletion
// of their account.
func (e *Emails) SendAccountDeleteConfirmation(ctx context.Context, userID uuid.UUID) error {
	return e.sendConfirmationEmail(ctx, userID, AccountDeleteTemplate, PurposeAccountDelete, "/account/delete/confirm/")
}

// SendPasswordResetEmail emails the user a link to choose a new password.
func (e *Emails) SendPasswordResetEmail(ctx context.Context, userID uuid.UUID) error {
	return e.sendConfirmationEmail(ctx, userID, PasswordResetTemplate, PurposePasswordReset, "/account/password-reset/confirm/")
}

// SendStaffSetPasswordEmail invites a newly created staff member to set
// their dashboard password. Same token flow as a customer password reset,
// different template and landing page.
func (e *Emails) SendStaffSetPasswordEmail(ctx context.Context, userID uuid.UUID) error {
	return e.sendConfirmationEmail(ctx, userID, StaffSetPasswordTemplate, PurposePasswordReset, "/dashboard/password-set/confirm/")
}

func (e *Emails) sendConfirmationEmail(ctx context.Context, userID uuid.UUID, templateName string, purpose TokenPurpose, confirmPath string) error {
	user, err := e.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	settings, err := e.sites.GetSettings(ctx)
	if err != nil {
		return err
	}

	base, sendOpts, err := site.EmailContext(settings, e.cfg)
	if err != nil {
		return err
	}

	tok, err := newConfirmationToken(user, purpose, e.account.TokenSecret)
	if err != nil {
		return err
	}
	confirmURL := settings.AbsoluteURI(e.cfg, confirmPath+"?token="+url.QueryEscape(tok))

	emailContext := base.Merge(templatedmail.Context{
		"user":        user,
		"confirm_url": confirmURL,
	})

	return e.mailer.Send(ctx, templatedmail.SendParams{
		TemplateName: templateName,
		Context:      emailContext,
		From:         sendOpts.FromEmail,
		Recipients:   []string{user.Email},
	})
}
