package email

import "context"

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
// From carries an already resolved header value such as
// "Info <info@example.com>"; sender resolution happens upstream.
type SendEmailParams struct {
	From     string   `json:"from"`          // Resolved "From" header value
	SendTo   []string `json:"send_to"`       // Email addresses of the recipients
	Subject  string   `json:"subject"`       // Subject of the email
	BodyHTML string   `json:"body_html"`     // HTML body of the email
	Tag      string   `json:"tag,omitempty"` // Optional
}
