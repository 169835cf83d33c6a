// Package email provides a provider-agnostic transport for sending
// transactional emails with built-in support for Postmark, a development
// sender that writes messages to disk, and an in-memory outbox for tests.
//
// The package is built around the EmailSender interface, allowing different
// email providers to be swapped without changing application code:
//
//	type EmailSender interface {
//		SendEmail(ctx context.Context, params SendEmailParams) error
//	}
//
// Unlike a classic single-tenant mailer, the From header travels with each
// message: storefront sites carry their own sender identity, which is
// resolved upstream and handed to the transport already formatted.
//
// # Usage
//
// Production sending with Postmark:
//
//	cfg := email.Config{
//		PostmarkServerToken:  "your-server-token",
//		PostmarkAccountToken: "your-account-token",
//		SupportEmail:         "support@example.com",
//	}
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//		// Handle configuration error
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		From:     "Mirumee Store <hello@example.com>",
//		SendTo:   []string{"customer@example.com"},
//		Subject:  "Order details",
//		BodyHTML: "<h1>Thank you for your order</h1>",
//		Tag:      "order_confirmation",
//	})
//
// Local development saves messages to disk instead of sending:
//
//	sender := email.NewDevSender("./dev_emails")
//
// Tests record messages in memory and assert on the outbox:
//
//	outbox := email.NewOutbox()
//	// ... exercise code under test ...
//	require.Equal(t, 1, outbox.Len())
//
// # Error Handling
//
// All implementations validate parameters before sending and report failures
// through the package sentinel errors:
//
//	switch {
//	case errors.Is(err, email.ErrInvalidParams):
//		// parameter validation failed, message was never handed to the provider
//	case errors.Is(err, email.ErrFailedToSendEmail):
//		// provider rejected or transport failed
//	case errors.Is(err, email.ErrInvalidConfig):
//		// sender misconfigured
//	}
package email
