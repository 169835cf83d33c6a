// Package templatedmail layers named, reusable email templates on top of the
// email transport. Domain services register a template once and then dispatch
// messages by name with a context map, keeping rendering concerns out of the
// business logic:
//
//	registry := templatedmail.NewRegistry()
//	registry.MustRegister(templatedmail.Template{
//		Name:    "order/confirm_order",
//		Subject: "Order details",
//		Body: func(c templatedmail.Context) templ.Component {
//			return orderConfirmationBody(c)
//		},
//	})
//
//	mailer := templatedmail.New(registry, sender)
//	err := mailer.Send(ctx, templatedmail.SendParams{
//		TemplateName: "order/confirm_order",
//		Context:      emailContext,
//		From:         "Mirumee Store <hello@example.com>",
//		Recipients:   []string{"customer@example.com"},
//	})
//
// Bodies are templ components; subjects are one-line text templates rendered
// against the same context. Subject lines ship next to the templates in a
// small YAML catalog parsed with ParseSubjectCatalog.
//
// RenderMessage materializes the fully rendered message without sending it,
// which tests use to inspect exactly what would go out on the wire.
package templatedmail
