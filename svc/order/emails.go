package order

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jnbao2020/saleor/pkg/logger"
	"github.com/jnbao2020/saleor/pkg/templatedmail"
	"github.com/jnbao2020/saleor/svc/site"
)

// Template names for order lifecycle emails.
const (
	ConfirmOrderTemplate       = "order/confirm_order"
	ConfirmPaymentTemplate     = "order/confirm_payment"
	ConfirmFulfillmentTemplate = "order/confirm_fulfillment"
	UpdateFulfillmentTemplate  = "order/update_fulfillment"
	StaffConfirmOrderTemplate  = "order/staff_confirm_order"
)

// EmailData is a collected email payload: the template context plus the
// send-time options resolved from site configuration.
type EmailData struct {
	Context     templatedmail.Context
	SendOptions site.SendOptions
}

// Emails dispatches order lifecycle emails.
type Emails struct {
	cfg    site.Config
	orders Storage
	sites  site.Storage
	mailer *templatedmail.Mailer
	log    *slog.Logger
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

// NewEmails creates the order email dispatcher.
func NewEmails(cfg site.Config, orders Storage, sites site.Storage, mailer *templatedmail.Mailer, opts ...EmailsOption) *Emails {
	e := &Emails{
		cfg:    cfg,
		orders: orders,
		sites:  sites,
		mailer: mailer,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CollectOrderData gathers the template context for an order email. The
// context always carries the order record on top of the site branding;
// the order confirmation additionally embeds the structured order markup.
func (e *Emails) CollectOrderData(ctx context.Context, orderID uuid.UUID, templateName string) (EmailData, error) {
	_, data, err := e.collectOrder(ctx, orderID, templateName)
	return data, err
}

func (e *Emails) collectOrder(ctx context.Context, orderID uuid.UUID, templateName string) (Order, EmailData, error) {
	o, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return Order{}, EmailData{}, err
	}

	settings, err := e.sites.GetSettings(ctx)
	if err != nil {
		return Order{}, EmailData{}, err
	}

	base, sendOpts, err := site.EmailContext(settings, e.cfg)
	if err != nil {
		return Order{}, EmailData{}, err
	}

	emailContext := base.Merge(templatedmail.Context{
		"order":        o,
		"order_number": o.Number,
	})
	if templateName == ConfirmOrderTemplate {
		markup, err := ConfirmationMarkup(o, settings, e.cfg)
		if err != nil {
			return Order{}, EmailData{}, err
		}
		emailContext["schema_markup"] = markup
	}

	return o, EmailData{Context: emailContext, SendOptions: sendOpts}, nil
}

// CollectFulfillmentData gathers the context for a fulfillment email: the
// full order context plus the fulfillment record itself.
func (e *Emails) CollectFulfillmentData(ctx context.Context, orderID uuid.UUID, templateName string, fulfillmentID uuid.UUID) (EmailData, error) {
	_, data, err := e.collectFulfillment(ctx, orderID, templateName, fulfillmentID)
	return data, err
}

func (e *Emails) collectFulfillment(ctx context.Context, orderID uuid.UUID, templateName string, fulfillmentID uuid.UUID) (Order, EmailData, error) {
	o, data, err := e.collectOrder(ctx, orderID, templateName)
	if err != nil {
		return Order{}, EmailData{}, err
	}

	fulfillment, err := e.orders.GetFulfillment(ctx, orderID, fulfillmentID)
	if err != nil {
		return Order{}, EmailData{}, err
	}
	data.Context["fulfillment"] = fulfillment

	return o, data, nil
}

// CollectStaffNotificationData gathers the context for the staff order
// notification, which reuses the base order context.
func (e *Emails) CollectStaffNotificationData(ctx context.Context, orderID uuid.UUID, templateName string) (EmailData, error) {
	_, data, err := e.collectOrder(ctx, orderID, templateName)
	return data, err
}

// SendOrderConfirmation emails the customer that the order was placed.
func (e *Emails) SendOrderConfirmation(ctx context.Context, orderID uuid.UUID) error {
	return e.sendCustomerEmail(ctx, orderID, ConfirmOrderTemplate)
}

// SendPaymentConfirmation emails the customer that payment was received.
func (e *Emails) SendPaymentConfirmation(ctx context.Context, orderID uuid.UUID) error {
	return e.sendCustomerEmail(ctx, orderID, ConfirmPaymentTemplate)
}

func (e *Emails) sendCustomerEmail(ctx context.Context, orderID uuid.UUID, templateName string) error {
	o, data, err := e.collectOrder(ctx, orderID, templateName)
	if err != nil {
		return err
	}

	return e.mailer.Send(ctx, templatedmail.SendParams{
		TemplateName: templateName,
		Context:      data.Context,
		From:         data.SendOptions.FromEmail,
		Recipients:   []string{o.CustomerEmail()},
	})
}

// SendFulfillmentConfirmation emails the customer that a fulfillment
// shipped.
func (e *Emails) SendFulfillmentConfirmation(ctx context.Context, orderID, fulfillmentID uuid.UUID) error {
	return e.sendFulfillmentEmail(ctx, orderID, fulfillmentID, ConfirmFulfillmentTemplate)
}

// SendFulfillmentUpdate emails the customer about a change to an existing
// fulfillment, such as a new tracking number.
func (e *Emails) SendFulfillmentUpdate(ctx context.Context, orderID, fulfillmentID uuid.UUID) error {
	return e.sendFulfillmentEmail(ctx, orderID, fulfillmentID, UpdateFulfillmentTemplate)
}

func (e *Emails) sendFulfillmentEmail(ctx context.Context, orderID, fulfillmentID uuid.UUID, templateName string) error {
	o, data, err := e.collectFulfillment(ctx, orderID, templateName, fulfillmentID)
	if err != nil {
		return err
	}

	return e.mailer.Send(ctx, templatedmail.SendParams{
		TemplateName: templateName,
		Context:      data.Context,
		From:         data.SendOptions.FromEmail,
		Recipients:   []string{o.CustomerEmail()},
	})
}

// SendStaffOrderConfirmation notifies the configured staff recipients about
// a new order. With nobody subscribed the operation is a silent no-op.
func (e *Emails) SendStaffOrderConfirmation(ctx context.Context, orderID uuid.UUID) error {
	recipients, err := e.sites.ListStaffNotificationRecipients(ctx)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		e.log.LogAttrs(ctx, slog.LevelDebug, "No staff notification recipients configured, skipping",
			logger.OrderID(orderID),
		)
		return nil
	}

	_, data, err := e.collectOrder(ctx, orderID, StaffConfirmOrderTemplate)
	if err != nil {
		return err
	}

	emails := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r.Email != "" {
			emails = append(emails, r.Email)
		}
	}
	if len(emails) == 0 {
		return nil
	}

	return e.mailer.Send(ctx, templatedmail.SendParams{
		TemplateName: StaffConfirmOrderTemplate,
		Context:      data.Context,
		From:         data.SendOptions.FromEmail,
		Recipients:   emails,
	})
}
