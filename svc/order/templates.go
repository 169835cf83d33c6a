package order

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/jnbao2020/saleor/pkg/templatedmail"
)

//go:embed subjects.yaml
var subjectsYAML []byte

// RegisterTemplates adds the order lifecycle email templates to the
// registry.
func RegisterTemplates(registry *templatedmail.Registry) error {
	subjects, err := templatedmail.ParseSubjectCatalog(subjectsYAML)
	if err != nil {
		return err
	}

	templates := []templatedmail.Template{
		{Name: ConfirmOrderTemplate, Subject: subjects[ConfirmOrderTemplate], Body: confirmOrderBody},
		{Name: ConfirmPaymentTemplate, Subject: subjects[ConfirmPaymentTemplate], Body: confirmPaymentBody},
		{Name: ConfirmFulfillmentTemplate, Subject: subjects[ConfirmFulfillmentTemplate], Body: confirmFulfillmentBody},
		{Name: UpdateFulfillmentTemplate, Subject: subjects[UpdateFulfillmentTemplate], Body: updateFulfillmentBody},
		{Name: StaffConfirmOrderTemplate, Subject: subjects[StaffConfirmOrderTemplate], Body: staffConfirmOrderBody},
	}
	for _, tpl := range templates {
		if err := registry.Register(tpl); err != nil {
			return err
		}
	}
	return nil
}

// MustRegisterTemplates registers the templates and panics on error.
// Template wiring happens once at startup.
func MustRegisterTemplates(registry *templatedmail.Registry) {
	if err := RegisterTemplates(registry); err != nil {
		panic(err)
	}
}

func contextOrder(c templatedmail.Context) Order {
	o, _ := c["order"].(Order)
	return o
}

func contextFulfillment(c templatedmail.Context) Fulfillment {
	f, _ := c["fulfillment"].(Fulfillment)
	return f
}

func confirmOrderBody(c templatedmail.Context) templ.Component {
	o := contextOrder(c)
	markup, _ := c["schema_markup"].(string)
	siteName, _ := c["site_name"].(string)
	return templatedmail.Layout(c,
		templatedmail.Heading("Thank you for your order"),
		templatedmail.Text(fmt.Sprintf("Your order %d on %s has been received.", o.Number, siteName)),
		linesTable(o),
		templatedmail.Text(fmt.Sprintf("Order total: %s", o.Total)),
		templatedmail.JSONLD(markup),
	)
}

func confirmPaymentBody(c templatedmail.Context) templ.Component {
	o := contextOrder(c)
	return templatedmail.Layout(c,
		templatedmail.Heading("Payment received"),
		templatedmail.Text(fmt.Sprintf("We have received your payment of %s for order %d.", o.Total, o.Number)),
	)
}

func confirmFulfillmentBody(c templatedmail.Context) templ.Component {
	o := contextOrder(c)
	f := contextFulfillment(c)
	children := []templ.Component{
		templatedmail.Heading("Your order is on its way"),
		templatedmail.Text(fmt.Sprintf("Shipment %s of order %d has been dispatched.", f.CompositeID(o.Number), o.Number)),
	}
	if f.TrackingNumber != "" {
		children = append(children, templatedmail.Text(fmt.Sprintf("Tracking number: %s", f.TrackingNumber)))
	}
	return templatedmail.Layout(c, children...)
}

func updateFulfillmentBody(c templatedmail.Context) templ.Component {
	o := contextOrder(c)
	f := contextFulfillment(c)
	children := []templ.Component{
		templatedmail.Heading("Shipping update"),
		templatedmail.Text(fmt.Sprintf("Shipment %s of order %d has been updated.", f.CompositeID(o.Number), o.Number)),
	}
	if f.TrackingNumber != "" {
		children = append(children, templatedmail.Text(fmt.Sprintf("New tracking number: %s", f.TrackingNumber)))
	}
	return templatedmail.Layout(c, children...)
}

func staffConfirmOrderBody(c templatedmail.Context) templ.Component {
	o := contextOrder(c)
	return templatedmail.Layout(c,
		templatedmail.Heading("New order placed"),
		templatedmail.Text(fmt.Sprintf("Order %d for %s was just placed by %s.", o.Number, o.Total, o.CustomerEmail())),
		linesTable(o),
	)
}

// linesTable renders the purchased lines. Orders without lines (for
// example draft orders) render an empty table body rather than failing.
func linesTable(o Order) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table width="100%" cellpadding="8" cellspacing="0" style="font-size:14px;color:#333333;border-collapse:collapse;">`); err != nil {
			return err
		}
		for _, line := range o.Lines {
			if _, err := fmt.Fprintf(w,
				`<tr style="border-bottom:1px solid #eeeeee;"><td>%s</td><td align="center">%d</td><td align="right">%s</td></tr>`,
				templ.EscapeString(line.ProductName), line.Quantity, templ.EscapeString(line.UnitPrice.String())); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table>`)
		return err
	})
}
