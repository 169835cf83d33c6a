package order

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/jnbao2020/saleor/svc/site"
)

// ConfirmationMarkup builds the schema.org Order JSON-LD embedded in order
// confirmation emails so inbox providers can surface order details. Only
// the confirmation email carries it; other order emails omit the markup.
func ConfirmationMarkup(o Order, settings site.Settings, cfg site.Config) (string, error) {
	orderURL := settings.AbsoluteURI(cfg, "/order/"+o.Token.String()+"/")

	offers := make([]map[string]any, 0, len(o.Lines))
	for _, line := range o.Lines {
		offer := map[string]any{
			"@type": "Offer",
			"itemOffered": map[string]any{
				"@type": "Product",
				"name":  line.ProductName,
				"sku":   line.ProductSKU,
			},
			"price":         line.UnitPrice.Display(),
			"priceCurrency": line.UnitPrice.Currency,
			"eligibleQuantity": map[string]any{
				"@type": "QuantitativeValue",
				"value": strconv.Itoa(line.Quantity),
			},
		}
		offers = append(offers, offer)
	}

	markup := map[string]any{
		"@context":      "http://schema.org",
		"@type":         "Order",
		"merchant":      map[string]any{"@type": "Organization", "name": settings.Name},
		"orderNumber":   strconv.FormatInt(o.Number, 10),
		"orderStatus":   "http://schema.org/OrderStatus/OrderProcessing",
		"orderDate":     o.CreatedAt.Format(time.RFC3339),
		"price":         o.Total.Display(),
		"priceCurrency": o.Total.Currency,
		"acceptedOffer": offers,
		"url":           orderURL,
		"potentialAction": map[string]any{
			"@type": "ViewAction",
			"url":   orderURL,
		},
	}

	data, err := json.Marshal(markup)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
