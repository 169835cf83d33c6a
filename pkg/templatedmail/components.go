package templatedmail

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Pre-built components for common transactional email structure. Bodies in
// domain packages compose these instead of hand-writing full documents.

// Layout wraps children in the shared email skeleton: branded header with
// the site logo, content area, and a footer naming the site and its domain.
// Branding values come from the standard context keys (logo_url, site_name,
// domain); missing keys degrade to an unbranded frame rather than failing.
func Layout(c Context, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		siteName, _ := c["site_name"].(string)
		domain, _ := c["domain"].(string)
		logoURL, _ := c["logo_url"].(string)

		if _, err := io.WriteString(w, `<!DOCTYPE html><html><body style="margin:0;padding:0;background:#f4f4f4;font-family:Arial,sans-serif;">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr><td align="center"><table role="presentation" width="600" cellpadding="24" cellspacing="0" style="background:#ffffff;"><tr><td>`); err != nil {
			return err
		}
		if logoURL != "" {
			if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s" height="40" style="display:block;margin-bottom:24px;"/>`,
				templ.EscapeString(logoURL), templ.EscapeString(siteName)); err != nil {
				return err
			}
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<p style="color:#999999;font-size:12px;margin-top:32px;">%s &middot; %s</p>`,
			templ.EscapeString(siteName), templ.EscapeString(domain)); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</td></tr></table></td></tr></table></body></html>`)
		return err
	})
}

// Heading renders a top-level heading.
func Heading(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1 style="font-size:22px;color:#333333;">%s</h1>`, templ.EscapeString(text))
		return err
	})
}

// Text renders a paragraph of body copy.
func Text(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p style="font-size:14px;color:#333333;line-height:1.5;">%s</p>`, templ.EscapeString(text))
		return err
	})
}

// Button renders a call-to-action link styled as a button.
func Button(label, url string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<p><a href="%s" style="display:inline-block;padding:12px 24px;background:#1a1a1a;color:#ffffff;text-decoration:none;border-radius:4px;">%s</a></p>`,
			templ.EscapeString(url), templ.EscapeString(label))
		return err
	})
}

// JSONLD embeds machine-readable structured data in a script tag. The
// payload must already be serialized JSON; it is embedded unescaped, so
// only trusted, locally generated markup belongs here.
func JSONLD(markup string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if markup == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, markup)
		return err
	})
}
