package templatedmail

import (
	"context"
	"strings"
	texttemplate "text/template"

	"github.com/a-h/templ"
)

// renderComponent renders a templ component to an HTML string.
func renderComponent(ctx context.Context, tpl templ.Component) (string, error) {
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// renderSubject renders a one-line subject template against the context.
// Missing keys render as an error rather than "<no value>" so broken
// subjects are caught in tests instead of reaching customers.
func renderSubject(subject string, c Context) (string, error) {
	tpl, err := texttemplate.New("subject").Option("missingkey=error").Parse(subject)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := tpl.Execute(&sb, map[string]any(c)); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}
