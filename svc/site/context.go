package site

import (
	"github.com/jnbao2020/saleor/pkg/templatedmail"
)

// SendOptions carries the send-time values resolved alongside an email
// context, separate from the template variables themselves.
type SendOptions struct {
	FromEmail string
}

// EmailContext assembles the branding context shared by every outgoing
// email together with the resolved sender. Sender resolution happens fresh
// on each call because the underlying settings are admin-mutable.
func EmailContext(settings Settings, cfg Config) (templatedmail.Context, SendOptions, error) {
	from, err := settings.FromEmail(cfg.DefaultFromEmail)
	if err != nil {
		return nil, SendOptions{}, err
	}

	context := templatedmail.Context{
		"domain":    settings.Domain,
		"logo_url":  settings.LogoURL(cfg),
		"site_name": settings.Name,
	}
	return context, SendOptions{FromEmail: from}, nil
}
