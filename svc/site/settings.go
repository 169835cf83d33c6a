package site

import (
	"strings"

	"github.com/google/uuid"
)

// Settings is the per-site configuration record. SenderName and
// SenderAddress are independently optional free-text fields, mutable by
// site administrators at any time; nothing at the data layer constrains
// their format, which is why sender resolution validates them on every use.
type Settings struct {
	ID            uuid.UUID
	Domain        string
	Name          string
	SenderName    string
	SenderAddress string
}

// Config is the process-wide site configuration. DefaultFromEmail is the
// global fallback sender address used when the site-level address is absent;
// it is read once at startup and immutable afterwards.
type Config struct {
	DefaultFromEmail string `env:"DEFAULT_FROM_EMAIL"`
	EnableSSL        bool   `env:"ENABLE_SSL" envDefault:"false"`
	StaticURL        string `env:"STATIC_URL" envDefault:"/static/"`
	LogoPath         string `env:"SITE_LOGO_PATH" envDefault:"images/logo-light.svg"`
}

// FromEmail resolves the outgoing "From" header for this site, falling back
// to the given global address when the site-level address is not configured.
func (s Settings) FromEmail(fallback string) (string, error) {
	return ResolveSender(s.SenderName, s.SenderAddress, fallback)
}

// AbsoluteURI turns a site-relative path into an absolute URI on the site's
// domain. The scheme follows the process-wide SSL setting.
func (s Settings) AbsoluteURI(cfg Config, path string) string {
	scheme := "http"
	if cfg.EnableSSL {
		scheme = "https"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return scheme + "://" + s.Domain + path
}

// LogoURL returns the absolute URL of the site logo served from static assets.
func (s Settings) LogoURL(cfg Config) string {
	staticURL := cfg.StaticURL
	if staticURL == "" {
		staticURL = "/static/"
	}
	if !strings.HasSuffix(staticURL, "/") {
		staticURL += "/"
	}
	return s.AbsoluteURI(cfg, staticURL+strings.TrimPrefix(cfg.LogoPath, "/"))
}

// StaffNotificationRecipient is a configured receiver of staff order
// notifications. Email is already resolved: recipients tied to a staff user
// carry that user's address.
type StaffNotificationRecipient struct {
	ID     uuid.UUID
	Email  string
	Active bool
}
