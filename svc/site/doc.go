// Package site holds the storefront site configuration consumed by the
// transactional email flows: branding (domain, name, logo), the
// administrator-configured sender identity, and the staff notification
// recipient list.
//
// The one piece of real logic here is sender resolution: computing the
// outgoing "From" header from the site-level sender fields with a fallback
// to the process-wide configured address. The site-level fields are
// admin-editable free text and end up interpolated into a raw header line,
// so they are treated as untrusted input - any value carrying a CR or LF is
// rejected outright instead of silently filtered.
package site
