package site

import (
	"fmt"
	"strings"
)

// ResolveSender computes an RFC 5322 style "From" header value from the
// site-configured display name and address, falling back to the global
// address when the site-level one is empty.
//
// Both inputs originate from administrator-editable free-text fields and are
// interpolated directly into a header line, so a value containing a CR or LF
// is rejected with ErrUnsafeSenderValue: admitting one would let an attacker
// with access to site settings inject arbitrary additional headers or
// smuggle body content. The result keeps UTF-8 display names verbatim;
// transfer encoding is the transport's concern.
func ResolveSender(name, address, fallback string) (string, error) {
	addr := address
	if addr == "" {
		addr = fallback
	}
	if addr == "" {
		return "", ErrNoSenderAddress
	}

	if !headerSafe(addr) {
		return "", fmt.Errorf("%w: address contains a line break", ErrUnsafeSenderValue)
	}
	if name != "" && !headerSafe(name) {
		return "", fmt.Errorf("%w: display name contains a line break", ErrUnsafeSenderValue)
	}

	if name == "" {
		return addr, nil
	}
	return name + " <" + addr + ">", nil
}

// headerSafe reports whether a value can be embedded in a header line
// without terminating it.
func headerSafe(v string) bool {
	return !strings.ContainsAny(v, "\r\n")
}
