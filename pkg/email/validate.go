package email

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex intentionally stays permissive; provider-side validation is the
// final authority on deliverability.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks that the parameters form a sendable message.
// From is an opaque, already formatted header value, so it is only checked
// for presence and for header-delimiting control characters; a CR or LF in
// a header line would let additional headers be smuggled into the message.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if strings.ContainsAny(p.From, "\r\n") {
		return fmt.Errorf("%w: From must not contain line breaks", ErrInvalidParams)
	}
	if len(p.SendTo) == 0 {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	for _, addr := range p.SendTo {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
		}
		if !emailRegex.MatchString(addr) {
			return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
		}
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}
