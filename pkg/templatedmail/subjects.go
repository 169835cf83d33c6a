package templatedmail

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseSubjectCatalog parses a YAML mapping of template name to subject line.
// Domain packages embed a small catalog next to their template definitions:
//
//	order/confirm_order: "Order details"
//	order/confirm_payment: "Order payment confirmation"
//
// Subject lines must be single-line; a multi-line subject would break the
// rendered header.
func ParseSubjectCatalog(data []byte) (map[string]string, error) {
	var catalog map[string]string
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	for name, subject := range catalog {
		if strings.TrimSpace(subject) == "" {
			return nil, fmt.Errorf("%w: empty subject for template %q", ErrInvalidCatalog, name)
		}
		if strings.ContainsAny(subject, "\r\n") {
			return nil, fmt.Errorf("%w: subject for template %q contains a line break", ErrInvalidCatalog, name)
		}
	}
	return catalog, nil
}

// MustParseSubjectCatalog parses an embedded catalog and panics on error.
// Catalogs are compiled into the binary, so a parse failure is a build
// defect rather than a runtime condition.
func MustParseSubjectCatalog(data []byte) map[string]string {
	catalog, err := ParseSubjectCatalog(data)
	if err != nil {
		panic(err)
	}
	return catalog
}
