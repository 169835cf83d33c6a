package templatedmail

import "errors"

var (
	ErrTemplateNotFound  = errors.New("templatedmail.errors.template_not_found")
	ErrTemplateConflict  = errors.New("templatedmail.errors.template_already_registered")
	ErrInvalidTemplate   = errors.New("templatedmail.errors.invalid_template")
	ErrNoRecipients      = errors.New("templatedmail.errors.no_recipients")
	ErrRenderFailed      = errors.New("templatedmail.errors.render_failed")
	ErrInvalidCatalog    = errors.New("templatedmail.errors.invalid_subject_catalog")
	ErrMissingFromHeader = errors.New("templatedmail.errors.missing_from_header")
)
