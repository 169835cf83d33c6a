package templatedmail

import (
	"fmt"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// Template is a named email layout: a templ component body plus a one-line
// subject rendered as a text template against the same context.
type Template struct {
	Name    string
	Subject string
	Body    func(Context) templ.Component
}

func (t Template) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: Name is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidTemplate)
	}
	if t.Body == nil {
		return fmt.Errorf("%w: Body is required", ErrInvalidTemplate)
	}
	return nil
}

// Tag derives the provider analytics tag from the template name,
// e.g. "order/confirm_order" becomes "order_confirm_order".
func (t Template) Tag() string {
	return strings.ReplaceAll(t.Name, "/", "_")
}

// Registry holds templates keyed by name. Registration happens during
// service wiring; lookups are safe for concurrent use afterwards.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Register adds a template to the registry. Registering the same name twice
// is rejected so accidental overrides surface during startup.
func (r *Registry) Register(t Template) error {
	if err := t.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.templates[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrTemplateConflict, t.Name)
	}
	r.templates[t.Name] = t
	return nil
}

// MustRegister registers a template and panics on error. Template wiring is
// startup-time configuration, so failures should prevent the service from
// starting at all.
func (r *Registry) MustRegister(t Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the template registered under name.
func (r *Registry) Lookup(name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return t, nil
}

// Names returns the names of all registered templates.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}
