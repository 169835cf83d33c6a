package templatedmail

// Context carries the named values substituted into an email template at
// render time. Keys use snake_case to match the template-facing naming.
type Context map[string]any

// Merge returns a new context containing all entries of c overlaid with the
// entries of others, later maps winning on key conflicts. The receiver is
// never mutated, so a base branding context can be shared between sends.
func (c Context) Merge(others ...Context) Context {
	merged := make(Context, len(c))
	for k, v := range c {
		merged[k] = v
	}
	for _, other := range others {
		for k, v := range other {
			merged[k] = v
		}
	}
	return merged
}

// Has reports whether the context contains the given key.
func (c Context) Has(key string) bool {
	_, ok := c[key]
	return ok
}
