package email

import (
	"context"
	"sync"
)

// Outbox implements EmailSender by recording messages in memory instead of
// delivering them. Tests assert against its contents the way they would
// against a mail spool: a suppressed send leaves the outbox empty.
type Outbox struct {
	mu       sync.Mutex
	messages []SendEmailParams
}

// NewOutbox creates an empty in-memory outbox.
func NewOutbox() *Outbox {
	return &Outbox{}
}

// SendEmail validates the message and records it.
func (o *Outbox) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, params)
	return nil
}

// Messages returns a copy of all recorded messages in send order.
func (o *Outbox) Messages() []SendEmailParams {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]SendEmailParams, len(o.messages))
	copy(out, o.messages)
	return out
}

// Len reports the number of recorded messages.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.messages)
}

// Clear drops all recorded messages.
func (o *Outbox) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = nil
}
