// Package order owns the order and fulfillment records and the
// transactional emails triggered by their lifecycle: order and payment
// confirmations for the customer, fulfillment notifications, and staff
// order notifications.
//
// Email dispatch is synchronous and request-scoped: each operation fetches
// the records it needs by primary key, assembles the template context on
// top of the shared site branding, resolves the sender identity, and hands
// exactly one message to the templated mail layer. There are no retries or
// queues at this level; delivery reliability is the transport provider's
// concern.
package order
