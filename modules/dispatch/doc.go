// Package dispatch is the internal HTTP surface for triggering transactional
// emails. The storefront posts to it when an order is placed, paid or
// fulfilled and when an account flow needs a confirmation link; each request
// maps to exactly one send operation.
package dispatch
