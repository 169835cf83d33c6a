// Package account owns user records and the account-management emails:
// account deletion confirmation, customer password reset, and the staff
// password set-up invitation.
//
// Each email carries a signed, single-purpose token bound to the user's id
// and current email address, embedded in an absolute URL on the site's
// domain. Token verification lives here too so the confirmation handlers
// and the email senders agree on the claim layout.
package account
