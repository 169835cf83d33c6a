// Package mailbox serves the emails captured by the development sender over
// HTTP, so outgoing mail can be inspected in a browser instead of a real
// inbox. It reads the HTML and JSON metadata files written by
// email.DevSender and exposes a small read-only API.
//
// Mount it on a dev-only router:
//
//	r := chi.NewRouter()
//	r.Mount("/dev/mailbox", mailbox.Router(mailbox.RouterOptions{
//	    Dir: devSender.Dir(),
//	}))
package mailbox
