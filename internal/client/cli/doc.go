// Package cli is the interactive terminal front end of Book My Gigs: a
// read-eval-print loop dispatching to view handlers for accounts, user
// profiles and events. Handlers collect input, validate it through the
// forms package, call the services layer and render results; they never
// talk to the transport directly.
package cli
