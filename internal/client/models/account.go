// Package models defines the wire models served by the Book My Gigs backend.
// The backend owns every record; the client only reads and forwards them.
package models

// Account is the authentication identity (email/password pair) as returned
// by the accounts endpoints. Distinct from the domain User profile.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
