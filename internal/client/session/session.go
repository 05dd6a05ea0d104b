// Package session persists the client's authentication state: the opaque
// bearer token and the account id handed out by sign-in. It is the local
// analogue of browser storage: written only by sign-in and sign-out, read
// by every gated view, and it survives restarts until explicitly cleared.
package session

import "context"

// Session is the whole of the client-side authentication state. The token
// is opaque; the client never inspects it.
type Session struct {
	Token     string
	AccountID string
}

// Store is the injected session provider. Implementations must keep Set
// and Clear atomic: token and account id always move together.
type Store interface {
	Get(ctx context.Context) (Session, error)
	Set(ctx context.Context, s Session) error
	Clear(ctx context.Context) error

	// Authenticated reports whether a token is present. No expiry check
	// happens client-side; a stale token stays "authenticated" until the
	// backend rejects it.
	Authenticated(ctx context.Context) bool

	// Token returns the stored bearer token (empty when signed out).
	Token(ctx context.Context) (string, error)
}
