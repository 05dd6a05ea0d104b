package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures (connection refused,
	// timeouts); the server never answered.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks requests the backend rejected as
	// unauthenticated. The stored token is left untouched.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoUser marks the domain-absence state: the account exists but
	// owns no user profile yet. Not a failure.
	ErrNoUser = errors.New("no user found for this account")
)

// StatusError is a non-success HTTP response with whatever message the
// backend put in its error payload.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}
