// Package api is the thin HTTP wrapper around the Book My Gigs REST
// backend. It owns wire shapes and transport concerns only; view logic,
// validation and sequencing live in the services layer.
package api

import (
	"context"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
)

// SignInResult is the payload of POST /accounts/sign_in.
type SignInResult struct {
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
}

// UserCore carries the core profile fields written by the first request of
// the profile saga. Birthday is DD/MM/YYYY as typed.
type UserCore struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Birthday  string `json:"birthday"`
}

// EventDate is the split date/time pair the backend expects on creation.
type EventDate struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// NewEvent is the combined event-creation payload.
type NewEvent struct {
	DateAndTime EventDate `json:"date_and_time"`
	Venue       string    `json:"venue"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	URL         string    `json:"url"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Genres      []string  `json:"genres"`
}

// EventFilter holds the optional constraints of the filtered events query.
// The mandatory location travels separately in the path.
type EventFilter struct {
	Type   string
	Genres []string
}

// Client defines the remote operations the client application depends on.
type Client interface {
	// Accounts.
	Register(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	SignOut(ctx context.Context) error
	Account(ctx context.Context, accountID string) (*models.Account, error)

	// Users. AccountUser returns ErrNoUser when the account owns no
	// profile (the backend reports this as a 200 with an error payload).
	AccountUser(ctx context.Context, accountID string) (*models.User, error)
	CreateUser(ctx context.Context, core UserCore) (*models.User, error)
	User(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, core UserCore) error
	SetUserLocation(ctx context.Context, userID, location string) error
	SetUserGenres(ctx context.Context, userID string, genres []string) error
	DeleteUser(ctx context.Context, userID string) error

	// Events.
	Events(ctx context.Context) ([]models.Event, error)
	EventsByLocation(ctx context.Context, location string, filter EventFilter) ([]models.Event, error)
	UserEvents(ctx context.Context, userID string) ([]models.Event, error)
	CreateEvent(ctx context.Context, userID string, event NewEvent) error

	// Reference sets.
	Locations(ctx context.Context) ([]string, error)
	Genres(ctx context.Context) ([]string, error)
	Types(ctx context.Context) ([]string, error)
}
