// Package services contains the application services sitting between the
// CLI views and the remote client: session lifecycle, the user-profile
// saga, and event retrieval/ordering.
package services

import (
	"context"
	"fmt"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/session"
)

// AccountService owns the account lifecycle and the session writes that
// go with it. Sign-in is the only place a session is created; sign-out
// is the only place it is cleared.
type AccountService interface {
	Register(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) (*models.Account, error)
	SignOut(ctx context.Context) error
	Account(ctx context.Context, accountID string) (*models.Account, error)
}

type accountService struct {
	client   api.Client
	sessions session.Store
}

func NewAccountService(client api.Client, sessions session.Store) AccountService {
	return &accountService{client: client, sessions: sessions}
}

func (a *accountService) Register(ctx context.Context, email, password string) error {
	return a.client.Register(ctx, email, password)
}

// SignIn authenticates and persists {token, accountId} atomically. The
// token is stored as-is; nothing client-side ever inspects it.
func (a *accountService) SignIn(ctx context.Context, email, password string) (*models.Account, error) {
	result, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := session.Session{Token: result.Token, AccountID: result.Account.ID}
	if err := a.sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &result.Account, nil
}

// SignOut asks the backend to invalidate the token, then clears the local
// session regardless of the answer: a half-dead token must not keep the
// client signed in.
func (a *accountService) SignOut(ctx context.Context) error {
	signOutErr := a.client.SignOut(ctx)
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return signOutErr
}

func (a *accountService) Account(ctx context.Context, accountID string) (*models.Account, error) {
	return a.client.Account(ctx, accountID)
}
