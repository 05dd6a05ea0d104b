package cli

import (
	"context"
	"errors"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
)

// currentUser resolves the signed-in account's profile. api.ErrNoUser
// passes through so callers can render the create-profile call to action.
func (a *App) currentUser(ctx context.Context) (*models.User, error) {
	sess, err := a.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	return a.users.ProfileByAccount(ctx, sess.AccountID)
}

// Profile shows the signed-in account's email and profile, or the
// create-profile call to action when the account owns no user yet. The
// account lookup also restores the prompt email after a restart, when
// the session came from disk rather than a fresh sign-in.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}

	sess, err := a.sessions.Get(ctx)
	if err != nil {
		return err
	}
	account, err := a.accounts.Account(ctx, sess.AccountID)
	if err != nil {
		a.log.Error(ctx, "fetch account", "error", err)
		a.println("Failed to fetch user information")
		return err
	}
	a.email = account.Email
	a.printf("Email:      %s\n", account.Email)

	user, err := a.currentUser(ctx)
	if err != nil {
		if errors.Is(err, api.ErrNoUser) {
			a.println("You don't have a user profile yet. Use 'createuser' to create one.")
			return nil
		}
		a.log.Error(ctx, "fetch profile", "error", err)
		a.println("Failed to fetch user information")
		return err
	}

	a.renderUser(user)
	return nil
}

// DeleteUser deletes the profile after an explicit confirmation. The
// account and session survive; only the user record goes.
func (a *App) DeleteUser(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}

	user, err := a.currentUser(ctx)
	if err != nil {
		if errors.Is(err, api.ErrNoUser) {
			a.println("You don't have a user profile yet. Use 'createuser' to create one.")
			return nil
		}
		a.log.Error(ctx, "fetch profile", "error", err)
		a.println("Failed to fetch user information")
		return err
	}

	answer, err := getSimpleText(a.reader, "Delete your user profile? This cannot be undone (yes/no)", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		a.println("Aborted.")
		return nil
	}

	if err := a.users.Delete(ctx, user.ID); err != nil {
		a.log.Error(ctx, "delete user", "error", err)
		a.println("An error occurred")
		return err
	}

	a.println("User profile deleted. Use 'createuser' to create a new one.")
	return nil
}
