package services

import (
	"context"
	"fmt"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
)

// ProfileInput is a fully validated profile form, ready for the saga.
// Birthday is DD/MM/YYYY as typed.
type ProfileInput struct {
	Username  string
	FirstName string
	LastName  string
	Birthday  string
	Location  string
	Genres    []string
}

func (in ProfileInput) core() api.UserCore {
	return api.UserCore{
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Birthday:  in.Birthday,
	}
}

// UserService owns profile resolution and the three-step mutation saga.
//
// Create and Update issue three strictly sequential writes: core fields,
// then location, then genres. The steps are not transactional: when step
// n fails, steps 1..n-1 stay applied server-side and the error is
// returned as-is. No compensation is attempted.
type UserService interface {
	// ProfileByAccount resolves the profile owned by an account.
	// api.ErrNoUser passes through untouched: absence is a normal state.
	ProfileByAccount(ctx context.Context, accountID string) (*models.User, error)
	Get(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, in ProfileInput) (*models.User, error)
	Update(ctx context.Context, userID string, in ProfileInput) error
	Delete(ctx context.Context, userID string) error
}

type userService struct {
	client api.Client
}

func NewUserService(client api.Client) UserService {
	return &userService{client: client}
}

func (u *userService) ProfileByAccount(ctx context.Context, accountID string) (*models.User, error) {
	return u.client.AccountUser(ctx, accountID)
}

func (u *userService) Get(ctx context.Context, userID string) (*models.User, error) {
	return u.client.User(ctx, userID)
}

func (u *userService) Create(ctx context.Context, in ProfileInput) (*models.User, error) {
	user, err := u.client.CreateUser(ctx, in.core())
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := u.client.SetUserLocation(ctx, user.ID, in.Location); err != nil {
		return nil, fmt.Errorf("set location: %w", err)
	}
	if err := u.client.SetUserGenres(ctx, user.ID, in.Genres); err != nil {
		return nil, fmt.Errorf("set genres: %w", err)
	}
	return user, nil
}

func (u *userService) Update(ctx context.Context, userID string, in ProfileInput) error {
	if err := u.client.UpdateUser(ctx, userID, in.core()); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if err := u.client.SetUserLocation(ctx, userID, in.Location); err != nil {
		return fmt.Errorf("set location: %w", err)
	}
	if err := u.client.SetUserGenres(ctx, userID, in.Genres); err != nil {
		return fmt.Errorf("set genres: %w", err)
	}
	return nil
}

func (u *userService) Delete(ctx context.Context, userID string) error {
	return u.client.DeleteUser(ctx, userID)
}
