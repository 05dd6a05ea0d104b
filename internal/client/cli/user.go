package cli

import (
	"context"
	"errors"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/forms"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/services"
)

// CreateUser collects the profile form and runs the three-step creation
// sequence: core fields, then location, then genres.
func (a *App) CreateUser(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}

	if _, err := a.currentUser(ctx); err == nil {
		a.println("You already have a user profile. Use 'modifyuser' to change it.")
		return nil
	} else if !errors.Is(err, api.ErrNoUser) {
		a.log.Error(ctx, "fetch profile", "error", err)
		a.println("Failed to fetch user information")
		return err
	}

	locations, genres, err := a.refs.LocationsAndGenres(ctx)
	if err != nil {
		a.log.Error(ctx, "fetch reference sets", "error", err)
		a.println("Failed to fetch locations and genres")
		return err
	}

	in, ok, err := a.readProfileForm(ctx, services.ProfileInput{}, locations, genres)
	if err != nil || !ok {
		return err
	}

	if _, err := a.users.Create(ctx, in); err != nil {
		a.log.Error(ctx, "create user", "error", err)
		a.println("Failed to create user. Please try again.")
		return err
	}

	a.println("User profile created!")
	return a.Profile(ctx)
}

// ModifyUser re-collects the profile form pre-filled with the current
// values and runs the same three-step sequence against the existing user.
func (a *App) ModifyUser(ctx context.Context) error {
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

	locations, genres, err := a.refs.LocationsAndGenres(ctx)
	if err != nil {
		a.log.Error(ctx, "fetch reference sets", "error", err)
		a.println("Failed to fetch locations and genres")
		return err
	}

	current := services.ProfileInput{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Birthday:  user.DisplayBirthday(),
		Location:  user.Location,
		Genres:    user.Genres,
	}
	in, ok, err := a.readProfileForm(ctx, current, locations, genres)
	if err != nil || !ok {
		return err
	}

	if err := a.users.Update(ctx, user.ID, in); err != nil {
		a.log.Error(ctx, "update user", "error", err)
		a.println("Failed to update user information. Please try again.")
		return err
	}

	a.println("User information updated!")
	return a.Profile(ctx)
}

// readProfileForm collects and validates the profile fields. Defaults are
// kept when the user enters nothing; empty defaults make every field
// effectively mandatory through validation. ok is false when validation
// failed and the form must not submit.
func (a *App) readProfileForm(ctx context.Context, current services.ProfileInput, locations, genres []string) (services.ProfileInput, bool, error) {
	var in services.ProfileInput
	var err error

	if in.Username, err = getTextWithDefault(a.reader, "Username", current.Username, a.out); err != nil {
		return in, false, err
	}
	if in.FirstName, err = getTextWithDefault(a.reader, "First name", current.FirstName, a.out); err != nil {
		return in, false, err
	}
	if in.LastName, err = getTextWithDefault(a.reader, "Last name", current.LastName, a.out); err != nil {
		return in, false, err
	}
	if in.Birthday, err = getTextWithDefault(a.reader, "Birthday (DD/MM/YYYY)", current.Birthday, a.out); err != nil {
		return in, false, err
	}

	location, err := pickOneFn(a.reader, a.out, "Location", locations)
	if err != nil {
		return in, false, err
	}
	if location == "" {
		location = current.Location
	}
	in.Location = location

	selected, err := pickManyFn(a.reader, a.out, "Genres", genres)
	if err != nil {
		return in, false, err
	}
	if len(selected) == 0 {
		selected = current.Genres
	}
	in.Genres = selected

	form := forms.UserForm{
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Birthday:  in.Birthday,
		Location:  in.Location,
		Genres:    in.Genres,
	}
	if errs := form.Validate(); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return in, false, nil
	}
	return in, true, nil
}
