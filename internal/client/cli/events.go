package cli

import (
	"context"
	"errors"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/forms"
)

// Events lists every upcoming event, soonest first.
func (a *App) Events(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}

	events, err := a.events.All(ctx)
	if err != nil {
		a.log.Error(ctx, "fetch events", "error", err)
		a.println("Failed to fetch events")
		return err
	}
	a.renderEvents(events)
	return nil
}

// FilterEvents narrows the listing by location (mandatory) plus optional
// type and genres. An uncommitted location fails validation locally; no
// request is sent then.
func (a *App) FilterEvents(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}

	locations, types, genres, err := a.refs.FilterSets(ctx)
	if err != nil {
		a.log.Error(ctx, "fetch reference sets", "error", err)
		a.println("Failed to fetch locations and genres")
		return err
	}

	location, err := pickOneFn(a.reader, a.out, "Location", locations)
	if err != nil {
		return err
	}
	eventType, err := pickOneFn(a.reader, a.out, "Type (optional)", types)
	if err != nil {
		return err
	}
	selected, err := pickManyFn(a.reader, a.out, "Genres (optional)", genres)
	if err != nil {
		return err
	}

	form := forms.EventFilterForm{Location: location, Type: eventType, Genres: selected}
	if errs := form.Validate(); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return nil
	}

	events, err := a.events.ByLocation(ctx, location, api.EventFilter{Type: eventType, Genres: selected})
	if err != nil {
		a.log.Error(ctx, "fetch filtered events", "error", err)
		a.println("Failed to fetch events")
		return err
	}
	a.renderEvents(events)
	return nil
}

// MyEvents lists the events posted by the signed-in user.
func (a *App) MyEvents(ctx context.Context) error {
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

	events, err := a.events.ForUser(ctx, user.ID)
	if err != nil {
		a.log.Error(ctx, "fetch user events", "error", err)
		a.println("Failed to fetch events")
		return err
	}
	if len(events) == 0 {
		a.println("You haven't posted any events yet.")
		return nil
	}
	a.renderEvents(events)
	return nil
}

// CreateEvent collects the event form and posts the new listing under
// the signed-in user.
func (a *App) CreateEvent(ctx context.Context) error {
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

	locations, types, genres, err := a.refs.FilterSets(ctx)
	if err != nil {
		a.log.Error(ctx, "fetch reference sets", "error", err)
		a.println("Failed to fetch locations and genres")
		return err
	}

	form, err := a.readEventForm(locations, types, genres)
	if err != nil {
		return err
	}
	if errs := form.Validate(); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return nil
	}

	answer, err := getSimpleText(a.reader, "Create this event? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		a.println("Aborted.")
		return nil
	}

	event := api.NewEvent{
		DateAndTime: api.EventDate{Date: form.Date, Time: form.Time},
		Venue:       form.Venue,
		Title:       form.Title,
		Description: form.Description,
		Address:     form.Address(),
		URL:         form.URL,
		Location:    form.Location,
		Type:        form.Type,
		Genres:      form.Genres,
	}
	if err := a.events.Create(ctx, user.ID, event); err != nil {
		a.log.Error(ctx, "create event", "error", err)
		a.println("Failed to create event")
		return err
	}

	a.println("Event created!")
	return a.MyEvents(ctx)
}

func (a *App) readEventForm(locations, types, genres []string) (forms.EventForm, error) {
	var f forms.EventForm
	var err error

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Title", &f.Title},
		{"Date (DD/MM/YYYY)", &f.Date},
		{"Time (HH:MM)", &f.Time},
		{"Venue", &f.Venue},
		{"Street number", &f.StreetNumber},
		{"Street name", &f.StreetName},
		{"Postal code", &f.PostalCode},
		{"City", &f.City},
		{"Country", &f.Country},
		{"URL (optional)", &f.URL},
		{"Description", &f.Description},
	}
	for _, p := range prompts {
		if *p.dst, err = getSimpleText(a.reader, p.label, a.out); err != nil {
			return f, err
		}
	}

	if f.Location, err = pickOneFn(a.reader, a.out, "Location", locations); err != nil {
		return f, err
	}
	if f.Type, err = pickOneFn(a.reader, a.out, "Type", types); err != nil {
		return f, err
	}
	if f.Genres, err = pickManyFn(a.reader, a.out, "Genres", genres); err != nil {
		return f, err
	}
	return f, nil
}
