package services

import (
	"context"
	"sort"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
)

// EventService retrieves event lists and keeps them in a stable
// chronological order (soonest first; ties keep server order).
type EventService interface {
	All(ctx context.Context) ([]models.Event, error)
	ByLocation(ctx context.Context, location string, filter api.EventFilter) ([]models.Event, error)
	ForUser(ctx context.Context, userID string) ([]models.Event, error)
	Create(ctx context.Context, userID string, event api.NewEvent) error
}

type eventService struct {
	client api.Client
}

func NewEventService(client api.Client) EventService {
	return &eventService{client: client}
}

func (e *eventService) All(ctx context.Context) ([]models.Event, error) {
	events, err := e.client.Events(ctx)
	if err != nil {
		return nil, err
	}
	sortChronologically(events)
	return events, nil
}

func (e *eventService) ByLocation(ctx context.Context, location string, filter api.EventFilter) ([]models.Event, error) {
	events, err := e.client.EventsByLocation(ctx, location, filter)
	if err != nil {
		return nil, err
	}
	sortChronologically(events)
	return events, nil
}

func (e *eventService) ForUser(ctx context.Context, userID string) ([]models.Event, error) {
	events, err := e.client.UserEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortChronologically(events)
	return events, nil
}

func (e *eventService) Create(ctx context.Context, userID string, event api.NewEvent) error {
	return e.client.CreateEvent(ctx, userID, event)
}

func sortChronologically(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartsAt().Before(events[j].StartsAt())
	})
}
