package services

import (
	"context"
	"sync"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
)

// ReferenceService fetches the server enumerations that constrain form
// input. The sets are small and fetched wholesale per view; nothing is
// cached or invalidated client-side.
type ReferenceService interface {
	// LocationsAndGenres fetches both sets concurrently and joins.
	LocationsAndGenres(ctx context.Context) (locations, genres []string, err error)
	// FilterSets fetches the three sets the event filter needs.
	FilterSets(ctx context.Context) (locations, types, genres []string, err error)
	Types(ctx context.Context) ([]string, error)
}

type referenceService struct {
	client api.Client
}

func NewReferenceService(client api.Client) ReferenceService {
	return &referenceService{client: client}
}

func (r *referenceService) LocationsAndGenres(ctx context.Context) ([]string, []string, error) {
	fetches := []refFetch{
		{fn: r.client.Locations},
		{fn: r.client.Genres},
	}
	if err := fetchAll(ctx, fetches); err != nil {
		return nil, nil, err
	}
	return fetches[0].out, fetches[1].out, nil
}

func (r *referenceService) FilterSets(ctx context.Context) ([]string, []string, []string, error) {
	fetches := []refFetch{
		{fn: r.client.Locations},
		{fn: r.client.Types},
		{fn: r.client.Genres},
	}
	if err := fetchAll(ctx, fetches); err != nil {
		return nil, nil, nil, err
	}
	return fetches[0].out, fetches[1].out, fetches[2].out, nil
}

func (r *referenceService) Types(ctx context.Context) ([]string, error) {
	return r.client.Types(ctx)
}

type refFetch struct {
	fn  func(context.Context) ([]string, error)
	out []string
	err error
}

// fetchAll runs the fetches concurrently, waits for all of them, and
// returns the first error in slice order.
func fetchAll(ctx context.Context, fetches []refFetch) error {
	var wg sync.WaitGroup
	for i := range fetches {
		wg.Add(1)
		go func(f *refFetch) {
			defer wg.Done()
			f.out, f.err = f.fn(ctx)
		}(&fetches[i])
	}
	wg.Wait()

	for i := range fetches {
		if fetches[i].err != nil {
			return fetches[i].err
		}
	}
	return nil
}
