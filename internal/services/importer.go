package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/search"
	"github.com/dinefind/dinefind/internal/store"
)

// ImportService synchronizes search-provider results into the restaurant
// collection and annotates them with the requesting user's visited flag.
//
// Batch policy: the batch aborts on the first upsert fault, wrapping
// ErrImportFailed. Records upserted before the fault stay in storage; each
// upsert is independent and idempotent, so re-running the batch converges.
type ImportService struct {
	store    store.Store
	visits   *VisitService
	provider search.Provider
}

func NewImportService(s store.Store, visits *VisitService, provider search.Provider) *ImportService {
	return &ImportService{store: s, visits: visits, provider: provider}
}

// ImportAndAnnotate upserts each candidate (full field replace, keyed on
// business id) and returns the batch as display records in input order.
// The visited set is fetched once and reused across the batch.
func (s *ImportService) ImportAndAnnotate(ctx context.Context, userID string, candidates []*model.Restaurant) ([]model.DisplayRecord, error) {
	visited, err := s.visits.GetVisited(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", model.ErrImportFailed, err)
	}

	out := make([]model.DisplayRecord, 0, len(candidates))
	for _, c := range candidates {
		if _, err := s.store.Restaurants().Upsert(ctx, c); err != nil {
			return nil, fmt.Errorf("%w: upsert %s: %w", model.ErrImportFailed, c.BusinessID, err)
		}
		_, isVisited := visited[c.BusinessID]
		out = append(out, model.DisplayRecord{Restaurant: *c, IsVisited: isVisited})
	}
	return out, nil
}

// SearchNearby asks the search provider for businesses around the coordinate
// and imports the results for the user.
func (s *ImportService) SearchNearby(ctx context.Context, userID string, lat, lon float64) ([]model.DisplayRecord, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("%w: no search provider configured", model.ErrImportFailed)
	}
	candidates, err := s.provider.SearchByLocation(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrImportFailed, err)
	}
	return s.ImportAndAnnotate(ctx, userID, candidates)
}
