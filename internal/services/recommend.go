package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/store"
)

// DefaultRecommendLimit caps a recommendation result when no limit is configured.
const DefaultRecommendLimit = 10

// RecommendService computes category-expansion recommendations: the user's
// visited restaurants are expanded to their category tags, the tags back to
// candidate restaurants, and the visited ones filtered out. This is a
// set-union recommender; results carry no relevance order.
type RecommendService struct {
	store      store.Store
	visits     *VisitService
	categories *CategoryService
	limit      int
}

func NewRecommendService(s store.Store, visits *VisitService, categories *CategoryService, limit int) *RecommendService {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}
	return &RecommendService{store: s, visits: visits, categories: categories, limit: limit}
}

// Recommend returns up to the configured limit of unvisited restaurants
// sharing a category with the user's visited set. An empty visit history
// yields an empty result. Unknown users yield ErrUserNotFound; any other
// fault wraps ErrRecommendationFailed.
func (s *RecommendService) Recommend(ctx context.Context, userID string) ([]model.DisplayRecord, error) {
	visited, err := s.visits.GetVisited(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", model.ErrRecommendationFailed, err)
	}

	tags := map[string]struct{}{}
	for b := range visited {
		cats, err := s.categories.Categories(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrRecommendationFailed, err)
		}
		for c := range cats {
			tags[c] = struct{}{}
		}
	}

	candidates := map[string]struct{}{}
	for c := range tags {
		ids, err := s.categories.BusinessIDsForCategory(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrRecommendationFailed, err)
		}
		for id := range ids {
			candidates[id] = struct{}{}
		}
	}

	// Sorted iteration keeps the output deterministic; the contract promises
	// no ranking, only a stable pass over the candidate set.
	ordered := make([]string, 0, len(candidates))
	for id := range candidates {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	result := make([]model.DisplayRecord, 0, s.limit)
	for _, id := range ordered {
		if _, seen := visited[id]; seen {
			continue
		}
		r, err := s.store.Restaurants().Get(ctx, id)
		if err != nil {
			// The record vanished between index lookup and hydration;
			// recoverable, skip the candidate.
			if errors.Is(err, model.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("%w: %w", model.ErrRecommendationFailed, err)
		}
		result = append(result, model.DisplayRecord{Restaurant: *r, IsVisited: false})
		if len(result) >= s.limit {
			break
		}
	}
	return result, nil
}
