package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/store"
)

// CategoryService resolves category tags for restaurants and restaurants for
// category tags. Matching is a case-sensitive substring match over the stored
// comma-joined categories field, so "Japan" finds a record tagged "Japanese".
type CategoryService struct {
	store store.Store
}

func NewCategoryService(s store.Store) *CategoryService { return &CategoryService{store: s} }

// Categories returns the set of category tags on a restaurant. A missing or
// untagged restaurant yields an empty set, not an error.
func (s *CategoryService) Categories(ctx context.Context, businessID string) (map[string]struct{}, error) {
	r, err := s.store.Restaurants().Get(ctx, businessID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return map[string]struct{}{}, nil
		}
		return nil, err
	}
	return ParseCategories(r.Categories), nil
}

// BusinessIDsForCategory returns every restaurant whose categories field
// contains category as a substring. Unordered; no relevance ranking.
func (s *CategoryService) BusinessIDsForCategory(ctx context.Context, category string) (map[string]struct{}, error) {
	ids, err := s.store.Restaurants().FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// ParseCategories splits a comma-joined categories field into a set of
// trimmed tags. Empty segments are discarded.
func ParseCategories(categories string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tok := range strings.Split(categories, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}
