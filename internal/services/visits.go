package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/store"
)

// VisitService tracks which restaurants a user has visited.
//
// Dedup policy: writes keep the store's list-append semantics, so the backing
// list may accumulate duplicates; GetVisited collapses them into a set. This
// matches the behavior readers have always observed.
type VisitService struct {
	store store.Store
}

func NewVisitService(s store.Store) *VisitService { return &VisitService{store: s} }

func (s *VisitService) MarkVisited(ctx context.Context, userID string, businessIDs []string) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	return s.store.Users().AddVisited(ctx, userID, businessIDs)
}

func (s *VisitService) UnmarkVisited(ctx context.Context, userID string, businessIDs []string) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	return s.store.Users().RemoveVisited(ctx, userID, businessIDs)
}

// GetVisited returns the user's visited set. A user with no visit history
// yields an empty set; an unknown user yields ErrUserNotFound.
func (s *VisitService) GetVisited(ctx context.Context, userID string) (map[string]struct{}, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.store.Users().ListVisited(ctx, userID)
	if err != nil {
		return nil, err
	}
	visited := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		visited[id] = struct{}{}
	}
	return visited, nil
}

func (s *VisitService) requireUser(ctx context.Context, userID string) error {
	if _, err := s.store.Users().Get(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("%w: %s", model.ErrUserNotFound, userID)
		}
		return err
	}
	return nil
}
