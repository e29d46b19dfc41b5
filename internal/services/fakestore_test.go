package services

import (
	"context"
	"strings"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/store"
)

// fakeStore is an in-memory store.Store used across the service tests.
type fakeStore struct {
	users       map[string]*model.User
	visits      map[string][]string
	restaurants map[string]*model.Restaurant

	// phantomByCategory lists ids FindByCategory reports even though no
	// record exists, to simulate index/store inconsistency.
	phantomByCategory map[string][]string
	// failUpsert makes Upsert fail for the given business ids.
	failUpsert map[string]error
	upserts    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:             map[string]*model.User{},
		visits:            map[string][]string{},
		restaurants:       map[string]*model.Restaurant{},
		phantomByCategory: map[string][]string{},
		failUpsert:        map[string]error{},
	}
}

func (f *fakeStore) Users() store.Users             { return &fakeUsers{f} }
func (f *fakeStore) Restaurants() store.Restaurants { return &fakeRestaurants{f} }

type fakeUsers struct{ p *fakeStore }

func (u *fakeUsers) Create(_ context.Context, m *model.User) (*model.User, error) {
	cp := *m
	u.p.users[m.UserID] = &cp
	return &cp, nil
}

func (u *fakeUsers) Get(_ context.Context, userID string) (*model.User, error) {
	if m, ok := u.p.users[userID]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (u *fakeUsers) AddVisited(_ context.Context, userID string, businessIDs []string) error {
	u.p.visits[userID] = append(u.p.visits[userID], businessIDs...)
	return nil
}

func (u *fakeUsers) RemoveVisited(_ context.Context, userID string, businessIDs []string) error {
	drop := map[string]struct{}{}
	for _, id := range businessIDs {
		drop[id] = struct{}{}
	}
	var kept []string
	for _, id := range u.p.visits[userID] {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	u.p.visits[userID] = kept
	return nil
}

func (u *fakeUsers) ListVisited(_ context.Context, userID string) ([]string, error) {
	return append([]string(nil), u.p.visits[userID]...), nil
}

type fakeRestaurants struct{ p *fakeStore }

func (r *fakeRestaurants) Upsert(_ context.Context, m *model.Restaurant) (*model.Restaurant, error) {
	if err, ok := r.p.failUpsert[m.BusinessID]; ok {
		return nil, err
	}
	cp := *m
	r.p.restaurants[m.BusinessID] = &cp
	r.p.upserts = append(r.p.upserts, m.BusinessID)
	return &cp, nil
}

func (r *fakeRestaurants) Get(_ context.Context, businessID string) (*model.Restaurant, error) {
	if m, ok := r.p.restaurants[businessID]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (r *fakeRestaurants) FindByCategory(_ context.Context, category string) ([]string, error) {
	var out []string
	for id, m := range r.p.restaurants {
		if strings.Contains(m.Categories, category) {
			out = append(out, id)
		}
	}
	out = append(out, r.p.phantomByCategory[category]...)
	return out, nil
}
