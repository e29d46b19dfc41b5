package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	userID := "u-" + uuid.New().String()

	// Users
	u := &model.User{UserID: userID, Password: "hunter2", FirstName: "Ada", LastName: "Ng"}
	if _, err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if got, err := s.Users().Get(ctx, userID); err != nil || got == nil || got.FirstName != "Ada" {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}
	if _, err := s.Users().Get(ctx, "no-such-user"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetUser missing: want ErrNotFound, got %v", err)
	}

	// Visited list: append keeps list semantics, remove deletes all occurrences.
	if lst, err := s.Users().ListVisited(ctx, userID); err != nil || len(lst) != 0 {
		t.Fatalf("ListVisited empty: n=%d err=%v", len(lst), err)
	}
	if err := s.Users().AddVisited(ctx, userID, []string{"b1", "b2"}); err != nil {
		t.Fatalf("AddVisited: %v", err)
	}
	if err := s.Users().AddVisited(ctx, userID, []string{"b1"}); err != nil {
		t.Fatalf("AddVisited dup: %v", err)
	}
	lst, err := s.Users().ListVisited(ctx, userID)
	if err != nil || len(lst) != 3 {
		t.Fatalf("ListVisited after appends: n=%d err=%v (list-append semantics expected)", len(lst), err)
	}
	if err := s.Users().RemoveVisited(ctx, userID, []string{"b1"}); err != nil {
		t.Fatalf("RemoveVisited: %v", err)
	}
	lst, err = s.Users().ListVisited(ctx, userID)
	if err != nil || len(lst) != 1 || lst[0] != "b2" {
		t.Fatalf("ListVisited after remove: got=%v err=%v (remove must drop all occurrences)", lst, err)
	}
	// Removing an id that is not present is a no-op.
	if err := s.Users().RemoveVisited(ctx, userID, []string{"b9"}); err != nil {
		t.Fatalf("RemoveVisited absent: %v", err)
	}

	// Restaurants: upsert creates, a second upsert fully replaces.
	bizID := "r-" + uuid.New().String()
	r1 := &model.Restaurant{BusinessID: bizID, Name: "Old Place", Categories: "Chinese, Szechuan", City: "Oakland", Stars: 3.5}
	if _, err := s.Restaurants().Upsert(ctx, r1); err != nil {
		t.Fatalf("Upsert create: %v", err)
	}
	r2 := &model.Restaurant{BusinessID: bizID, Name: "New Place", Categories: "Chinese", City: "Berkeley", Stars: 4.5}
	if _, err := s.Restaurants().Upsert(ctx, r2); err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}
	got, err := s.Restaurants().Get(ctx, bizID)
	if err != nil {
		t.Fatalf("GetRestaurant: %v", err)
	}
	if got.Name != "New Place" || got.City != "Berkeley" || got.Stars != 4.5 {
		t.Fatalf("Upsert must replace every field, got %+v", got)
	}
	if _, err := s.Restaurants().Get(ctx, "no-such-business"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetRestaurant missing: want ErrNotFound, got %v", err)
	}

	// Category substring match, case-sensitive.
	szBiz := "r-" + uuid.New().String()
	if _, err := s.Restaurants().Upsert(ctx, &model.Restaurant{BusinessID: szBiz, Name: "Red Pepper", Categories: "Chinese, Szechuan"}); err != nil {
		t.Fatalf("Upsert szechuan: %v", err)
	}
	ids, err := s.Restaurants().FindByCategory(ctx, "Sze")
	if err != nil {
		t.Fatalf("FindByCategory Sze: %v", err)
	}
	if !contains(ids, szBiz) {
		t.Fatalf("FindByCategory Sze: %s missing from %v", szBiz, ids)
	}
	ids, err = s.Restaurants().FindByCategory(ctx, "Chinese")
	if err != nil || !contains(ids, szBiz) || !contains(ids, bizID) {
		t.Fatalf("FindByCategory Chinese: got=%v err=%v", ids, err)
	}
	if ids, err := s.Restaurants().FindByCategory(ctx, "chinese"); err != nil || contains(ids, szBiz) {
		t.Fatalf("FindByCategory must be case-sensitive: got=%v err=%v", ids, err)
	}
}

func contains(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
