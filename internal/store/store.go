package store

import (
	"context"

	"github.com/dinefind/dinefind/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Users() Users
	Restaurants() Restaurants
}

// Users covers the users collection plus the visit list stored beside it.
//
// AddVisited appends with list semantics: duplicates are allowed at this
// layer, matching how the visit history has always been stored. The set view
// is enforced one level up, when the list is read.
type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	AddVisited(ctx context.Context, userID string, businessIDs []string) error
	// RemoveVisited deletes every occurrence of each given id.
	RemoveVisited(ctx context.Context, userID string, businessIDs []string) error
	// ListVisited returns the raw visit list; it may contain duplicates and
	// is empty (not an error) for a user with no visits.
	ListVisited(ctx context.Context, userID string) ([]string, error)
}

type Restaurants interface {
	// Upsert inserts the record or replaces every field of an existing one
	// sharing the same business id. Safe to repeat for the same key.
	Upsert(ctx context.Context, r *model.Restaurant) (*model.Restaurant, error)
	Get(ctx context.Context, businessID string) (*model.Restaurant, error)
	// FindByCategory returns the business ids of every restaurant whose
	// categories field contains category as a case-sensitive substring.
	// The result is unordered.
	FindByCategory(ctx context.Context, category string) ([]string, error)
}
