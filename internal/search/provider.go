package search

import (
	"context"

	"github.com/dinefind/dinefind/internal/model"
)

// Provider is an external location-search collaborator. Implementations
// return candidate business records for a coordinate; the core only assumes
// the list shape and performs no retries on its behalf.
type Provider interface {
	SearchByLocation(ctx context.Context, lat, lon float64) ([]*model.Restaurant, error)
}
