package factory

import (
	"github.com/rs/zerolog"

	"github.com/dinefind/dinefind/internal/config"
	"github.com/dinefind/dinefind/internal/search"
)

// NewSearchProvider builds the external location-search client. Returns nil
// when no provider is configured; the import service reports a typed error
// for search requests in that case.
func NewSearchProvider(cfg *config.Config, log zerolog.Logger) search.Provider {
	if cfg.SearchURL == "" {
		log.Warn().Msg("no search provider configured; nearby search disabled")
		return nil
	}
	log.Info().Str("search_url", cfg.SearchURL).Msg("search provider ready")
	return search.NewYelpProvider(cfg.SearchURL, cfg.SearchAPIKey)
}
