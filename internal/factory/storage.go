package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dinefind/dinefind/internal/config"
	"github.com/dinefind/dinefind/internal/store"
	"github.com/dinefind/dinefind/internal/store/postgres"
	"github.com/dinefind/dinefind/internal/store/sqlite"
)

// NewStore builds the configured store driver.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("driver", "postgres").Msg("store ready")
		return postgres.NewWithDB(db), nil
	case "sqlite":
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "sqlite").Str("path", cfg.SQLitePath).Msg("store ready")
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
