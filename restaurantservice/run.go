// Package restaurantservice wires and runs the dinefind HTTP service.
package restaurantservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dinefind/dinefind/internal/api"
	"github.com/dinefind/dinefind/internal/config"
	"github.com/dinefind/dinefind/internal/factory"
	"github.com/dinefind/dinefind/internal/health"
	"github.com/dinefind/dinefind/internal/platform/logger"
	"github.com/dinefind/dinefind/internal/services"
)

// Run starts the dinefind HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("dinefind-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Int("recommend_limit", cfg.RecommendLimit).
		Msg("dinefind service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("store unavailable")
		return err
	}
	provider := factory.NewSearchProvider(cfg, log)

	visits := services.NewVisitService(st)
	categories := services.NewCategoryService(st)
	svcs := api.Services{
		Users:     services.NewUserService(st),
		Visits:    visits,
		Recommend: services.NewRecommendService(st, visits, categories, cfg.RecommendLimit),
		Import:    services.NewImportService(st, visits, provider),
	}

	if pinger, ok := st.(health.HealthPinger); ok {
		checker := health.NewPingChecker("store", pinger, log)
		go checker.Start(ctx, 15*time.Second)
		svcs.Health = checker
	}

	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      api.NewRouter(svcs),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}
