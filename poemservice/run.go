// Package poemservice wires the store, session manager and HTTP transport
// into a runnable service.
package poemservice

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/verseworks/poem-service/internal/api"
	"github.com/verseworks/poem-service/internal/auth"
	"github.com/verseworks/poem-service/internal/config"
	"github.com/verseworks/poem-service/internal/logger"
	"github.com/verseworks/poem-service/internal/store/memory"
)

// Run starts the poem service HTTP server and blocks until shutdown or
// error.
func Run() error {
	log := logger.New("poem-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Int("token_ttl_minutes", cfg.TokenTTLMinutes).
		Msg("Poem service starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := memory.New()
	if cfg.SeedDemo {
		if err := memory.SeedDemo(ctx, st); err != nil {
			log.Error().Stack().Err(err).Msg("Failed to seed demo catalog")
			return err
		}
		log.Info().Msg("Demo catalog seeded")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	router := api.NewRouter(st, tokens, cfg.CORSOrigin, cfg.TokenTTL())

	server := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
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
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}
