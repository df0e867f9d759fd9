package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yogi-fashion/embroidery-service/internal/app"
	"github.com/yogi-fashion/embroidery-service/internal/config"
	"github.com/yogi-fashion/embroidery-service/internal/logging"
	"github.com/yogi-fashion/embroidery-service/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.Log)

	if cfg.JWT.Secret == "" {
		logger.Warn().Msg("jwt.secret is empty; sessions are not secure")
	}

	// Opens the store and creates missing tables; nothing is served before
	// that succeeds.
	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialise application")
	}
	defer a.Close()

	go a.Hub.Run()
	defer a.Hub.Stop()

	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router.New(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("address", cfg.Server.Address).Str("driver", a.DB.Driver()).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	logger.Info().Msg("server exited properly")
}
