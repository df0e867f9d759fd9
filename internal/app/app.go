// Package app assembles the long-lived collaborators of a process and hands
// them to the shells as one explicit value.
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/yogi-fashion/embroidery-service/internal/config"
	"github.com/yogi-fashion/embroidery-service/internal/db"
	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/service"
	"github.com/yogi-fashion/embroidery-service/internal/settings"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
	"github.com/yogi-fashion/embroidery-service/internal/websockets"
)

type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	DB       *db.DB
	Repos    *repository.Repositories
	Services *service.Services
	Settings *settings.Store
	Hub      *websockets.Hub
}

// New opens the store, makes sure its tables exist and wires the services.
// The hub is created but not started; servers call Hub.Run themselves.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	database, err := db.Open(cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, errors.Wrap(err, "ensure schema")
	}

	policy := validation.NumericPolicy{AllowNegative: cfg.Validation.AllowNegative}
	repos := repository.NewRepositories(database, policy)
	hub := websockets.NewHub()

	svcs, err := service.NewServices(
		repos,
		service.JWTConfig{Secret: cfg.JWT.Secret, ExpiresIn: cfg.JWT.ExpiresIn},
		cfg.Auth.BcryptCost,
		policy,
		hub,
	)
	if err != nil {
		database.Close()
		return nil, errors.Wrap(err, "wire services")
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       database,
		Repos:    repos,
		Services: svcs,
		Settings: settings.NewStore(cfg.Settings.Path),
		Hub:      hub,
	}, nil
}

// Session returns the AppContext for a fresh, signed-out session.
func (a *App) Session() settings.AppContext {
	return settings.AppContext{Theme: a.Settings.Load()}
}

func (a *App) Close() error {
	return a.DB.Close()
}
