// Package commands defines the nameforge CLI: the root command runs the TUI,
// subcommands cover headless settings access and generation history.
package commands

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"NameForge/pkg/config"
	"NameForge/pkg/generate"
	"NameForge/pkg/history"
	"NameForge/pkg/logger"
	"NameForge/pkg/settings"
	"NameForge/pkg/storage"
)

// app bundles everything a command needs after bootstrap.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *sql.DB
	store   settings.Store
	records history.Repository
}

// newApp loads configuration and opens the shared database.
func newApp(configPath string) (*app, error) {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		return nil, err
	}

	store, err := settings.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	records, err := history.NewSQLiteRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &app{cfg: cfg, log: log, db: db, store: store, records: records}, nil
}

// generator builds the configured generation service.
func (a *app) generator() generate.Service {
	if a.cfg.Generator.Backend == config.BackendLLM {
		return generate.NewLLM(
			generate.LLMOptions{
				Provider: a.cfg.Generator.Provider,
				Model:    a.cfg.Generator.Model,
				BaseURL:  a.cfg.Generator.APIBaseURL,
			},
			func(ctx context.Context) (string, error) {
				loaded, err := a.store.GetUserSettings(ctx)
				if err != nil {
					return "", err
				}
				return loaded.APIKey, nil
			},
			a.log,
		)
	}
	return &generate.Simulated{
		Delay: time.Duration(a.cfg.Generator.DelayMS) * time.Millisecond,
		Name:  a.cfg.Generator.Placeholder,
	}
}

// close releases the app's resources.
func (a *app) close() {
	a.db.Close()
	_ = a.log.Sync()
}
