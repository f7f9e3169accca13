// Package cli wires shared dependencies for the tabdrag commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/tabdrag/internal/config"
	"github.com/bnema/tabdrag/internal/domain/repository"
	"github.com/bnema/tabdrag/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabdrag/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	History repository.OperationHistoryRepository

	db     *sql.DB
	ctx    context.Context
	logger zerolog.Logger
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	cfg := loadConfig()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	a := &App{Config: cfg, ctx: ctx, logger: logger}

	if cfg.History.Enabled {
		dbPath := cfg.History.Path
		if dbPath == "" {
			var err error
			dbPath, err = config.DefaultDatabasePath()
			if err != nil {
				return nil, fmt.Errorf("resolve database path: %w", err)
			}
		}

		db, err := sqlite.NewConnection(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		logger.Debug().Str("db_path", dbPath).Msg("database connected")

		a.db = db
		a.History = sqlite.NewOperationHistoryRepository(db)
	}

	return a, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() zerolog.Logger {
	return a.logger
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when no config file is present or readable.
func loadConfig() *config.Config {
	mgr, err := config.NewManager()
	if err != nil {
		return config.DefaultConfig()
	}
	if err := mgr.Load(); err != nil {
		return config.DefaultConfig()
	}
	return mgr.Get()
}
