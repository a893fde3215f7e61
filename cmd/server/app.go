package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/avatar-api/internal/config"
	"github.com/phrazzld/avatar-api/internal/platform/metrics"
	"github.com/phrazzld/avatar-api/internal/platform/postgres"
	"github.com/phrazzld/avatar-api/internal/service"
	"github.com/phrazzld/avatar-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sql.DB
	metrics *metrics.Metrics

	skillService     service.SkillService
	characterService service.CharacterService
}

// newApplication wires the postgres stores and the services on top of an
// established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app, err := assembleApplication(
		cfg,
		logger,
		postgres.NewPostgresSkillStore(db, logger),
		postgres.NewPostgresCharacterStore(db, logger),
		store.SnapshotRunner(db),
	)
	if err != nil {
		return nil, err
	}
	app.db = db

	logger.Info("Application initialized successfully")
	return app, nil
}

// assembleApplication builds an application from its stores. newApplication
// uses it with postgres stores; tests use in-memory ones.
func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	skills store.SkillStore,
	characters store.CharacterStore,
	runTx store.TxRunner,
) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	var err error
	app.skillService, err = service.NewSkillService(skills, runTx, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill service: %w", err)
	}

	app.characterService, err = service.NewCharacterService(characters, runTx, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create character service: %w", err)
	}

	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
