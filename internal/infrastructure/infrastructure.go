// Package infrastructure assembles the core systems every domain module
// depends on: lifecycle coordination, logging, the database, and blob storage.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/doc-library/internal/config"
	"github.com/JaimeStill/doc-library/internal/migrations"
	"github.com/JaimeStill/doc-library/pkg/database"
	"github.com/JaimeStill/doc-library/pkg/lifecycle"
	"github.com/JaimeStill/doc-library/pkg/logging"
	"github.com/JaimeStill/doc-library/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System

	dbConfig *database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		dbConfig:  &cfg.Database,
	}, nil
}

// Start connects the database, applies pending migrations, and prepares storage.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := database.Migrate(i.dbConfig, migrations.FS, ".", i.Logger); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
