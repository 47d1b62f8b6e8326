// Package initializer wires the application dependencies from configuration.
package initializer

import (
	"fmt"

	"github.com/imansdev/ackownt/infra/database"
	infrarepo "github.com/imansdev/ackownt/infra/repository"
	"github.com/imansdev/ackownt/pkg/app"
	"github.com/imansdev/ackownt/pkg/config"
)

// InitializeDependencies builds the logger, database connection, schema and
// unit of work the services run on.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := database.New(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infrarepo.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &app.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
	}, nil
}
