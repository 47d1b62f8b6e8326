// Package app composes the services from their shared dependencies.
package app

import (
	"log/slog"

	"github.com/imansdev/ackownt/pkg/config"
	"github.com/imansdev/ackownt/pkg/repository"
	"github.com/imansdev/ackownt/pkg/service/account"
	"github.com/imansdev/ackownt/pkg/service/auth"
	"github.com/imansdev/ackownt/pkg/service/user"
)

// Deps contains the shared dependencies the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App bundles the configured services behind one handle.
type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	UserService    *user.Service
	AccountService *account.Service
}

// New wires the services with the unit of work, configuration and logger.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:           deps,
		Config:         cfg,
		AuthService:    auth.New(deps.Uow, cfg.Jwt, deps.Logger),
		UserService:    user.New(deps.Uow, cfg.Account, deps.Logger),
		AccountService: account.New(deps.Uow, cfg.Account, deps.Logger),
	}
}
