package main

import (
	"fmt"
	"log/slog"

	"github.com/imansdev/ackownt/infra/initializer"
	"github.com/imansdev/ackownt/pkg/app"
	"github.com/imansdev/ackownt/pkg/config"
	"github.com/imansdev/ackownt/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	logger := slog.Default()
	logger.Info(
		"starting server",
		"env", cfg.Env,
		"scheme", cfg.Server.Scheme,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	a := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(a)
	return fiberApp.Listen(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
}
