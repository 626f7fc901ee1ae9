package main

import (
	"context"
	"os"

	"github.com/desertthunder/vidcat/internal/services"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	catalogAPI := services.NewHTTPCatalog(config.API.BaseURL, nil, config.API.RateLimit)
	apiService := services.NewAPIService(config.API.BaseURL, nil)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: catalogAPI,
		API:     apiService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "vidcat",
		Usage:    "Manage a video catalog: videos, authors & categories",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
