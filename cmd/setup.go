package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup initializes the configuration file and the journal database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}
		r.writePlainln("✓ Created %s", configPath)
	} else {
		r.writePlainln("Config already exists at %s", configPath)
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := shared.OpenJournalDB(config.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.writePlainln("✓ Journal database ready at %s", config.Database.Path)
	r.logger.Info("setup complete", "config", configPath, "database", config.Database.Path)
	return nil
}
