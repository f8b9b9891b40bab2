package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"bloodlink/internal/config"
	"bloodlink/internal/database"
	"bloodlink/internal/database/migration"
	"bloodlink/internal/logging"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the database schema if it does not exist",
	Action: func(c *cli.Context) error {
		cfg := config.Load()
		logger := logging.New(os.Stdout, cfg.Location())
		ctx := context.Background()

		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		return migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host)
	},
}
