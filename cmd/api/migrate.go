package main

import (
	"github.com/urfave/cli/v2"

	"mcal/internal/migration"
	"mcal/pkg/postgres"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the database schema and exit.",
		Action: func(c *cli.Context) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(c.Context)
			defer stop()

			db, err := postgres.Connect(ctx, postgresConfig(cfg))
			if err != nil {
				return err
			}
			defer postgres.Close(db)

			return migration.Up(ctx, db, logger)
		},
	}
}
