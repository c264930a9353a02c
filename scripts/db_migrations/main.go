package main

import (
	"database/sql"
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "db_migrations",
		Usage: "manage the finance-tracker schema",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply every pending migration",
				Action: up,
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: down,
			},
			{
				Name:   "version",
				Usage:  "print the current schema version",
				Action: version,
			},
		},
		DefaultCommand: "up",
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func up(_ *cli.Context) error {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}

	preMigrationVersion, postMigrationVersion, err := storage.RunMigrations(env.PostgresURL())
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
	return nil
}

func down(c *cli.Context) error {
	m, err := openMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	steps := c.Int("steps")
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	logrus.WithField("steps", steps).Info("Rolled back migrations")
	return nil
}

func version(_ *cli.Context) error {
	m, err := openMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		logrus.Info("No migrations applied")
		return nil
	}
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"version": v,
		"dirty":   dirty,
	}).Info("Migration status")
	return nil
}

func openMigrator() (*migrate.Migrate, error) {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	m, err := storage.NewMigrator(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}
