package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/scx/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes a configuration file from the embedded template, filling in any credentials given as flags.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := r.configPathOrDefault()

	if _, err := os.Stat(path); err == nil {
		if !cmd.Bool("force") {
			return fmt.Errorf("%w: %s already exists, use --force to overwrite", shared.ErrInvalidArgument, path)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove existing config: %w", err)
		}
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", path)

	config, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}
	creds := &config.Credentials.SoundCloud
	overrides := map[string]*string{
		"client-id":     &creds.ClientID,
		"client-secret": &creds.ClientSecret,
		"redirect-uri":  &creds.RedirectURI,
	}

	changed := false
	for flag, field := range overrides {
		if v := cmd.String(flag); v != "" {
			*field = v
			changed = true
		}
	}

	if changed {
		if err := shared.SaveConfig(path, config); err != nil {
			return err
		}
	}
	if !r.configFixed {
		r.config = config
	}

	if err := r.writePlain("✓ Configuration written to %s\n", path); err != nil {
		return err
	}
	if err := creds.Validate(); err != nil {
		return r.writePlain("Edit [credentials.soundcloud] with your application's client_id, client_secret and redirect_uri.\n")
	}
	return nil
}

// SetupDatabase initializes the database and runs migrations.
//
// With --status it only reports migrations; with --rollback it undoes the latest one.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("initializing database", "path", r.config.Database.Path)

	db, err := r.openDatabase()
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	switch {
	case cmd.Bool("status"):
		statuses, err := shared.Migrations(db)
		if err != nil {
			return err
		}
		for _, m := range statuses {
			mark := " "
			if m.Applied {
				mark = "x"
			}
			if err := r.writePlain("[%s] %04d %s\n", mark, m.Version, m.Name); err != nil {
				return err
			}
		}
		return nil
	case cmd.Bool("rollback"):
		if err := shared.RollbackMigration(db); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
		return r.writePlain("✓ Rolled back latest migration\n")
	}

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return r.writePlain("✓ Database ready at %s\n", r.config.Database.Path)
}
