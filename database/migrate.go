package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
)

// The schema ships inside the binary so a deployment is a single artifact
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// ApplyMigrations brings the database at dsn up to the current schema.
// Tests run it against throwaway containers before opening a pool.
func ApplyMigrations(dsn string) error {
	m, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// MigrateUp applies every pending migration and logs the resulting version
func MigrateUp(dsn string) error {
	if err := ApplyMigrations(dsn); err != nil {
		return err
	}
	return MigrateStatus(dsn)
}

// MigrateDown rolls back the most recent migration
func MigrateDown(dsn string) error {
	m, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	version, _, _ := m.Version()
	log.Infof("Rolled back to schema version %d", version)
	return nil
}

// MigrateStatus reports the applied schema version
func MigrateStatus(dsn string) error {
	m, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info("No migrations applied yet")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if dirty {
		log.Warnf("Schema version %d is dirty; repair it before migrating further", version)
		return nil
	}
	log.Infof("Schema at version %d", version)
	return nil
}

// newMigrator wires the embedded migration files to the database at dsn,
// going through the pgx stdlib shim since golang-migrate speaks database/sql
func newMigrator(dsn string) (*migrate.Migrate, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	driver, err := postgres.WithInstance(stdlib.OpenDB(*cfg.ConnConfig), &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	return migrate.NewWithInstance("iofs", source, "postgres", driver)
}
