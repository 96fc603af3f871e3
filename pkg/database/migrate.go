package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedriver "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// RunMigrations applies all pending schema migrations.
// Migration SQL is kept per dialect; golang-migrate tracks the applied
// version in its own schema_migrations table.
func RunMigrations(db *sql.DB, dialect string, logger *zap.Logger) error {
	var (
		driver migratedriver.Driver
		err    error
	)
	switch dialect {
	case "postgres":
		driver, err = migratepg.WithInstance(db, &migratepg.Config{})
	default:
		dialect = "sqlite3"
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	dir := "migrations/sqlite"
	if dialect == "postgres" {
		dir = "migrations/postgres"
	}
	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("load migration files: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dialect, driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("migrations in dirty state", zap.Uint("version", version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", version))
	}

	return nil
}
