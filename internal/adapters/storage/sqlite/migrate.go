package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pawfect-match/internal/platform/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica las migraciones sobre el archivo en path, con su propia conexión.
func Migrate(path string, log logger.Logger) error {
	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}

	log.Info("running migrations", map[string]any{"driver": "sqlite", "path": path})
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to run", nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate sqlite: %w", err)
	}
	return nil
}
