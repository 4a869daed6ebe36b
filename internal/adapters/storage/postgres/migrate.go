package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pawfect-match/internal/platform/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica las migraciones embebidas. Abre su propia conexión porque
// el driver de migrate cierra la *sql.DB que recibe.
func Migrate(dsn string, log logger.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}

	log.Info("running migrations", map[string]any{"driver": "postgres"})
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to run", nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	return nil
}
