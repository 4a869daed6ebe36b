// Package storage elige el backend según la configuración y arma los repositorios.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pawfect-match/internal/adapters/storage/memory"
	"pawfect-match/internal/adapters/storage/postgres"
	"pawfect-match/internal/adapters/storage/sqlite"
	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/domain/pets"
	"pawfect-match/internal/domain/users"
	"pawfect-match/internal/platform/logger"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver          string
	DSN             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Backend son los cuatro repositorios sobre el mismo store.
type Backend struct {
	Driver    string
	Users     users.Repository
	Pets      pets.Repository
	Adopters  adopters.Repository
	Adoptions adoptions.Repository

	close func() error
}

func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

func NewMemory() *Backend {
	s := memory.New()
	return &Backend{
		Driver:    DriverMemory,
		Users:     s.Users(),
		Pets:      s.Pets(),
		Adopters:  s.Adopters(),
		Adoptions: s.Adoptions(),
	}
}

// Open abre el backend y, para los SQL, aplica las migraciones antes de devolverlo.
func Open(ctx context.Context, cfg Config, log logger.Logger) (*Backend, error) {
	if log == nil {
		log = logger.Nop()
	}

	switch cfg.Driver {
	case "", DriverMemory:
		log.Info("using in-memory store", nil)
		return NewMemory(), nil

	case DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		if err := sqlite.Migrate(cfg.SQLitePath, log); err != nil {
			return nil, err
		}
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s := sqlite.NewStore(db)
		log.Info("using sqlite store", map[string]any{"path": cfg.SQLitePath})
		return &Backend{
			Driver:    DriverSQLite,
			Users:     s.Users(),
			Pets:      s.Pets(),
			Adopters:  s.Adopters(),
			Adoptions: s.Adoptions(),
			close:     db.Close,
		}, nil

	case DriverPostgres:
		if err := postgres.Migrate(cfg.DSN, log); err != nil {
			return nil, err
		}
		db, err := postgres.Open(ctx, postgres.Config{
			DSN:             cfg.DSN,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}
		s := postgres.NewStore(db)
		log.Info("using postgres store", nil)
		return &Backend{
			Driver:    DriverPostgres,
			Users:     s.Users(),
			Pets:      s.Pets(),
			Adopters:  s.Adopters(),
			Adoptions: s.Adoptions(),
			close:     db.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
