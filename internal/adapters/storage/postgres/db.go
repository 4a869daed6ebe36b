package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"pawfect-match/internal/adapters/storage/sqlstore"
	"pawfect-match/internal/platform/sentinel"
)

// Código SQLSTATE de unique_violation.
const uniqueViolation = "23505"

type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: open postgres: %w", sentinel.ErrStorage, err)
	}

	db.SetMaxOpenConns(orDefault(cfg.MaxOpenConns, 10))
	db.SetMaxIdleConns(orDefault(cfg.MaxIdleConns, 5))
	db.SetConnMaxIdleTime(5 * time.Minute)
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	} else {
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping postgres: %w", sentinel.ErrStorage, err)
	}

	return db, nil
}

// Dialect para sqlstore: placeholders $n y bloqueo de fila.
var Dialect = sqlstore.Dialect{
	Name:              "postgres",
	Numbered:          true,
	LockClause:        " FOR UPDATE",
	IsUniqueViolation: isUniqueViolation,
}

// NewStore arma los repositorios sobre db con las secuencias nativas.
func NewStore(db *sql.DB) *sqlstore.Store {
	return sqlstore.New(db, Dialect, NewSequences(db))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
