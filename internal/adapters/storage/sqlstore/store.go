// Package sqlstore implementa los repositorios sobre database/sql.
// Postgres y SQLite comparten las consultas; las diferencias van en Dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/domain/pets"
	"pawfect-match/internal/domain/users"
	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/tx"
)

// Dialect describe lo que cambia entre motores.
type Dialect struct {
	Name string
	// Numbered: placeholders $1..$n en vez de ?.
	Numbered bool
	// LockClause se agrega al SELECT de la mascota al crear una adopción (" FOR UPDATE").
	LockClause string
	// IsUniqueViolation reconoce el error de constraint UNIQUE del driver.
	IsUniqueViolation func(error) bool
}

type Store struct {
	db      *sql.DB
	dialect Dialect
	ids     ids.Allocator
}

// New: el Allocator tiene que leer la transacción del contexto (ver tx.ExecutorFrom),
// así el id y el insert quedan en la misma transacción.
func New(db *sql.DB, d Dialect, alloc ids.Allocator) *Store {
	return &Store{db: db, dialect: d, ids: alloc}
}

func (s *Store) Users() users.Repository         { return &userRepo{s: s} }
func (s *Store) Pets() pets.Repository           { return &petRepo{s: s} }
func (s *Store) Adopters() adopters.Repository   { return &adopterRepo{s: s} }
func (s *Store) Adoptions() adoptions.Repository { return &adoptionRepo{s: s} }

func (s *Store) exec(ctx context.Context) tx.Executor {
	return tx.ExecutorFrom(ctx, s.db)
}

// inTx corre fn dentro de una transacción. Si el contexto ya trae una, la reutiliza.
func (s *Store) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := tx.From(ctx); ok {
		return fn(ctx)
	}

	t, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin tx", err)
	}
	defer func() {
		_ = t.Rollback()
	}()

	if err := fn(tx.WithTx(ctx, t)); err != nil {
		return err
	}
	if err := t.Commit(); err != nil {
		return storageErr("commit", err)
	}
	return nil
}

// rebind reescribe ? como $n cuando el dialecto lo pide.
func (s *Store) rebind(query string) string {
	if !s.dialect.Numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := s.exec(ctx).QueryRowContext(ctx, s.rebind(query), args...).Scan(&ok); err != nil {
		return false, storageErr("exists", err)
	}
	return ok, nil
}

func (s *Store) isUnique(err error) bool {
	return s.dialect.IsUniqueViolation != nil && s.dialect.IsUniqueViolation(err)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", sentinel.ErrStorage, op, err)
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("rows affected", err)
	}
	return n, nil
}

// placeholders devuelve "?, ?, ?" para n valores.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
