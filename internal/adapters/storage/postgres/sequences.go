package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/tx"
)

// Sequences usa una SEQUENCE por tipo (user_seq, pet_seq, ...).
// nextval nunca devuelve dos veces el mismo valor, aunque la transacción haga rollback.
type Sequences struct {
	db *sql.DB
}

func NewSequences(db *sql.DB) *Sequences {
	return &Sequences{db: db}
}

func (s *Sequences) Next(ctx context.Context, kind ids.Kind) (int64, error) {
	if !ids.Known(kind) {
		return 0, ids.ErrUnknownKind
	}

	var id int64
	// kind es uno de los valores conocidos, no viene del usuario.
	q := fmt.Sprintf(`SELECT nextval('%s_seq')`, kind)
	if err := tx.ExecutorFrom(ctx, s.db).QueryRowContext(ctx, q).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: next %s id: %w", sentinel.ErrStorage, kind, err)
	}
	return id, nil
}
