package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/tx"
)

// Sequences guarda el último id entregado por tipo en la tabla sequences.
// Si la transacción que pidió el id hace rollback, el id vuelve a estar libre,
// pero nunca llegó a existir un registro con él.
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
	err := tx.ExecutorFrom(ctx, s.db).QueryRowContext(ctx,
		`UPDATE sequences SET value = value + 1 WHERE kind = ? RETURNING value`,
		string(kind),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: sequence %s not seeded", ids.ErrUnknownKind, kind)
		}
		return 0, fmt.Errorf("%w: next %s id: %w", sentinel.ErrStorage, kind, err)
	}
	return id, nil
}
