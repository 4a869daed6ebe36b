package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
)

type adoptionRepo struct {
	s *Store
}

// Create verifica mascota, adoptante y regla de "ya adoptada" en la misma
// transacción del insert. En Postgres la fila de la mascota queda bloqueada
// hasta el commit; SQLite trabaja con una sola conexión de escritura.
func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	err := r.s.inTx(ctx, func(ctx context.Context) error {
		q := r.s.exec(ctx)

		var petID int64
		err := q.QueryRowContext(ctx, r.s.rebind(`SELECT id FROM pets WHERE id = ?`+r.s.dialect.LockClause), a.PetID).Scan(&petID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return adoptions.ErrUnknownPet
			}
			return storageErr("lock pet", err)
		}

		found, err := r.s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM adopters WHERE id = ?)`, a.AdopterID)
		if err != nil {
			return err
		}
		if !found {
			return adoptions.ErrUnknownAdopter
		}

		done, err := r.hasCompleted(ctx, a.PetID)
		if err != nil {
			return err
		}
		if done {
			return adoptions.ErrPetAlreadyAdopted
		}

		id, err := r.s.ids.Next(ctx, ids.KindAdoption)
		if err != nil {
			return err
		}
		a.ID = id

		_, err = q.ExecContext(ctx, r.s.rebind(`
			INSERT INTO adoptions (id, pet_id, adopter_id, created_at, status)
			VALUES (?, ?, ?, ?, ?)
		`), a.ID, a.PetID, a.AdopterID, a.CreatedAt.UTC(), string(a.Status))
		if err != nil {
			return storageErr("insert adoption", err)
		}
		return nil
	})
	if err != nil {
		return adoptions.Adoption{}, err
	}
	return a, nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id int64) (adoptions.Adoption, error) {
	var (
		a       adoptions.Adoption
		created timestamp
		status  string
	)
	err := r.s.exec(ctx).QueryRowContext(ctx, r.s.rebind(`
		SELECT id, pet_id, adopter_id, created_at, status
		FROM adoptions
		WHERE id = ?
	`), id).Scan(&a.ID, &a.PetID, &a.AdopterID, &created, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Adoption{}, sentinel.ErrNotFound
		}
		return adoptions.Adoption{}, storageErr("get adoption", err)
	}
	a.CreatedAt = created.Time
	a.Status = adoptions.Status(status)
	return a, nil
}

func (r *adoptionRepo) SetStatus(ctx context.Context, id int64, status adoptions.Status) error {
	res, err := r.s.exec(ctx).ExecContext(ctx, r.s.rebind(`
		UPDATE adoptions SET status = ? WHERE id = ?
	`), string(status), id)
	if err != nil {
		return storageErr("set adoption status", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (r *adoptionRepo) HasCompleted(ctx context.Context, petID int64) (bool, error) {
	return r.hasCompleted(ctx, petID)
}

func (r *adoptionRepo) hasCompleted(ctx context.Context, petID int64) (bool, error) {
	return r.s.exists(ctx, `
		SELECT EXISTS (SELECT 1 FROM adoptions WHERE pet_id = ? AND status = ?)
	`, petID, string(adoptions.StatusCompleted))
}

func (r *adoptionRepo) List(ctx context.Context, filter adoptions.ListFilter) ([]adoptions.View, error) {
	query := `
		SELECT a.id, a.pet_id, a.adopter_id, a.created_at, a.status,
		       p.name, d.first_name, d.last_name
		FROM adoptions a
		JOIN pets p ON p.id = a.pet_id
		JOIN adopters d ON d.id = a.adopter_id
		WHERE 1 = 1`
	var args []any

	if filter.PetID != 0 {
		query += ` AND a.pet_id = ?`
		args = append(args, filter.PetID)
	}
	if filter.AdopterID != 0 {
		query += ` AND a.adopter_id = ?`
		args = append(args, filter.AdopterID)
	}
	if len(filter.Statuses) > 0 {
		query += ` AND a.status IN (` + placeholders(len(filter.Statuses)) + `)`
		for _, st := range filter.Statuses {
			args = append(args, string(st))
		}
	}
	if len(filter.ExcludeStatuses) > 0 {
		query += ` AND a.status NOT IN (` + placeholders(len(filter.ExcludeStatuses)) + `)`
		for _, st := range filter.ExcludeStatuses {
			args = append(args, string(st))
		}
	}
	query += ` ORDER BY a.id ASC`

	rows, err := r.s.exec(ctx).QueryContext(ctx, r.s.rebind(query), args...)
	if err != nil {
		return nil, storageErr("list adoptions", err)
	}
	defer rows.Close()

	out := make([]adoptions.View, 0)
	for rows.Next() {
		var (
			v       adoptions.View
			created timestamp
			status  string
			adopter adopters.Adopter
		)
		if err := rows.Scan(
			&v.ID, &v.PetID, &v.AdopterID, &created, &status,
			&v.PetName, &adopter.FirstName, &adopter.LastName,
		); err != nil {
			return nil, storageErr("scan adoption", err)
		}
		v.CreatedAt = created.Time
		v.Status = adoptions.Status(status)
		v.AdopterName = adopter.FullName()
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list adoptions", err)
	}
	return out, nil
}
