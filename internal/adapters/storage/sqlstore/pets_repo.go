package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/domain/pets"
	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.s.inTx(ctx, func(ctx context.Context) error {
		id, err := r.s.ids.Next(ctx, ids.KindPet)
		if err != nil {
			return err
		}
		p.ID = id

		_, err = r.s.exec(ctx).ExecContext(ctx, r.s.rebind(`
			INSERT INTO pets (id, name, species, age)
			VALUES (?, ?, ?, ?)
		`), p.ID, p.Name, p.Species, p.Age)
		if err != nil {
			return storageErr("insert pet", err)
		}
		return nil
	})
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.s.exec(ctx).ExecContext(ctx, r.s.rebind(`
		UPDATE pets
		SET name = ?, species = ?, age = ?
		WHERE id = ?
	`), p.Name, p.Species, p.Age, p.ID)
	if err != nil {
		return storageErr("update pet", err)
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

func (r *petRepo) Delete(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.s.inTx(ctx, func(ctx context.Context) error {
		referenced, err := r.s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM adoptions WHERE pet_id = ?)`, id)
		if err != nil {
			return err
		}
		if referenced {
			return pets.ErrReferenced
		}

		res, err := r.s.exec(ctx).ExecContext(ctx, r.s.rebind(`DELETE FROM pets WHERE id = ?`), id)
		if err != nil {
			return storageErr("delete pet", err)
		}
		n, err = rowsAffected(res)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var p pets.Pet
	err := r.s.exec(ctx).QueryRowContext(ctx, r.s.rebind(`
		SELECT id, name, species, age
		FROM pets
		WHERE id = ?
	`), id).Scan(&p.ID, &p.Name, &p.Species, &p.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, sentinel.ErrNotFound
		}
		return pets.Pet{}, storageErr("get pet", err)
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	query := `SELECT p.id, p.name, p.species, p.age FROM pets p WHERE 1 = 1`
	var args []any

	if filter.Species != "" {
		query += ` AND LOWER(p.species) = LOWER(?)`
		args = append(args, filter.Species)
	}
	if filter.AvailableOnly {
		query += ` AND NOT EXISTS (
			SELECT 1 FROM adoptions a
			WHERE a.pet_id = p.id AND a.status = ?
		)`
		args = append(args, string(adoptions.StatusCompleted))
	}
	query += ` ORDER BY p.id ASC`

	rows, err := r.s.exec(ctx).QueryContext(ctx, r.s.rebind(query), args...)
	if err != nil {
		return nil, storageErr("list pets", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Species, &p.Age); err != nil {
			return nil, storageErr("scan pet", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list pets", err)
	}
	return out, nil
}
