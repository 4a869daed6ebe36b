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

type adopterRepo struct {
	s *Store
}

func (r *adopterRepo) Create(ctx context.Context, a adopters.Adopter) (adopters.Adopter, error) {
	err := r.s.inTx(ctx, func(ctx context.Context) error {
		id, err := r.s.ids.Next(ctx, ids.KindAdopter)
		if err != nil {
			return err
		}
		a.ID = id

		_, err = r.s.exec(ctx).ExecContext(ctx, r.s.rebind(`
			INSERT INTO adopters (id, first_name, last_name, phone)
			VALUES (?, ?, ?, ?)
		`), a.ID, a.FirstName, a.LastName, a.Phone)
		if err != nil {
			return storageErr("insert adopter", err)
		}
		return nil
	})
	if err != nil {
		return adopters.Adopter{}, err
	}
	return a, nil
}

func (r *adopterRepo) Update(ctx context.Context, a adopters.Adopter) error {
	res, err := r.s.exec(ctx).ExecContext(ctx, r.s.rebind(`
		UPDATE adopters
		SET first_name = ?, last_name = ?, phone = ?
		WHERE id = ?
	`), a.FirstName, a.LastName, a.Phone, a.ID)
	if err != nil {
		return storageErr("update adopter", err)
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

func (r *adopterRepo) Delete(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.s.inTx(ctx, func(ctx context.Context) error {
		referenced, err := r.s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM adoptions WHERE adopter_id = ?)`, id)
		if err != nil {
			return err
		}
		if referenced {
			return adopters.ErrReferenced
		}

		res, err := r.s.exec(ctx).ExecContext(ctx, r.s.rebind(`DELETE FROM adopters WHERE id = ?`), id)
		if err != nil {
			return storageErr("delete adopter", err)
		}
		n, err = rowsAffected(res)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *adopterRepo) GetByID(ctx context.Context, id int64) (adopters.Adopter, error) {
	var a adopters.Adopter
	err := r.s.exec(ctx).QueryRowContext(ctx, r.s.rebind(`
		SELECT id, first_name, last_name, phone
		FROM adopters
		WHERE id = ?
	`), id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adopters.Adopter{}, sentinel.ErrNotFound
		}
		return adopters.Adopter{}, storageErr("get adopter", err)
	}
	return a, nil
}

func (r *adopterRepo) List(ctx context.Context, filter adopters.ListFilter) ([]adopters.Adopter, error) {
	query := `SELECT d.id, d.first_name, d.last_name, d.phone FROM adopters d WHERE 1 = 1`
	var args []any

	if filter.AvailableOnly {
		query += ` AND NOT EXISTS (
			SELECT 1 FROM adoptions a
			WHERE a.adopter_id = d.id AND a.status = ?
		)`
		args = append(args, string(adoptions.StatusCompleted))
	}
	query += ` ORDER BY d.id ASC`

	rows, err := r.s.exec(ctx).QueryContext(ctx, r.s.rebind(query), args...)
	if err != nil {
		return nil, storageErr("list adopters", err)
	}
	defer rows.Close()

	out := make([]adopters.Adopter, 0)
	for rows.Next() {
		var a adopters.Adopter
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Phone); err != nil {
			return nil, storageErr("scan adopter", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list adopters", err)
	}
	return out, nil
}
