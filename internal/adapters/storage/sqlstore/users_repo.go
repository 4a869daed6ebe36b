package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"pawfect-match/internal/domain/users"
	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.s.inTx(ctx, func(ctx context.Context) error {
		taken, err := r.s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = ?)`, u.Username)
		if err != nil {
			return err
		}
		if taken {
			return sentinel.ErrAlreadyExists
		}

		id, err := r.s.ids.Next(ctx, ids.KindUser)
		if err != nil {
			return err
		}
		u.ID = id

		_, err = r.s.exec(ctx).ExecContext(ctx, r.s.rebind(`
			INSERT INTO users (id, username, password, role)
			VALUES (?, ?, ?, ?)
		`), u.ID, u.Username, u.Password, u.Role)
		if err != nil {
			// Carrera entre dos registros con el mismo username.
			if r.s.isUnique(err) {
				return sentinel.ErrAlreadyExists
			}
			return storageErr("insert user", err)
		}
		return nil
	})
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	var u users.User
	err := r.s.exec(ctx).QueryRowContext(ctx, r.s.rebind(`
		SELECT id, username, password, role
		FROM users
		WHERE username = ?
	`), username).Scan(&u.ID, &u.Username, &u.Password, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, sentinel.ErrNotFound
		}
		return users.User{}, storageErr("get user", err)
	}
	return u, nil
}
