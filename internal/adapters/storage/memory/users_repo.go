package memory

import (
	"context"

	"pawfect-match/internal/domain/users"
	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return users.User{}, sentinel.ErrAlreadyExists
		}
	}

	id, err := r.s.seq.Next(ctx, ids.KindUser)
	if err != nil {
		return users.User{}, err
	}
	u.ID = id
	r.s.users[id] = u
	return u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return users.User{}, sentinel.ErrNotFound
}
