package users

import "context"

type Repository interface {
	// Create falla con sentinel.ErrAlreadyExists si el username ya existe.
	Create(ctx context.Context, u User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
