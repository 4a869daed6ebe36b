package adopters

import "context"

type Repository interface {
	Create(ctx context.Context, a Adopter) (Adopter, error)
	Update(ctx context.Context, a Adopter) error
	Delete(ctx context.Context, id int64) (int64, error)
	GetByID(ctx context.Context, id int64) (Adopter, error)
	List(ctx context.Context, filter ListFilter) ([]Adopter, error)
}
