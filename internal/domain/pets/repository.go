package pets

import "context"

type Repository interface {
	// Create asigna el ID (Identifier Allocator) y devuelve la mascota persistida.
	Create(ctx context.Context, p Pet) (Pet, error)
	// Update sobreescribe todos los campos mutables. sentinel.ErrNotFound si no existe.
	Update(ctx context.Context, p Pet) error
	// Delete devuelve filas afectadas (0 si no existía). ErrReferenced si hay adopciones.
	Delete(ctx context.Context, id int64) (int64, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
}
