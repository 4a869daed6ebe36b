package adoptions

import (
	"context"
	"fmt"

	"pawfect-match/internal/platform/sentinel"
)

// Errores del store en Create. El store repite los chequeos dentro de la misma
// transacción del insert, así dos altas concurrentes no dejan dos adopciones
// para una mascota ya adoptada.
var (
	ErrUnknownPet        = fmt.Errorf("%w: pet does not exist", sentinel.ErrNotFound)
	ErrUnknownAdopter    = fmt.Errorf("%w: adopter does not exist", sentinel.ErrNotFound)
	ErrPetAlreadyAdopted = fmt.Errorf("%w: pet already has a completed adoption", sentinel.ErrConflict)
)

type Repository interface {
	Create(ctx context.Context, a Adoption) (Adoption, error)
	GetByID(ctx context.Context, id int64) (Adoption, error)
	// SetStatus no valida transiciones; ErrNotFound si no existe.
	SetStatus(ctx context.Context, id int64, status Status) error
	HasCompleted(ctx context.Context, petID int64) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]View, error)
}
