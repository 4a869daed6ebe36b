package pets

import (
	"context"
	"errors"

	"pawfect-match/internal/platform/sentinel"
)

// Exists lo usa adoptions para validar referencias sin importar este paquete
// más allá de una interfaz chica.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	return false, err
}
