package adoptions

import (
	"context"
	"strconv"
	"strings"

	"pawfect-match/internal/platform/validation"
)

type CreateInput struct {
	PetID     string
	AdopterID string
}

// PetChecker y AdopterChecker los implementan pets.Service y adopters.Service.
type PetChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type AdopterChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// CompletedChecker responde si la mascota ya tiene una adopción Completed.
type CompletedChecker interface {
	HasCompleted(ctx context.Context, petID int64) (bool, error)
}

// ValidateCreate solo lee. Junta todas las violaciones:
//   - pet_id / adopter_id: empty, not_a_number, not_found
//   - pet_id: already_adopted (solo si la mascota existe)
//
// Un error que no es de validación (store caído) corta en seco.
func ValidateCreate(ctx context.Context, in CreateInput, pets PetChecker, adopters AdopterChecker, completed CompletedChecker) (petID, adopterID int64, err error) {
	verr := &validation.Error{}

	petID, petOK := parseRef(verr, "pet_id", in.PetID)
	adopterID, adopterOK := parseRef(verr, "adopter_id", in.AdopterID)

	if petOK {
		exists, err := pets.Exists(ctx, petID)
		if err != nil {
			return 0, 0, err
		}
		if !exists {
			verr.Add("pet_id", validation.ReasonNotFound)
		} else {
			done, err := completed.HasCompleted(ctx, petID)
			if err != nil {
				return 0, 0, err
			}
			if done {
				verr.Add("pet_id", validation.ReasonAlreadyAdopted)
			}
		}
	}

	if adopterOK {
		exists, err := adopters.Exists(ctx, adopterID)
		if err != nil {
			return 0, 0, err
		}
		if !exists {
			verr.Add("adopter_id", validation.ReasonNotFound)
		}
	}

	if err := verr.OrNil(); err != nil {
		return 0, 0, err
	}
	return petID, adopterID, nil
}

// parseRef: ids <= 0 no pueden existir, se reportan como not_found.
func parseRef(verr *validation.Error, field, raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(field, validation.ReasonEmpty)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr.Add(field, validation.ReasonNotANumber)
		return 0, false
	}
	if id <= 0 {
		verr.Add(field, validation.ReasonNotFound)
		return 0, false
	}
	return id, true
}
