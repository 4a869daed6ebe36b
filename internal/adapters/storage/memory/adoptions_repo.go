package memory

import (
	"context"
	"slices"

	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
)

type adoptionRepo struct {
	s *Store
}

// Create repite los chequeos de referencia bajo el write lock.
func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[a.PetID]; !ok {
		return adoptions.Adoption{}, adoptions.ErrUnknownPet
	}
	if _, ok := r.s.adopters[a.AdopterID]; !ok {
		return adoptions.Adoption{}, adoptions.ErrUnknownAdopter
	}
	if r.s.petAdopted(a.PetID) {
		return adoptions.Adoption{}, adoptions.ErrPetAlreadyAdopted
	}

	id, err := r.s.seq.Next(ctx, ids.KindAdoption)
	if err != nil {
		return adoptions.Adoption{}, err
	}
	a.ID = id
	r.s.adoptions[id] = a
	return a, nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id int64) (adoptions.Adoption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.adoptions[id]
	if !ok {
		return adoptions.Adoption{}, sentinel.ErrNotFound
	}
	return a, nil
}

func (r *adoptionRepo) SetStatus(ctx context.Context, id int64, status adoptions.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.adoptions[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	a.Status = status
	r.s.adoptions[id] = a
	return nil
}

func (r *adoptionRepo) HasCompleted(ctx context.Context, petID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.petAdopted(petID), nil
}

func (r *adoptionRepo) List(ctx context.Context, filter adoptions.ListFilter) ([]adoptions.View, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adoptions.View, 0)
	for _, id := range sortedIDs(r.s.adoptions) {
		a := r.s.adoptions[id]
		if filter.PetID != 0 && a.PetID != filter.PetID {
			continue
		}
		if filter.AdopterID != 0 && a.AdopterID != filter.AdopterID {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, a.Status) {
			continue
		}
		if slices.Contains(filter.ExcludeStatuses, a.Status) {
			continue
		}

		v := adoptions.View{Adoption: a}
		// Las referencias no se borran mientras haya adopciones; igual tolera huecos.
		if p, ok := r.s.pets[a.PetID]; ok {
			v.PetName = p.Name
		}
		if ad, ok := r.s.adopters[a.AdopterID]; ok {
			v.AdopterName = ad.FullName()
		}
		out = append(out, v)
	}
	return out, nil
}
