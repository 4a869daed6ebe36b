package memory

import (
	"context"
	"strings"

	"pawfect-match/internal/domain/pets"
	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, err := r.s.seq.Next(ctx, ids.KindPet)
	if err != nil {
		return pets.Pet{}, err
	}
	p.ID = id
	r.s.pets[id] = p
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[p.ID]; !exists {
		return sentinel.ErrNotFound
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[id]; !exists {
		return 0, nil
	}
	if r.s.petReferenced(id) {
		return 0, pets.ErrReferenced
	}
	delete(r.s.pets, id)
	return 1, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, sentinel.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, id := range sortedIDs(r.s.pets) {
		p := r.s.pets[id]
		if filter.Species != "" && !strings.EqualFold(p.Species, filter.Species) {
			continue
		}
		if filter.AvailableOnly && r.s.petAdopted(id) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
