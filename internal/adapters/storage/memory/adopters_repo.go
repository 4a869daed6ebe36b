package memory

import (
	"context"

	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/sentinel"
)

type adopterRepo struct {
	s *Store
}

func (r *adopterRepo) Create(ctx context.Context, a adopters.Adopter) (adopters.Adopter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, err := r.s.seq.Next(ctx, ids.KindAdopter)
	if err != nil {
		return adopters.Adopter{}, err
	}
	a.ID = id
	r.s.adopters[id] = a
	return a, nil
}

func (r *adopterRepo) Update(ctx context.Context, a adopters.Adopter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.adopters[a.ID]; !exists {
		return sentinel.ErrNotFound
	}
	r.s.adopters[a.ID] = a
	return nil
}

func (r *adopterRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.adopters[id]; !exists {
		return 0, nil
	}
	if r.s.adopterReferenced(id) {
		return 0, adopters.ErrReferenced
	}
	delete(r.s.adopters, id)
	return 1, nil
}

func (r *adopterRepo) GetByID(ctx context.Context, id int64) (adopters.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.adopters[id]
	if !ok {
		return adopters.Adopter{}, sentinel.ErrNotFound
	}
	return a, nil
}

func (r *adopterRepo) List(ctx context.Context, filter adopters.ListFilter) ([]adopters.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adopters.Adopter, 0)
	for _, id := range sortedIDs(r.s.adopters) {
		if filter.AvailableOnly && r.s.adopterAdopted(id) {
			continue
		}
		out = append(out, r.s.adopters[id])
	}
	return out, nil
}
