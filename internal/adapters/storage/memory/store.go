// Package memory es el store por defecto: todo en mapas detrás de un único lock,
// así las altas de adopciones chequean y escriben de forma atómica.
package memory

import (
	"sort"
	"sync"

	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/domain/pets"
	"pawfect-match/internal/domain/users"
	"pawfect-match/internal/ids"
)

type Store struct {
	mu  sync.RWMutex
	seq *ids.Sequence

	users     map[int64]users.User
	pets      map[int64]pets.Pet
	adopters  map[int64]adopters.Adopter
	adoptions map[int64]adoptions.Adoption
}

func New() *Store {
	return &Store{
		seq:       ids.NewSequence(),
		users:     make(map[int64]users.User),
		pets:      make(map[int64]pets.Pet),
		adopters:  make(map[int64]adopters.Adopter),
		adoptions: make(map[int64]adoptions.Adoption),
	}
}

func (s *Store) Users() users.Repository         { return &userRepo{s: s} }
func (s *Store) Pets() pets.Repository           { return &petRepo{s: s} }
func (s *Store) Adopters() adopters.Repository   { return &adopterRepo{s: s} }
func (s *Store) Adoptions() adoptions.Repository { return &adoptionRepo{s: s} }

// Los helpers de abajo asumen que el lock ya está tomado.

func (s *Store) petAdopted(petID int64) bool {
	for _, a := range s.adoptions {
		if a.PetID == petID && a.Status == adoptions.StatusCompleted {
			return true
		}
	}
	return false
}

func (s *Store) adopterAdopted(adopterID int64) bool {
	for _, a := range s.adoptions {
		if a.AdopterID == adopterID && a.Status == adoptions.StatusCompleted {
			return true
		}
	}
	return false
}

func (s *Store) petReferenced(petID int64) bool {
	for _, a := range s.adoptions {
		if a.PetID == petID {
			return true
		}
	}
	return false
}

func (s *Store) adopterReferenced(adopterID int64) bool {
	for _, a := range s.adoptions {
		if a.AdopterID == adopterID {
			return true
		}
	}
	return false
}

func sortedIDs[V any](m map[int64]V) []int64 {
	out := make([]int64, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
