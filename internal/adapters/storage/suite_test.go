package storage_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"pawfect-match/internal/adapters/storage"
	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/domain/pets"
	"pawfect-match/internal/domain/users"
	"pawfect-match/internal/platform/sentinel"
)

// StoreSuite corre el mismo contrato contra cada backend.
// open debe devolver un store vacío con las secuencias en cero.
type StoreSuite struct {
	suite.Suite
	open func() *storage.Backend

	ctx context.Context
	b   *storage.Backend
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.b = s.open()
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.b.Close())
}

func (s *StoreSuite) createPet(name, species string, age int) pets.Pet {
	p, err := s.b.Pets.Create(s.ctx, pets.Pet{Name: name, Species: species, Age: age})
	s.Require().NoError(err)
	return p
}

func (s *StoreSuite) createAdopter(first, last string) adopters.Adopter {
	a, err := s.b.Adopters.Create(s.ctx, adopters.Adopter{FirstName: first, LastName: last, Phone: "555-0100"})
	s.Require().NoError(err)
	return a
}

func (s *StoreSuite) createAdoption(petID, adopterID int64) adoptions.Adoption {
	a, err := s.b.Adoptions.Create(s.ctx, adoptions.Adoption{
		PetID:     petID,
		AdopterID: adopterID,
		CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		Status:    adoptions.StatusPending,
	})
	s.Require().NoError(err)
	return a
}

func (s *StoreSuite) TestPets_CreateGetUpdate() {
	p := s.createPet("Rex", "Dog", 3)
	s.Equal(int64(1), p.ID)

	got, err := s.b.Pets.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(pets.Pet{ID: 1, Name: "Rex", Species: "Dog", Age: 3}, got)

	s.Require().NoError(s.b.Pets.Update(s.ctx, pets.Pet{ID: p.ID, Name: "Max", Species: "Cat", Age: 4}))
	got, err = s.b.Pets.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Max", got.Name)
	s.Equal(4, got.Age)

	err = s.b.Pets.Update(s.ctx, pets.Pet{ID: 99, Name: "Ghost", Species: "Dog"})
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.b.Pets.GetByID(s.ctx, 99)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestPets_DeleteIsIdempotent() {
	p := s.createPet("Rex", "Dog", 3)

	n, err := s.b.Pets.Delete(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = s.b.Pets.Delete(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), n)

	list, err := s.b.Pets.List(s.ctx, pets.ListFilter{})
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *StoreSuite) TestIDsAreNeverReused() {
	first := s.createPet("Rex", "Dog", 3)
	_, err := s.b.Pets.Delete(s.ctx, first.ID)
	s.Require().NoError(err)

	second := s.createPet("Rex", "Dog", 3)
	s.Greater(second.ID, first.ID)

	// Las secuencias son independientes por tipo.
	a := s.createAdopter("Ana", "Lee")
	s.Equal(int64(1), a.ID)
}

func (s *StoreSuite) TestPets_ListFilters() {
	rex := s.createPet("Rex", "Dog", 3)
	tom := s.createPet("Tom", "Cat", 2)
	fido := s.createPet("Fido", "dog", 1)
	ana := s.createAdopter("Ana", "Lee")

	dogs, err := s.b.Pets.List(s.ctx, pets.ListFilter{Species: "DOG"})
	s.Require().NoError(err)
	s.Equal([]int64{rex.ID, fido.ID}, petIDs(dogs))

	ad := s.createAdoption(tom.ID, ana.ID)
	s.Require().NoError(s.b.Adoptions.SetStatus(s.ctx, ad.ID, adoptions.StatusCompleted))

	avail, err := s.b.Pets.List(s.ctx, pets.ListFilter{AvailableOnly: true})
	s.Require().NoError(err)
	s.Equal([]int64{rex.ID, fido.ID}, petIDs(avail))

	all, err := s.b.Pets.List(s.ctx, pets.ListFilter{})
	s.Require().NoError(err)
	s.Equal([]int64{rex.ID, tom.ID, fido.ID}, petIDs(all))
}

func (s *StoreSuite) TestAdopters_CRUDAndAvailability() {
	ana := s.createAdopter("Ana", "Lee")
	bob := s.createAdopter("Bob", "Ray")
	rex := s.createPet("Rex", "Dog", 3)

	s.Require().NoError(s.b.Adopters.Update(s.ctx, adopters.Adopter{ID: ana.ID, FirstName: "Anna", LastName: "Lee", Phone: "1"}))
	got, err := s.b.Adopters.GetByID(s.ctx, ana.ID)
	s.Require().NoError(err)
	s.Equal("Anna", got.FirstName)

	s.ErrorIs(s.b.Adopters.Update(s.ctx, adopters.Adopter{ID: 42, FirstName: "x", LastName: "y", Phone: "z"}), sentinel.ErrNotFound)

	ad := s.createAdoption(rex.ID, bob.ID)
	s.Require().NoError(s.b.Adoptions.SetStatus(s.ctx, ad.ID, adoptions.StatusCompleted))

	avail, err := s.b.Adopters.List(s.ctx, adopters.ListFilter{AvailableOnly: true})
	s.Require().NoError(err)
	s.Len(avail, 1)
	s.Equal(ana.ID, avail[0].ID)

	n, err := s.b.Adopters.Delete(s.ctx, 42)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *StoreSuite) TestDeleteReferencedIsRejected() {
	rex := s.createPet("Rex", "Dog", 3)
	ana := s.createAdopter("Ana", "Lee")
	s.createAdoption(rex.ID, ana.ID)

	_, err := s.b.Pets.Delete(s.ctx, rex.ID)
	s.ErrorIs(err, pets.ErrReferenced)
	s.ErrorIs(err, sentinel.ErrConflict)

	_, err = s.b.Adopters.Delete(s.ctx, ana.ID)
	s.ErrorIs(err, adopters.ErrReferenced)

	_, err = s.b.Pets.GetByID(s.ctx, rex.ID)
	s.NoError(err)
}

func (s *StoreSuite) TestAdoptions_CreateChecksReferences() {
	rex := s.createPet("Rex", "Dog", 3)
	ana := s.createAdopter("Ana", "Lee")

	_, err := s.b.Adoptions.Create(s.ctx, adoptions.Adoption{PetID: 99, AdopterID: ana.ID, CreatedAt: time.Now(), Status: adoptions.StatusPending})
	s.ErrorIs(err, adoptions.ErrUnknownPet)

	_, err = s.b.Adoptions.Create(s.ctx, adoptions.Adoption{PetID: rex.ID, AdopterID: 99, CreatedAt: time.Now(), Status: adoptions.StatusPending})
	s.ErrorIs(err, adoptions.ErrUnknownAdopter)

	a := s.createAdoption(rex.ID, ana.ID)
	s.Equal(int64(1), a.ID)

	done, err := s.b.Adoptions.HasCompleted(s.ctx, rex.ID)
	s.Require().NoError(err)
	s.False(done)

	s.Require().NoError(s.b.Adoptions.SetStatus(s.ctx, a.ID, adoptions.StatusCompleted))
	done, err = s.b.Adoptions.HasCompleted(s.ctx, rex.ID)
	s.Require().NoError(err)
	s.True(done)

	_, err = s.b.Adoptions.Create(s.ctx, adoptions.Adoption{PetID: rex.ID, AdopterID: ana.ID, CreatedAt: time.Now(), Status: adoptions.StatusPending})
	s.ErrorIs(err, adoptions.ErrPetAlreadyAdopted)
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *StoreSuite) TestAdoptions_GetAndSetStatus() {
	rex := s.createPet("Rex", "Dog", 3)
	ana := s.createAdopter("Ana", "Lee")
	a := s.createAdoption(rex.ID, ana.ID)

	got, err := s.b.Adoptions.GetByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(adoptions.StatusPending, got.Status)
	s.Equal(rex.ID, got.PetID)
	s.Equal(ana.ID, got.AdopterID)
	s.True(got.CreatedAt.Equal(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)), "created_at %v", got.CreatedAt)

	// Sin tabla de transiciones: cualquier estado a cualquier otro, y repetir es inocuo.
	for _, st := range []adoptions.Status{adoptions.StatusCancelled, adoptions.StatusCompleted, adoptions.StatusPending, adoptions.StatusPending} {
		s.Require().NoError(s.b.Adoptions.SetStatus(s.ctx, a.ID, st))
		got, err = s.b.Adoptions.GetByID(s.ctx, a.ID)
		s.Require().NoError(err)
		s.Equal(st, got.Status)
	}

	s.ErrorIs(s.b.Adoptions.SetStatus(s.ctx, 77, adoptions.StatusCompleted), sentinel.ErrNotFound)
	_, err = s.b.Adoptions.GetByID(s.ctx, 77)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestAdoptions_ListJoinsAndFilters() {
	rex := s.createPet("Rex", "Dog", 3)
	tom := s.createPet("Tom", "Cat", 2)
	ana := s.createAdopter("Ana", "Lee")
	bob := s.createAdopter("Bob", "Ray")

	a1 := s.createAdoption(rex.ID, ana.ID)
	a2 := s.createAdoption(tom.ID, bob.ID)
	a3 := s.createAdoption(tom.ID, ana.ID)
	s.Require().NoError(s.b.Adoptions.SetStatus(s.ctx, a2.ID, adoptions.StatusCompleted))
	s.Require().NoError(s.b.Adoptions.SetStatus(s.ctx, a3.ID, adoptions.StatusCancelled))

	all, err := s.b.Adoptions.List(s.ctx, adoptions.ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]int64{a1.ID, a2.ID, a3.ID}, viewIDs(all))
	s.Equal("Rex", all[0].PetName)
	s.Equal("Ana Lee", all[0].AdopterName)
	s.Equal("Bob Ray", all[1].AdopterName)

	active, err := s.b.Adoptions.List(s.ctx, adoptions.ListFilter{ExcludeStatuses: []adoptions.Status{adoptions.StatusCompleted}})
	s.Require().NoError(err)
	s.Equal([]int64{a1.ID, a3.ID}, viewIDs(active))

	byPet, err := s.b.Adoptions.List(s.ctx, adoptions.ListFilter{PetID: tom.ID})
	s.Require().NoError(err)
	s.Equal([]int64{a2.ID, a3.ID}, viewIDs(byPet))

	mixed, err := s.b.Adoptions.List(s.ctx, adoptions.ListFilter{
		AdopterID: ana.ID,
		Statuses:  []adoptions.Status{adoptions.StatusPending, adoptions.StatusCancelled},
	})
	s.Require().NoError(err)
	s.Equal([]int64{a1.ID, a3.ID}, viewIDs(mixed))
}

func (s *StoreSuite) TestUsers_UniqueUsername() {
	name := "user-" + uuid.NewString()

	u, err := s.b.Users.Create(s.ctx, users.User{Username: name, Password: "secret", Role: users.RoleUser})
	s.Require().NoError(err)
	s.Equal(int64(1), u.ID)

	_, err = s.b.Users.Create(s.ctx, users.User{Username: name, Password: "other", Role: users.RoleUser})
	s.ErrorIs(err, sentinel.ErrAlreadyExists)

	got, err := s.b.Users.GetByUsername(s.ctx, name)
	s.Require().NoError(err)
	s.Equal("secret", got.Password)
	s.Equal(users.RoleUser, got.Role)

	_, err = s.b.Users.GetByUsername(s.ctx, "nobody-"+uuid.NewString())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestConcurrentCreatesGetDistinctIDs() {
	const n = 20

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
		errs []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := s.b.Pets.Create(s.ctx, pets.Pet{Name: fmt.Sprintf("pet-%d", i), Species: "Dog", Age: i})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			seen[p.ID] = true
		}(i)
	}
	wg.Wait()

	s.Empty(errs)
	s.Len(seen, n)
}

func petIDs(items []pets.Pet) []int64 {
	out := make([]int64, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func viewIDs(items []adoptions.View) []int64 {
	out := make([]int64, 0, len(items))
	for _, v := range items {
		out = append(out, v.ID)
	}
	return out
}
