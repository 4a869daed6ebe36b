package availability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pawfect-match/internal/adapters/storage/memory"
	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/domain/availability"
	"pawfect-match/internal/domain/pets"
)

func TestListings(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := availability.NewService(store.Pets(), store.Adopters(), store.Adoptions())

	for _, name := range []string{"Rex", "Tom", "Fido"} {
		_, err := store.Pets().Create(ctx, pets.Pet{Name: name, Species: "Dog", Age: 1})
		require.NoError(t, err)
	}
	for _, name := range [][2]string{{"Ana", "Lee"}, {"Bob", "Ray"}} {
		_, err := store.Adopters().Create(ctx, adopters.Adopter{FirstName: name[0], LastName: name[1], Phone: "1"})
		require.NoError(t, err)
	}

	create := func(petID, adopterID int64, status adoptions.Status) {
		a, err := store.Adoptions().Create(ctx, adoptions.Adoption{PetID: petID, AdopterID: adopterID, CreatedAt: time.Now(), Status: adoptions.StatusPending})
		require.NoError(t, err)
		require.NoError(t, store.Adoptions().SetStatus(ctx, a.ID, status))
	}
	create(2, 2, adoptions.StatusCompleted)
	create(1, 1, adoptions.StatusCancelled)
	create(3, 1, adoptions.StatusPending)

	availPets, err := svc.ListAvailablePets(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Rex", "Fido"}, []string{availPets[0].Name, availPets[1].Name})
	require.Len(t, availPets, 2)

	availAdopters, err := svc.ListAvailableAdopters(ctx)
	require.NoError(t, err)
	require.Len(t, availAdopters, 1)
	require.Equal(t, "Ana", availAdopters[0].FirstName)

	all, err := svc.ListAllAdoptions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Tom", all[0].PetName)
	require.Equal(t, "Bob Ray", all[0].AdopterName)

	active, err := svc.ListActiveAdoptions(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, adoptions.StatusCancelled, active[0].Status)
	require.Equal(t, adoptions.StatusPending, active[1].Status)
	require.Less(t, active[0].ID, active[1].ID)
}
