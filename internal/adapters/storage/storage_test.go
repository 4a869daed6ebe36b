package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"pawfect-match/internal/adapters/storage"
	"pawfect-match/internal/platform/logger"
)

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{open: storage.NewMemory})
}

func TestSQLiteStore(t *testing.T) {
	s := &StoreSuite{}
	s.open = func() *storage.Backend {
		path := filepath.Join(s.T().TempDir(), "pawfect.db")
		b, err := storage.Open(context.Background(), storage.Config{
			Driver:     storage.DriverSQLite,
			SQLitePath: path,
		}, logger.Nop())
		require.NoError(s.T(), err)
		return b
	}
	suite.Run(t, s)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := storage.Config{Driver: storage.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "data", "pawfect.db")}

	b, err := storage.Open(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	s := &StoreSuite{}
	s.SetT(t)
	s.ctx = ctx
	s.b = b
	first := s.createPet("Rex", "Dog", 3)
	require.NoError(t, b.Close())

	// Migrar de nuevo no borra datos ni reinicia secuencias.
	b, err = storage.Open(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer b.Close()
	s.b = b

	got, err := b.Pets.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "Rex", got.Name)
	require.Greater(t, s.createPet("Tom", "Cat", 1).ID, first.ID)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := storage.Open(context.Background(), storage.Config{Driver: "oracle"}, nil)
	require.Error(t, err)
}
