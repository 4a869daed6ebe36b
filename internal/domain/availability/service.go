// Package availability arma las vistas derivadas: qué mascotas y adoptantes
// siguen disponibles y qué adopciones siguen activas.
// No guarda estado: cada llamada se recalcula contra el store.
package availability

import (
	"context"

	"pawfect-match/internal/domain/adopters"
	"pawfect-match/internal/domain/adoptions"
	"pawfect-match/internal/domain/pets"
)

type Service struct {
	pets      pets.Repository
	adopters  adopters.Repository
	adoptions adoptions.Repository
}

func NewService(p pets.Repository, a adopters.Repository, ad adoptions.Repository) *Service {
	return &Service{pets: p, adopters: a, adoptions: ad}
}

// ListAvailablePets: mascotas sin ninguna adopción Completed.
func (s *Service) ListAvailablePets(ctx context.Context) ([]pets.Pet, error) {
	return s.pets.List(ctx, pets.ListFilter{AvailableOnly: true})
}

func (s *Service) ListAvailableAdopters(ctx context.Context) ([]adopters.Adopter, error) {
	return s.adopters.List(ctx, adopters.ListFilter{AvailableOnly: true})
}

func (s *Service) ListAllAdoptions(ctx context.Context) ([]adoptions.View, error) {
	return s.adoptions.List(ctx, adoptions.ListFilter{})
}

// ListActiveAdoptions incluye Pending y Cancelled.
func (s *Service) ListActiveAdoptions(ctx context.Context) ([]adoptions.View, error) {
	return s.adoptions.List(ctx, adoptions.ListFilter{
		ExcludeStatuses: []adoptions.Status{adoptions.StatusCompleted},
	})
}
