package pets

import (
	"context"
	"fmt"
	"strings"

	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/platform/metrics"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/validation"
)

const kind = "pet"

var (
	// ErrReferenced: la mascota tiene adopciones y no se borra (no hay cascade).
	ErrReferenced = fmt.Errorf("%w: pet is referenced by adoptions", sentinel.ErrConflict)
)

type Service struct {
	repo    Repository
	log     logger.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(map[string]any{"module": "pets"})
	return s
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	f, err := s.validate(in)
	if err != nil {
		return Pet{}, err
	}

	p, err := s.repo.Create(ctx, Pet{Name: f.Name, Species: f.Species, Age: f.Age})
	if err != nil {
		return Pet{}, err
	}

	s.metrics.IncCreated(kind)
	s.log.Info("pet created", map[string]any{"pet_id": p.ID})
	return p, nil
}

// Update valida antes de tocar el store; si falla, el registro queda igual.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Pet, error) {
	f, err := s.validate(in)
	if err != nil {
		return Pet{}, err
	}

	p := Pet{ID: id, Name: f.Name, Species: f.Species, Age: f.Age}
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}

	s.log.Info("pet updated", map[string]any{"pet_id": id})
	return p, nil
}

// Delete es idempotente: borrar un id inexistente devuelve 0 sin error.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	s.metrics.AddDeleted(kind, n)
	s.log.Info("pet deleted", map[string]any{"pet_id": id, "rows_affected": n})
	return n, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	filter.Species = strings.TrimSpace(filter.Species)
	return s.repo.List(ctx, filter)
}

func (s *Service) validate(in Input) (Fields, error) {
	f, err := ValidateInput(in)
	if err != nil {
		for _, fe := range validation.Fields(err) {
			s.metrics.IncValidationFailure(kind, string(fe.Reason))
		}
		return Fields{}, err
	}
	return f, nil
}
