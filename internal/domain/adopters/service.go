package adopters

import (
	"context"
	"fmt"

	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/platform/metrics"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/validation"
)

const kind = "adopter"

var (
	ErrReferenced = fmt.Errorf("%w: adopter is referenced by adoptions", sentinel.ErrConflict)
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
	s.log = s.log.With(map[string]any{"module": "adopters"})
	return s
}

func (s *Service) Create(ctx context.Context, in Input) (Adopter, error) {
	in, err := s.validate(in)
	if err != nil {
		return Adopter{}, err
	}

	a, err := s.repo.Create(ctx, Adopter{FirstName: in.FirstName, LastName: in.LastName, Phone: in.Phone})
	if err != nil {
		return Adopter{}, err
	}

	s.metrics.IncCreated(kind)
	s.log.Info("adopter created", map[string]any{"adopter_id": a.ID})
	return a, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Adopter, error) {
	in, err := s.validate(in)
	if err != nil {
		return Adopter{}, err
	}

	a := Adopter{ID: id, FirstName: in.FirstName, LastName: in.LastName, Phone: in.Phone}
	if err := s.repo.Update(ctx, a); err != nil {
		return Adopter{}, err
	}

	s.log.Info("adopter updated", map[string]any{"adopter_id": id})
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	s.metrics.AddDeleted(kind, n)
	s.log.Info("adopter deleted", map[string]any{"adopter_id": id, "rows_affected": n})
	return n, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Adopter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Adopter, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) validate(in Input) (Input, error) {
	out, err := ValidateInput(in)
	if err != nil {
		for _, fe := range validation.Fields(err) {
			s.metrics.IncValidationFailure(kind, string(fe.Reason))
		}
		return Input{}, err
	}
	return out, nil
}
