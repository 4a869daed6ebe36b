package adoptions

import (
	"context"
	"errors"
	"time"

	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/platform/metrics"
	"pawfect-match/internal/platform/validation"
)

const kind = "adoption"

type Service struct {
	repo     Repository
	pets     PetChecker
	adopters AdopterChecker
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
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

// WithClock fija la fecha de creación (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, pets PetChecker, adopters AdopterChecker, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		pets:     pets,
		adopters: adopters,
		log:      logger.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(map[string]any{"module": "adoptions"})
	return s
}

// Create valida y persiste una adopción Pending con la fecha actual.
// Cualquier falla de referencia (incluida la detectada por el store) sale como *validation.Error.
func (s *Service) Create(ctx context.Context, in CreateInput) (Adoption, error) {
	petID, adopterID, err := ValidateCreate(ctx, in, s.pets, s.adopters, s.repo)
	if err != nil {
		s.countFailures(err)
		return Adoption{}, err
	}

	a, err := s.repo.Create(ctx, Adoption{
		PetID:     petID,
		AdopterID: adopterID,
		CreatedAt: s.now().UTC(),
		Status:    StatusPending,
	})
	if err != nil {
		if verr := storeRejection(err); verr != nil {
			s.log.Warn("adoption rejected by store", map[string]any{"pet_id": petID, "adopter_id": adopterID, "err": err})
			s.countFailures(verr)
			return Adoption{}, verr
		}
		return Adoption{}, err
	}

	s.metrics.IncCreated(kind)
	s.metrics.IncAdoptionCreated()
	s.log.Info("adoption created", map[string]any{"adoption_id": a.ID, "pet_id": petID, "adopter_id": adopterID})
	return a, nil
}

// SetStatus no impone orden entre estados: cualquier estado a cualquier otro.
// Se persiste siempre la forma canónica ("completed" -> Completed).
func (s *Service) SetStatus(ctx context.Context, id int64, status Status) (Adoption, error) {
	st, err := ParseStatus(string(status))
	if err != nil {
		s.countFailures(err)
		return Adoption{}, err
	}

	if err := s.repo.SetStatus(ctx, id, st); err != nil {
		return Adoption{}, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Adoption{}, err
	}

	s.metrics.IncStatusChange(string(st))
	s.log.Info("adoption status changed", map[string]any{"adoption_id": id, "status": string(st)})
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Adoption, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]View, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) countFailures(err error) {
	for _, fe := range validation.Fields(err) {
		s.metrics.IncValidationFailure(kind, string(fe.Reason))
	}
}

func storeRejection(err error) *validation.Error {
	switch {
	case errors.Is(err, ErrUnknownPet):
		return validation.New("pet_id", validation.ReasonNotFound)
	case errors.Is(err, ErrUnknownAdopter):
		return validation.New("adopter_id", validation.ReasonNotFound)
	case errors.Is(err, ErrPetAlreadyAdopted):
		return validation.New("pet_id", validation.ReasonAlreadyAdopted)
	}
	return nil
}
