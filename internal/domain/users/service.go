package users

import (
	"context"
	"errors"
	"strings"

	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/platform/metrics"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/validation"
)

const kind = "user"

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

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
	s := &Service{repo: repo, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(map[string]any{"module": "users"})
	return s
}

// Register crea un usuario con rol "user".
// Username y password vacíos -> ErrInvalidInput; username repetido -> ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	// El username se trimea; el password no (es opaco).
	c := Credentials{Username: strings.TrimSpace(username), Password: password}
	if verr := validation.Struct(c); verr != nil {
		for _, fe := range verr.Fields {
			s.metrics.IncValidationFailure(kind, string(fe.Reason))
		}
		return User{}, verr
	}

	u, err := s.repo.Create(ctx, User{Username: c.Username, Password: c.Password, Role: RoleUser})
	if err != nil {
		if errors.Is(err, sentinel.ErrAlreadyExists) {
			s.log.Warn("username already taken", map[string]any{"username": c.Username})
		}
		return User{}, err
	}

	s.metrics.IncCreated(kind)
	s.log.Info("user registered", map[string]any{"user_id": u.ID, "username": u.Username})
	return u, nil
}

// Authenticate es true solo si existe el usuario y el password coincide exacto.
// Usuario inexistente no es error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.Password == password, nil
}
