package ids

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
)

// Kind identifica la secuencia de una entidad.
type Kind string

const (
	KindUser     Kind = "user"
	KindPet      Kind = "pet"
	KindAdopter  Kind = "adopter"
	KindAdoption Kind = "adoption"
)

// Kinds lista todas las secuencias conocidas.
var Kinds = []Kind{KindUser, KindPet, KindAdopter, KindAdoption}

var (
	ErrUnknownKind = errors.New("unknown id kind")
	ErrInvalidID   = errors.New("invalid id")
)

// Allocator entrega identificadores estrictamente crecientes por Kind, empezando en 1.
// Un id entregado nunca se vuelve a entregar, aunque el registro se borre.
type Allocator interface {
	Next(ctx context.Context, kind Kind) (int64, error)
}

// Sequence es el Allocator en memoria (lo usa el store in-memory).
type Sequence struct {
	mu   sync.Mutex
	last map[Kind]int64
}

func NewSequence() *Sequence {
	return &Sequence{last: make(map[Kind]int64, len(Kinds))}
}

func (s *Sequence) Next(_ context.Context, kind Kind) (int64, error) {
	if !Known(kind) {
		return 0, ErrUnknownKind
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last[kind]++
	return s.last[kind], nil
}

func Known(kind Kind) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Parse interpreta un id textual (base 10, > 0).
func Parse(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
