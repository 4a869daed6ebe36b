package adoptions

import (
	"strings"
	"time"

	"pawfect-match/internal/platform/validation"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var Statuses = []Status{StatusPending, StatusCompleted, StatusCancelled}

// ParseStatus acepta cualquier capitalización ("completed", "COMPLETED").
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	for _, s := range Statuses {
		if strings.EqualFold(raw, string(s)) {
			return s, nil
		}
	}
	if raw == "" {
		return "", validation.New("status", validation.ReasonEmpty)
	}
	return "", validation.New("status", validation.ReasonInvalidStatus)
}

// Adoption vincula una mascota con un adoptante. Solo Status cambia después de crearse.
type Adoption struct {
	ID        int64
	PetID     int64
	AdopterID int64
	CreatedAt time.Time
	Status    Status
}

// View es la adopción con los nombres resueltos, como la muestran los listados.
type View struct {
	Adoption
	PetName     string
	AdopterName string
}

// ListFilter: campos en cero no filtran. Orden siempre por ID ascendente.
type ListFilter struct {
	Statuses        []Status
	ExcludeStatuses []Status
	PetID           int64
	AdopterID       int64
}
