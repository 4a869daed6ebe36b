package pets

import (
	"strconv"
	"strings"

	"pawfect-match/internal/platform/validation"
)

// Input es lo que llega del caller, sin interpretar (la edad viene como texto).
type Input struct {
	Name    string `json:"name" validate:"required"`
	Species string `json:"species" validate:"required"`
	Age     string `json:"age" validate:"required,numeric"`
}

// Fields son los campos mutables ya validados.
type Fields struct {
	Name    string
	Species string
	Age     int
}

// ValidateInput es pura: trimea, valida y convierte. No toca el store.
// Reasons: empty, not_a_number (incluye fuera de rango int32), negative.
func ValidateInput(in Input) (Fields, error) {
	in = Input{
		Name:    strings.TrimSpace(in.Name),
		Species: strings.TrimSpace(in.Species),
		Age:     strings.TrimSpace(in.Age),
	}

	verr := validation.Struct(in)
	if verr == nil {
		verr = &validation.Error{}
	}

	age := 0
	if !verr.Has("age", validation.ReasonEmpty) && !verr.Has("age", validation.ReasonNotANumber) {
		// numeric acepta decimales ("3.5"); acá exigimos entero de 32 bits (columna INTEGER).
		n, err := strconv.ParseInt(in.Age, 10, 32)
		switch {
		case err != nil:
			verr.Add("age", validation.ReasonNotANumber)
		case n < 0:
			verr.Add("age", validation.ReasonNegative)
		default:
			age = int(n)
		}
	}

	if err := verr.OrNil(); err != nil {
		return Fields{}, err
	}
	return Fields{Name: in.Name, Species: in.Species, Age: age}, nil
}
