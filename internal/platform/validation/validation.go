package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"pawfect-match/internal/platform/sentinel"
)

// Reason identifica por qué falló un campo.
type Reason string

const (
	ReasonEmpty          Reason = "empty"
	ReasonNotANumber     Reason = "not_a_number"
	ReasonNegative       Reason = "negative"
	ReasonNotFound       Reason = "not_found"
	ReasonAlreadyAdopted Reason = "already_adopted"
	ReasonInvalidStatus  Reason = "invalid_status"
	ReasonInvalid        Reason = "invalid"
)

type FieldError struct {
	Field  string `json:"field"`
	Reason Reason `json:"reason"`
}

// Error junta todas las violaciones de un input.
// errors.Is(err, sentinel.ErrInvalidInput) es true para cualquier *Error.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return sentinel.ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+string(f.Reason))
	}
	return sentinel.ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return sentinel.ErrInvalidInput }

// Has indica si el error incluye field+reason (útil en tests y diagnósticos).
func (e *Error) Has(field string, reason Reason) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Field == field && f.Reason == reason {
			return true
		}
	}
	return false
}

// Add acumula una violación.
func (e *Error) Add(field string, reason Reason) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// OrNil devuelve nil si no se acumuló nada.
func (e *Error) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// New arma un *Error con una sola violación.
func New(field string, reason Reason) *Error {
	return &Error{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// Fields extrae las violaciones de err, si es un error de validación.
func Fields(err error) []FieldError {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Los errores usan el nombre del tag json (igual que la API).
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate = v
	})
	return validate
}

// Struct valida los tags `validate` de v y traduce cada falla a un Reason.
// Devuelve nil si v es válido.
func Struct(v any) *Error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return New("payload", ReasonInvalid)
	}

	out := &Error{}
	for _, fe := range verrs {
		out.Add(fe.Field(), reasonFor(fe))
	}
	return out
}

func reasonFor(fe validator.FieldError) Reason {
	switch fe.Tag() {
	case "required":
		return ReasonEmpty
	case "numeric", "number":
		return ReasonNotANumber
	case "gte", "min":
		return ReasonNegative
	case "oneof":
		return ReasonInvalidStatus
	default:
		return ReasonInvalid
	}
}
