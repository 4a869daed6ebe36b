package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/validation"
)

// ErrorResponse es el cuerpo de cualquier respuesta de error.
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// Write antes estaba duplicado en cada módulo (pets/events); con cuatro módulos
// ya conviene tenerlo en un solo lugar.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce la taxonomía de sentinel a status HTTP.
// Los 500 se loguean; el detalle del store no se expone al cliente.
func WriteError(w http.ResponseWriter, log logger.Logger, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		Write(w, http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, sentinel.ErrInvalidInput):
		Write(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, sentinel.ErrNotFound):
		Write(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, sentinel.ErrAlreadyExists), errors.Is(err, sentinel.ErrConflict):
		Write(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		if log != nil {
			log.Error("request failed", map[string]any{"err": err})
		}
		Write(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// BadRequest para errores de parseo del request (json inválido, id de path).
func BadRequest(w http.ResponseWriter, msg string) {
	Write(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// Decode lee el body JSON rechazando campos desconocidos.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Text devuelve un valor JSON escalar como texto, sin interpretarlo:
// "3" -> 3, 3 -> 3, null/ausente -> "". Así la validación de dominio decide
// si es numérico (y con qué reason) en vez de fallar en el decode.
func Text(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var out string
		if err := json.Unmarshal(raw, &out); err == nil {
			return out
		}
	}
	return s
}
