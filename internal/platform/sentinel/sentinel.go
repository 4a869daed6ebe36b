package sentinel

import "errors"

// Errores base compartidos por stores y services.
// Los módulos los envuelven con fmt.Errorf("%w: ...") y el caller usa errors.Is.
//
// - ErrInvalidInput: campo vacío, no numérico, fuera de rango o referencia inválida
// - ErrNotFound: el registro no existe
// - ErrAlreadyExists: clave única ya usada (ej. username)
// - ErrConflict: la operación choca con el estado actual (ej. borrar una mascota referenciada)
// - ErrStorage: el store no está disponible o rechazó la operación
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
	ErrStorage       = errors.New("storage failure")
)
