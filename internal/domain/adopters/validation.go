package adopters

import (
	"strings"

	"pawfect-match/internal/platform/validation"
)

type Input struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

// ValidateInput trimea y exige los tres campos. Pura.
func ValidateInput(in Input) (Input, error) {
	in = Input{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
	}
	if verr := validation.Struct(in); verr != nil {
		return Input{}, verr
	}
	return in, nil
}
