package recommendations

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAge           = errors.New("invalid age")
	ErrInvalidWeight        = errors.New("invalid weight")
	ErrUnknownSize          = errors.New("unknown size category")
	ErrUnknownActivityLevel = errors.New("unknown activity level")
)

// ValidationError identifica el campo del perfil que impidió generar una recomendación.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (got %v)", e.Field, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, value any, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}

// FieldOf devuelve el campo inválido si err es un ValidationError.
func FieldOf(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field, true
	}
	return "", false
}
