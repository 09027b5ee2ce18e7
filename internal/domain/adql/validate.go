package adql

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument marks a parameter that failed validation before any
// network call was attempted.
var ErrInvalidArgument = errors.New("invalid argument")

// argumentError carries the exact user-facing message while staying
// matchable with errors.Is(err, ErrInvalidArgument).
type argumentError struct{ msg string }

func (e *argumentError) Error() string { return e.msg }
func (e *argumentError) Unwrap() error { return ErrInvalidArgument }

// PositiveBounded verifies value is in [1, max]. Messages are user-facing
// and include the offending value.
func PositiveBounded(value int, name string, max int) error {
	if value <= 0 {
		return &argumentError{msg: fmt.Sprintf("%s debe ser mayor a 0, recibido: %d", name, value)}
	}
	if value > max {
		return &argumentError{msg: fmt.Sprintf("%s no puede exceder %d, recibido: %d", name, max, value)}
	}
	return nil
}

// NonEmptyName rejects empty or whitespace-only planet names.
func NonEmptyName(name string) error {
	return nonEmpty(name, "El nombre no puede estar vacío")
}

// NonEmptyMethod rejects an empty discovery method.
func NonEmptyMethod(method string) error {
	return nonEmpty(method, "El método no puede estar vacío")
}

func nonEmpty(value, msg string) error {
	if strings.TrimSpace(value) == "" {
		return &argumentError{msg: msg}
	}
	return nil
}
