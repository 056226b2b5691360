package entity

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the two classes of validation failure:
// a value of the right shape but outside the allowed range (KindValue),
// and input that is not of the expected type at all (KindType).
type ErrorKind int

const (
	KindValue ErrorKind = iota
	KindType
)

// ValidationError is returned by entity constructors, setters and parse
// helpers. Construction is all-or-nothing: when a ValidationError is
// returned, no entity was produced and no state was changed.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func valueErr(field, message string) *ValidationError {
	return &ValidationError{Kind: KindValue, Field: field, Message: message}
}

func typeErr(field, message string) *ValidationError {
	return &ValidationError{Kind: KindType, Field: field, Message: message}
}

// IsValue reports whether err is a ValidationError of kind KindValue.
func IsValue(err error) bool {
	var v *ValidationError
	return errors.As(err, &v) && v.Kind == KindValue
}

// IsType reports whether err is a ValidationError of kind KindType.
func IsType(err error) bool {
	var v *ValidationError
	return errors.As(err, &v) && v.Kind == KindType
}
