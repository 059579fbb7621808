package errdefs

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrTypeEmptyMenu ErrorType = iota
	ErrTypeMisalignedDescriptions
	ErrTypeMissingResource
	ErrTypeMenuOverflow
	ErrTypeContentOverflow
	ErrTypeInvalidGeometry
	ErrTypeUnknownMenu
	ErrTypeInvalidCatalog
	ErrTypeNotTerminal
	ErrTypeGeneric
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeEmptyMenu:
		return "empty menu"
	case ErrTypeMisalignedDescriptions:
		return "misaligned descriptions"
	case ErrTypeMissingResource:
		return "missing resource"
	case ErrTypeMenuOverflow:
		return "menu overflow"
	case ErrTypeContentOverflow:
		return "content overflow"
	case ErrTypeInvalidGeometry:
		return "invalid geometry"
	case ErrTypeUnknownMenu:
		return "unknown menu"
	case ErrTypeInvalidCatalog:
		return "invalid catalog"
	case ErrTypeNotTerminal:
		return "not a terminal"
	default:
		return "generic"
	}
}

type CustomError struct {
	Type    ErrorType
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

func NewCustomErrorf(errType ErrorType, format string, args ...any) error {
	return NewCustomError(errType, fmt.Sprintf(format, args...))
}

// IsType reports whether any error in err's chain is a CustomError of the given type.
func IsType(err error, errType ErrorType) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type == errType
	}
	return false
}

var ErrNotTerminal = NewCustomError(ErrTypeNotTerminal, "dankwizard must be run from an interactive terminal")
