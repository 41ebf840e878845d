package config

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a path does not exist in the configuration or holds null.
var ErrNotFound = errors.New("path not found")

// ErrWrongType is returned when the value at a path cannot be coerced to the requested type.
var ErrWrongType = errors.New("wrong type")

// ErrParse is returned when a textual value is well shaped but malformed for the requested type,
// for example a duration with an unknown unit.
var ErrParse = errors.New("parse error")

// ErrUnsupportedValue is returned by NewTree and ValueOf for Go values that have no configuration representation.
var ErrUnsupportedValue = errors.New("unsupported value")

func pathError(path string, err error) error {
	return fmt.Errorf("%q: %w", path, err)
}

func notFound(path string) error {
	return pathError(path, ErrNotFound)
}

func wrongType(want string, value Value) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrWrongType, want, value.describe())
}
