package config

import (
	"errors"
	"fmt"
)

// Accessor extracts a value of type T from a Handle at a path.
//
// Accessors are stateless and safe for concurrent use. Get fails with an
// error wrapping ErrNotFound, ErrWrongType or ErrParse.
type Accessor[T any] interface {
	Get(cfg Handle, path string) (T, error)
}

// AccessorFunc adapts a plain function to the Accessor interface.
type AccessorFunc[T any] func(cfg Handle, path string) (T, error)

// Get calls f(cfg, path).
func (f AccessorFunc[T]) Get(cfg Handle, path string) (T, error) {
	return f(cfg, path)
}

// Get reads the value at path using acc. The accessor selects the result type
// and the coercion rules; the stored value's shape never does.
func Get[T any](cfg Handle, path string, acc Accessor[T]) (T, error) {
	if cfg == nil {
		var zero T

		return zero, notFound(path)
	}

	return acc.Get(cfg, path)
}

// Lookup is like Get but reports an absent path as ok=false with a nil error.
// Wrong type and parse failures are still returned.
func Lookup[T any](cfg Handle, path string, acc Accessor[T]) (T, bool, error) {
	value, err := Get(cfg, path, acc)
	if err != nil {
		if errors.Is(err, ErrNotFound) && (cfg == nil || !cfg.HasPath(path)) {
			return value, false, nil
		}

		return value, false, err
	}

	return value, true, nil
}

// GetOr is like Get but returns fallback when path is absent.
// Wrong type and parse failures are still returned.
func GetOr[T any](cfg Handle, path string, acc Accessor[T], fallback T) (T, error) {
	value, ok, err := Lookup(cfg, path, acc)
	if err != nil {
		return value, err
	}

	if !ok {
		return fallback, nil
	}

	return value, nil
}

// Must returns value or panics if err is non-nil.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}

	return value
}

// scalar builds a leaf accessor from a coercion of the value stored at the path.
func scalar[T any](coerce func(Value) (T, error)) Accessor[T] {
	return AccessorFunc[T](func(cfg Handle, path string) (T, error) {
		var zero T

		value, ok := cfg.Lookup(path)
		if !ok {
			return zero, notFound(path)
		}

		result, err := coerce(value)
		if err != nil {
			return zero, pathError(path, err)
		}

		return result, nil
	})
}
