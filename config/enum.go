package config

import (
	"fmt"
	"strings"
)

// Enum derives an accessor for a fixed set of named constants.
//
// The string at the path must equal the String() name of one of constants
// exactly; there is no case folding. A name that matches nothing fails with
// ErrWrongType. When two constants share a name the first one wins.
func Enum[E fmt.Stringer](constants ...E) Accessor[E] {
	byName := make(map[string]E, len(constants))
	names := make([]string, 0, len(constants))

	for _, constant := range constants {
		name := constant.String()
		if _, exists := byName[name]; exists {
			continue
		}

		byName[name] = constant
		names = append(names, name)
	}

	legal := strings.Join(names, ", ")

	return AccessorFunc[E](func(cfg Handle, path string) (E, error) {
		var zero E

		name, err := String.Get(cfg, path)
		if err != nil {
			return zero, err
		}

		constant, ok := byName[name]
		if !ok {
			return zero, pathError(path, fmt.Errorf("%w: %q is not one of [%s]", ErrWrongType, name, legal))
		}

		return constant, nil
	})
}
