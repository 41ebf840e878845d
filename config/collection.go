package config

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// SetOf is an unordered collection of distinct values.
type SetOf[T comparable] map[T]struct{}

// Has reports whether value is in the set.
func (s SetOf[T]) Has(value T) bool {
	_, ok := s[value]

	return ok
}

// Len returns the number of distinct values.
func (s SetOf[T]) Len() int {
	return len(s)
}

// Values returns the members in unspecified order.
func (s SetOf[T]) Values() []T {
	return lo.Keys(s)
}

// Slice derives an accessor for a list whose elements are read with elem.
// Source order is preserved. A non-list value fails with ErrWrongType and the
// first element that elem rejects fails the whole read.
func Slice[T any](elem Accessor[T]) Accessor[[]T] {
	return AccessorFunc[[]T](func(cfg Handle, path string) ([]T, error) {
		items, err := listAt(cfg, path)
		if err != nil {
			return nil, err
		}

		result := make([]T, 0, len(items))

		for i, item := range items {
			value, err := elem.Get(elementAt(path, i, item))
			if err != nil {
				return nil, err
			}

			result = append(result, value)
		}

		return result, nil
	})
}

// Set derives an accessor for a list read as a set. Elements that coerce to
// equal values collapse into one member.
func Set[T comparable](elem Accessor[T]) Accessor[SetOf[T]] {
	list := Slice(elem)

	return AccessorFunc[SetOf[T]](func(cfg Handle, path string) (SetOf[T], error) {
		items, err := list.Get(cfg, path)
		if err != nil {
			return nil, err
		}

		return SetOf[T](lo.Keyify(items)), nil
	})
}

// Map derives an accessor for a tree whose direct children are read with elem.
// Element failures name the child as "path.key".
func Map[T any](elem Accessor[T]) Accessor[map[string]T] {
	return AccessorFunc[map[string]T](func(cfg Handle, path string) (map[string]T, error) {
		tree, err := Subtree.Get(cfg, path)
		if err != nil {
			return nil, err
		}

		result := make(map[string]T, tree.Len())

		for _, key := range tree.Keys() {
			childPath := path + "." + key

			value, err := elem.Get(elementHandle{path: childPath, value: tree.values[key]}, childPath)
			if err != nil {
				return nil, err
			}

			result[key] = value
		}

		return result, nil
	})
}

func listAt(cfg Handle, path string) ([]Value, error) {
	value, ok := cfg.Lookup(path)
	if !ok {
		return nil, notFound(path)
	}

	if value.Kind() != KindList {
		return nil, pathError(path, wrongType("list", value))
	}

	return slices.Clone(value.list), nil
}

func elementAt(path string, index int, value Value) (Handle, string) {
	elementPath := fmt.Sprintf("%s[%d]", path, index)

	return elementHandle{path: elementPath, value: value}, elementPath
}
