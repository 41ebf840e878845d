package config

import (
	"fmt"
	"math"
	"strconv"
)

// Built-in leaf accessors. They are constructed once at package
// initialization and never mutated.
//
//nolint:gochecknoglobals // shared stateless accessors.
var (
	// String reads a string. Numbers and booleans are returned as their literal text.
	String Accessor[string] = scalar(coerceString)

	// Bool reads a boolean or one of the exact strings "true" and "false".
	Bool Accessor[bool] = scalar(coerceBool)

	// Int reads a 32-bit integer. Values outside the int32 range or with a
	// fractional part fail with ErrWrongType.
	Int Accessor[int32] = scalar(coerceInt32)

	// Int64 reads a 64-bit integer.
	Int64 Accessor[int64] = scalar(coerceInt64)

	// Float64 reads a floating point number.
	Float64 Accessor[float64] = scalar(coerceFloat64)

	// Subtree reads a nested tree.
	Subtree Accessor[*Tree] = scalar(coerceTree)
)

func coerceString(value Value) (string, error) {
	switch value.Kind() {
	case KindString:
		return value.str, nil
	case KindNumber:
		return value.num.String(), nil
	case KindBool:
		return strconv.FormatBool(value.b), nil
	default:
		return "", wrongType("string", value)
	}
}

func coerceBool(value Value) (bool, error) {
	switch value.Kind() {
	case KindBool:
		return value.b, nil
	case KindString:
		switch value.str {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}

	return false, wrongType("boolean", value)
}

// numberOf returns the number held by value, accepting numeric strings.
func numberOf(want string, value Value) (Number, error) {
	switch value.Kind() {
	case KindNumber:
		return value.num, nil
	case KindString:
		if n, ok := parseNumber(value.str); ok {
			return n, nil
		}
	}

	return Number{}, wrongType(want, value)
}

func coerceInt32(value Value) (int32, error) {
	n, err := numberOf("32-bit integer", value)
	if err != nil {
		return 0, err
	}

	i, ok := n.Int64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("%w: expected 32-bit integer, got out of range number %s", ErrWrongType, n)
	}

	return int32(i), nil
}

func coerceInt64(value Value) (int64, error) {
	n, err := numberOf("64-bit integer", value)
	if err != nil {
		return 0, err
	}

	i, ok := n.Int64()
	if !ok {
		return 0, fmt.Errorf("%w: expected 64-bit integer, got out of range number %s", ErrWrongType, n)
	}

	return i, nil
}

func coerceFloat64(value Value) (float64, error) {
	n, err := numberOf("floating point number", value)
	if err != nil {
		return 0, err
	}

	return n.Float64(), nil
}

func coerceTree(value Value) (*Tree, error) {
	tree, ok := value.AsTree()
	if !ok {
		return nil, wrongType("tree", value)
	}

	return tree, nil
}
