package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	units "github.com/docker/go-units"
)

// ByteSize is a memory size in bytes.
type ByteSize int64

// Common sizes. Memory sizes use the binary convention.
const (
	Byte     ByteSize = 1
	Kibibyte          = 1024 * Byte
	Mebibyte          = 1024 * Kibibyte
	Gibibyte          = 1024 * Mebibyte
	Tebibyte          = 1024 * Gibibyte
)

// Bytes returns the size as an int64 byte count.
func (b ByteSize) Bytes() int64 {
	return int64(b)
}

// String renders the size with a binary unit, e.g. "256MiB".
func (b ByteSize) String() string {
	return units.BytesSize(float64(b))
}

// MemorySize reads a memory size.
//
// Strings are a number with an optional unit: "512", "64k", "256M", "1.5 GiB".
// Units K, M, G, T and P are powers of 1024 whether written as "M", "MB" or
// "MiB", so "256M" is 268435456 bytes. Bare numbers are bytes. Unknown
// suffixes, negative sizes, sizes beyond int64 and fractional byte counts
// fail with ErrParse.
//
//nolint:gochecknoglobals // shared stateless accessor.
var MemorySize Accessor[ByteSize] = scalar(coerceMemorySize)

func coerceMemorySize(value Value) (ByteSize, error) {
	switch value.Kind() {
	case KindNumber:
		n, ok := value.num.Int64()
		if !ok || n < 0 {
			return 0, fmt.Errorf("%w: expected non-negative whole number of bytes, got %s", ErrWrongType, value.num)
		}

		return ByteSize(n), nil
	case KindString:
		return ParseByteSize(value.str)
	default:
		return 0, wrongType("memory size", value)
	}
}

//nolint:gochecknoglobals // read-only unit table.
var byteUnits = map[byte]float64{
	'k': float64(Kibibyte),
	'm': float64(Mebibyte),
	'g': float64(Gibibyte),
	't': float64(Tebibyte),
	'p': float64(1024 * Tebibyte),
}

// ParseByteSize parses the textual forms accepted by the MemorySize accessor.
// Sizes that do not fit in an int64 and fractional byte counts fail with ErrParse.
func ParseByteSize(s string) (ByteSize, error) {
	trimmed := strings.TrimSpace(s)

	size, err := units.RAMInBytes(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid memory size %q: %w", ErrParse, s, err)
	}

	bytes, multiplier := byteMagnitude(trimmed)

	switch {
	case bytes*multiplier >= math.MaxInt64 || size < 0:
		return 0, fmt.Errorf("%w: invalid memory size %q: out of range", ErrParse, s)
	case multiplier == 1 && bytes != math.Trunc(bytes):
		return 0, fmt.Errorf("%w: invalid memory size %q: fractional byte count", ErrParse, s)
	}

	return ByteSize(size), nil
}

// byteMagnitude splits an already validated size the way units.RAMInBytes
// does and returns the number with its unit multiplier.
func byteMagnitude(s string) (float64, float64) {
	sep := strings.LastIndexAny(s, "0123456789. ")

	number, suffix := strings.TrimSpace(s[:sep+1]), strings.ToLower(s[sep+1:])

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, 1
	}

	if suffix == "" {
		return value, 1
	}

	multiplier, ok := byteUnits[suffix[0]]
	if !ok {
		return value, 1
	}

	return value, multiplier
}
