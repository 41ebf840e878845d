package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Duration reads a time.Duration.
//
// Strings are a number followed by an optional unit, with optional
// whitespace in between: "10s", "1.5 h", "250 millis". Without a unit the
// number is milliseconds, and so is a bare numeric value.
//
//nolint:gochecknoglobals // shared stateless accessor.
var Duration Accessor[time.Duration] = scalar(coerceDuration)

//nolint:gochecknoglobals // read-only unit table.
var durationUnits = map[string]time.Duration{
	"ns": time.Nanosecond, "nano": time.Nanosecond, "nanos": time.Nanosecond,
	"nanosecond": time.Nanosecond, "nanoseconds": time.Nanosecond,

	"us": time.Microsecond, "µs": time.Microsecond, "micro": time.Microsecond, "micros": time.Microsecond,
	"microsecond": time.Microsecond, "microseconds": time.Microsecond,

	"ms": time.Millisecond, "milli": time.Millisecond, "millis": time.Millisecond,
	"millisecond": time.Millisecond, "milliseconds": time.Millisecond,

	"s": time.Second, "second": time.Second, "seconds": time.Second,

	"m": time.Minute, "minute": time.Minute, "minutes": time.Minute,

	"h": time.Hour, "hour": time.Hour, "hours": time.Hour,

	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
}

func coerceDuration(value Value) (time.Duration, error) {
	switch value.Kind() {
	case KindNumber:
		d, ok := scaleDuration(value.num, time.Millisecond)
		if !ok {
			return 0, fmt.Errorf("%w: expected duration, got out of range number %s", ErrWrongType, value.num)
		}

		return d, nil
	case KindString:
		return parseDuration(value.str)
	default:
		return 0, wrongType("duration", value)
	}
}

func parseDuration(s string) (time.Duration, error) {
	number, unit := splitUnit(s)
	if number == "" {
		return 0, fmt.Errorf("%w: invalid duration %q: missing number", ErrParse, s)
	}

	multiplier := time.Millisecond

	if unit != "" {
		var ok bool

		multiplier, ok = durationUnits[unit]
		if !ok {
			return 0, fmt.Errorf("%w: invalid duration %q: unknown unit %q", ErrParse, s, unit)
		}
	}

	n, ok := parseNumber(number)
	if !ok {
		return 0, fmt.Errorf("%w: invalid duration %q: malformed number %q", ErrParse, s, number)
	}

	d, ok := scaleDuration(n, multiplier)
	if !ok {
		return 0, fmt.Errorf("%w: invalid duration %q: out of range", ErrParse, s)
	}

	return d, nil
}

// scaleDuration multiplies n by unit, reporting false on int64 overflow.
func scaleDuration(n Number, unit time.Duration) (time.Duration, bool) {
	if i, ok := n.Int64(); ok && n.IsInteger() {
		if i > math.MaxInt64/int64(unit) || i < math.MinInt64/int64(unit) {
			return 0, false
		}

		return time.Duration(i) * unit, true
	}

	scaled := n.Float64() * float64(unit)
	if scaled < math.MinInt64 || scaled >= math.MaxInt64 {
		return 0, false
	}

	return time.Duration(scaled), true
}

// splitUnit splits "10 s" into its number and unit parts. The unit starts
// at the first letter.
func splitUnit(s string) (string, string) {
	s = strings.TrimSpace(s)

	idx := strings.IndexFunc(s, unicode.IsLetter)
	if idx < 0 {
		return s, ""
	}

	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx:])
}

// FormatDuration renders d with the largest unit that divides it exactly,
// in the form Duration accepts ("90s", "2d", "1500us").
func FormatDuration(d time.Duration) string {
	units := []struct {
		suffix string
		size   time.Duration
	}{
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
		{"ms", time.Millisecond},
		{"us", time.Microsecond},
	}

	for _, unit := range units {
		if d != 0 && d%unit.size == 0 {
			return strconv.FormatInt(int64(d/unit.size), 10) + unit.suffix
		}
	}

	return strconv.FormatInt(int64(d), 10) + "ns"
}
