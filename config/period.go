package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DatePeriod is a calendar amount of time in years, months and days.
type DatePeriod struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether all components are zero.
func (p DatePeriod) IsZero() bool {
	return p == DatePeriod{}
}

// AddTo returns t shifted by the period using calendar arithmetic.
func (p DatePeriod) AddTo(t time.Time) time.Time {
	return t.AddDate(p.Years, p.Months, p.Days)
}

// String renders the period in ISO-8601 form, e.g. "P1Y2M3D". The zero period is "P0D".
func (p DatePeriod) String() string {
	if p.IsZero() {
		return "P0D"
	}

	var b strings.Builder

	b.WriteString("P")

	if p.Years != 0 {
		b.WriteString(strconv.Itoa(p.Years) + "Y")
	}

	if p.Months != 0 {
		b.WriteString(strconv.Itoa(p.Months) + "M")
	}

	if p.Days != 0 {
		b.WriteString(strconv.Itoa(p.Days) + "D")
	}

	return b.String()
}

// Period reads a calendar period.
//
// Accepted forms are ISO-8601 ("P1Y2M", "P2W", "-P3D"), a whole number
// followed by a unit ("3 days", "2w", "6 mo", "1y"; "m" means months), and a
// bare whole number of days.
//
//nolint:gochecknoglobals // shared stateless accessor.
var Period Accessor[DatePeriod] = scalar(coercePeriod)

//nolint:gochecknoglobals // compiled once.
var isoPeriod = regexp.MustCompile(`^(?i)([-+]?)P(?:([-+]?\d+)Y)?(?:([-+]?\d+)M)?(?:([-+]?\d+)W)?(?:([-+]?\d+)D)?$`)

type periodUnit int

const (
	periodDays periodUnit = iota
	periodWeeks
	periodMonths
	periodYears
)

//nolint:gochecknoglobals // read-only unit table.
var periodUnits = map[string]periodUnit{
	"d": periodDays, "day": periodDays, "days": periodDays,
	"w": periodWeeks, "week": periodWeeks, "weeks": periodWeeks,
	"m": periodMonths, "mo": periodMonths, "month": periodMonths, "months": periodMonths,
	"y": periodYears, "year": periodYears, "years": periodYears,
}

func coercePeriod(value Value) (DatePeriod, error) {
	switch value.Kind() {
	case KindNumber:
		days, ok := value.num.Int64()
		if !ok || days != int64(int(days)) {
			return DatePeriod{}, fmt.Errorf("%w: expected whole number of days, got %s", ErrWrongType, value.num)
		}

		return DatePeriod{Days: int(days)}, nil
	case KindString:
		return ParsePeriod(value.str)
	default:
		return DatePeriod{}, wrongType("period", value)
	}
}

// ParsePeriod parses the textual forms accepted by the Period accessor.
func ParsePeriod(s string) (DatePeriod, error) {
	trimmed := strings.TrimSpace(s)

	if strings.HasPrefix(strings.ToUpper(strings.TrimLeft(trimmed, "+-")), "P") {
		if period, ok := parseISOPeriod(trimmed); ok {
			return period, nil
		}

		return DatePeriod{}, fmt.Errorf("%w: invalid period %q", ErrParse, s)
	}

	number, unit := splitUnit(trimmed)
	if number == "" {
		return DatePeriod{}, fmt.Errorf("%w: invalid period %q: missing number", ErrParse, s)
	}

	amount, err := strconv.Atoi(number)
	if err != nil {
		return DatePeriod{}, fmt.Errorf("%w: invalid period %q: malformed whole number %q", ErrParse, s, number)
	}

	kind := periodDays

	if unit != "" {
		var ok bool

		kind, ok = periodUnits[unit]
		if !ok {
			return DatePeriod{}, fmt.Errorf("%w: invalid period %q: unknown unit %q", ErrParse, s, unit)
		}
	}

	switch kind {
	case periodWeeks:
		days, ok := weeksToDays(amount, 0)
		if !ok {
			return DatePeriod{}, fmt.Errorf("%w: invalid period %q: out of range", ErrParse, s)
		}

		return DatePeriod{Days: days}, nil
	case periodMonths:
		return DatePeriod{Months: amount}, nil
	case periodYears:
		return DatePeriod{Years: amount}, nil
	default:
		return DatePeriod{Days: amount}, nil
	}
}

func parseISOPeriod(s string) (DatePeriod, bool) {
	match := isoPeriod.FindStringSubmatch(s)
	if match == nil || (match[2] == "" && match[3] == "" && match[4] == "" && match[5] == "") {
		return DatePeriod{}, false
	}

	component := func(group string) (int, bool) {
		if group == "" {
			return 0, true
		}

		n, err := strconv.Atoi(group)

		return n, err == nil
	}

	years, okY := component(match[2])
	months, okM := component(match[3])
	weeks, okW := component(match[4])
	days, okD := component(match[5])

	if !okY || !okM || !okW || !okD {
		return DatePeriod{}, false
	}

	totalDays, ok := weeksToDays(weeks, days)
	if !ok {
		return DatePeriod{}, false
	}

	period := DatePeriod{Years: years, Months: months, Days: totalDays}

	if match[1] == "-" {
		if years == math.MinInt || months == math.MinInt || totalDays == math.MinInt {
			return DatePeriod{}, false
		}

		period = DatePeriod{Years: -period.Years, Months: -period.Months, Days: -period.Days}
	}

	return period, true
}

// weeksToDays returns weeks*7 + days, reporting false on int overflow.
func weeksToDays(weeks, days int) (int, bool) {
	if weeks > math.MaxInt/7 || weeks < math.MinInt/7 {
		return 0, false
	}

	fromWeeks := weeks * 7

	if (days > 0 && fromWeeks > math.MaxInt-days) || (days < 0 && fromWeeks < math.MinInt-days) {
		return 0, false
	}

	return fromWeeks + days, true
}
