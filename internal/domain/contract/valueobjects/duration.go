package valueobjects

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Duration units accepted from clients.
const (
	UnitDays   = "days"
	UnitMonths = "months"
	UnitYears  = "years"
)

var (
	ErrDurationEmpty       = errors.New("duration must be positive")
	ErrDurationNegative    = errors.New("duration components cannot be negative")
	ErrDurationUnitInvalid = errors.New("duration unit must be one of days, months, years")
	ErrDurationMalformed   = errors.New("malformed duration")
)

// Duration is a calendar period of years, months and days. Components are
// kept as entered: 18 months is not folded into 1 year 6 months.
type Duration struct {
	years  int
	months int
	days   int
}

func NewDuration(years, months, days int) (Duration, error) {
	if years < 0 || months < 0 || days < 0 {
		return Duration{}, ErrDurationNegative
	}
	d := Duration{years: years, months: months, days: days}
	if d.IsZero() {
		return Duration{}, ErrDurationEmpty
	}
	return d, nil
}

// FromValueUnit builds a single-component duration. An empty unit means days.
func FromValueUnit(value int, unit string) (Duration, error) {
	if value <= 0 {
		return Duration{}, ErrDurationEmpty
	}
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case UnitDays, "":
		return NewDuration(0, 0, value)
	case UnitMonths:
		return NewDuration(0, value, 0)
	case UnitYears:
		return NewDuration(value, 0, 0)
	default:
		return Duration{}, ErrDurationUnitInvalid
	}
}

// ParseDuration reads the canonical form produced by String. It also accepts
// singular and abbreviated units (year, mon, mons, month, day, week, weeks) and
// a trailing zero clock part such as "00:00:00", so values written in older
// interval notation stay readable. Weeks are folded into days.
func ParseDuration(s string) (Duration, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Duration{}, ErrDurationEmpty
	}

	var years, months, days int
	for i := 0; i < len(fields); i++ {
		if strings.Contains(fields[i], ":") {
			if !isZeroClock(fields[i]) {
				return Duration{}, fmt.Errorf("%w: time of day %q not supported", ErrDurationMalformed, fields[i])
			}
			continue
		}
		if i+1 >= len(fields) {
			return Duration{}, fmt.Errorf("%w: %q has no unit", ErrDurationMalformed, fields[i])
		}

		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q is not a number", ErrDurationMalformed, fields[i])
		}
		i++

		switch fields[i] {
		case "year", "years":
			years += n
		case "mon", "mons", "month", "months":
			months += n
		case "week", "weeks":
			days += n * 7
		case "day", "days":
			days += n
		default:
			return Duration{}, fmt.Errorf("%w: unknown unit %q", ErrDurationMalformed, fields[i])
		}
	}

	return NewDuration(years, months, days)
}

func isZeroClock(s string) bool {
	return strings.Trim(s, "0:.") == ""
}

func (d Duration) Years() int {
	return d.years
}

func (d Duration) Months() int {
	return d.months
}

func (d Duration) Days() int {
	return d.days
}

func (d Duration) IsZero() bool {
	return d.years == 0 && d.months == 0 && d.days == 0
}

// String returns the canonical storage form, e.g. "1 years 2 days".
func (d Duration) String() string {
	parts := make([]string, 0, 3)
	if d.years != 0 {
		parts = append(parts, strconv.Itoa(d.years)+" "+UnitYears)
	}
	if d.months != 0 {
		parts = append(parts, strconv.Itoa(d.months)+" "+UnitMonths)
	}
	if d.days != 0 {
		parts = append(parts, strconv.Itoa(d.days)+" "+UnitDays)
	}
	return strings.Join(parts, " ")
}

// Primary returns the value and unit used to prefill an edit form:
// days if present, then months, then years.
func (d Duration) Primary() (int, string) {
	switch {
	case d.days != 0:
		return d.days, UnitDays
	case d.months != 0:
		return d.months, UnitMonths
	default:
		return d.years, UnitYears
	}
}
