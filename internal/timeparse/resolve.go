package timeparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is the single failure signal for time strings: every
// lexical and semantic parse failure wraps it. Callers match it with
// errors.Is and cannot (deliberately) tell bad digits from a bad calendar
// date from a pre-epoch instant.
var ErrInvalidFormat = errors.New("invalid time format")

// Parse resolves a raw time string to an absolute instant. It is the
// classify-then-resolve entry point for callers that do not care about the
// intermediate notation. The string is used verbatim, with no trimming.
func Parse(s string) (time.Time, error) {
	return Classify(s).Resolve()
}

// Resolve parses the tagged string into a UTC instant at nanosecond
// precision. Instants before the Unix epoch are rejected, not represented
// as negative timestamps. Resolution is pure: the same Format always yields
// the same instant or the same error.
func (f Format) Resolve() (time.Time, error) {
	switch f.kind {
	case KindUnixTimestamp:
		return resolveUnixTimestamp(f.raw)
	case KindRFC3339:
		return resolveRFC3339(f.raw)
	case KindDateOnly:
		return resolveDateOnly(f.raw)
	default:
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormat, f.raw)
	}
}

// resolveUnixTimestamp parses a digit string as an epoch offset. The unit is
// chosen by digit count, never by magnitude: up to 10 digits are seconds,
// 11 to 13 digits are milliseconds.
func resolveUnixTimestamp(s string) (time.Time, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}

	var sec, nsec int64
	if len(s) <= 10 {
		sec = v
	} else {
		sec = v / 1000
		nsec = (v % 1000) * int64(time.Millisecond)
	}

	return epochInstant(time.Unix(sec, nsec))
}

func resolveRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil || !validZoneOffset(s) {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}
	return epochInstant(t)
}

// validZoneOffset bounds-checks the trailing zone designator against the
// text itself. time.Parse's generic path accepts and normalizes offsets
// like +24:00 or +08:60 instead of failing, and a normalized offset such
// as +08:60 lands back in range, so the parsed zone cannot be trusted.
func validZoneOffset(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	if len(s) < 6 {
		return false
	}

	off := s[len(s)-6:]
	if (off[0] != '+' && off[0] != '-') || off[3] != ':' {
		return false
	}
	hour, err := strconv.Atoi(off[1:3])
	if err != nil {
		return false
	}
	minute, err := strconv.Atoi(off[4:6])
	if err != nil {
		return false
	}
	return hour <= 23 && minute <= 59
}

// resolveDateOnly parses YYYY-M-D (any digit counts per group) as midnight
// UTC. It re-checks the three-group shape rather than trusting the
// classifier's tag.
func resolveDateOnly(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}

	// time.Date normalizes out-of-range components (2026-02-30 becomes
	// March 2nd), so a calendar-invalid input comes back as a different
	// date than was asked for.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}

	return epochInstant(t)
}

// epochInstant is the shared guard every branch funnels through: instants
// before 1970-01-01T00:00:00Z are invalid input, not negative timestamps.
func epochInstant(t time.Time) (time.Time, error) {
	if t.Unix() < 0 {
		return time.Time{}, fmt.Errorf("%w: before the Unix epoch", ErrInvalidFormat)
	}
	return t.UTC(), nil
}
