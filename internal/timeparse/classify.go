// Package timeparse classifies and resolves user-supplied time strings.
package timeparse

import "regexp"

// Kind identifies the notation a time string was written in.
type Kind int

const (
	// KindInvalid marks a string matching no supported notation.
	KindInvalid Kind = iota
	// KindUnixTimestamp is a string of 10-13 ASCII digits. Up to 10 digits
	// are seconds since the Unix epoch, 11 to 13 digits are milliseconds.
	KindUnixTimestamp
	// KindRFC3339 is an RFC 3339 date-time with a mandatory zone designator.
	KindRFC3339
	// KindDateOnly is three dash-separated numeric groups, read as midnight UTC.
	KindDateOnly
)

// String returns the notation name for error messages and tests.
func (k Kind) String() string {
	switch k {
	case KindUnixTimestamp:
		return "unix timestamp"
	case KindRFC3339:
		return "RFC 3339"
	case KindDateOnly:
		return "date only"
	default:
		return "invalid"
	}
}

var (
	unixTimestampRe = regexp.MustCompile(`^\d{10,13}$`)
	rfc3339Re       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)
	dateOnlyRe      = regexp.MustCompile(`^\d+-\d+-\d+$`)
)

// Format is a raw time string tagged with the notation its shape matched.
// The zero value is an invalid (empty) input; use Classify to build one.
type Format struct {
	kind Kind
	raw  string
}

// Classify tags s with the first notation whose shape it matches. It checks
// lexical shape only: "2026-13-01T12:00:00Z" classifies as RFC 3339 even
// though month 13 is later rejected by Resolve. Digit-only strings shorter
// than 10 or longer than 13 characters match no rule and come back invalid.
func Classify(s string) Format {
	switch {
	case unixTimestampRe.MatchString(s):
		return Format{kind: KindUnixTimestamp, raw: s}
	case rfc3339Re.MatchString(s):
		return Format{kind: KindRFC3339, raw: s}
	case dateOnlyRe.MatchString(s):
		return Format{kind: KindDateOnly, raw: s}
	default:
		return Format{kind: KindInvalid, raw: s}
	}
}

// Kind returns the notation tag.
func (f Format) Kind() Kind {
	return f.kind
}
