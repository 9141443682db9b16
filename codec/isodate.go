// Package codec converts between wire and domain representations of dates.
package codec

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ISOLayout is the canonical textual form of a native date value: UTC with
// millisecond precision, e.g. 2025-01-01T00:00:00.000Z.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrNotDate is returned when a value is neither text nor a native date.
	ErrNotDate = errors.New("codec: expected date string or time.Time")
	// ErrInvalidDate is returned when text does not parse as an ISO-8601 date.
	ErrInvalidDate = errors.New("codec: invalid ISO-8601 date")
)

// accepted textual layouts, most specific first
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseISO parses an ISO-8601 date or timestamp. Values without a zone are
// read as UTC.
func ParseISO(s string) (time.Time, error) {
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatISO renders t in the canonical layout.
func FormatISO(t time.Time) string { return t.UTC().Format(ISOLayout) }

// ISODate unifies "string or native date" input into ISO text.
type ISODate struct{}

// Coerce returns the canonical text for v. Text that parses is returned as-is
// (no reformatting); time.Time values are serialized with FormatISO.
func (ISODate) Coerce(v any) (string, error) {
	switch t := v.(type) {
	case string:
		if _, err := ParseISO(t); err != nil {
			return "", err
		}
		return t, nil
	case time.Time:
		return FormatISO(t), nil
	case *time.Time:
		if t == nil {
			return "", ErrNotDate
		}
		return FormatISO(*t), nil
	default:
		return "", ErrNotDate
	}
}

// Decode converts wire text into a time.Time.
func (ISODate) Decode(ctx context.Context, s string) (time.Time, error) { return ParseISO(s) }

// Encode converts a time.Time into canonical wire text.
func (ISODate) Encode(ctx context.Context, t time.Time) (string, error) {
	return FormatISO(t), nil
}
