package dsl

import (
	"context"
	"fmt"
	"slices"

	"github.com/reoring/finskema"
	"github.com/reoring/finskema/i18n"
	js "github.com/reoring/finskema/jsonschema"
)

type kind uint8

const (
	kindString kind = iota + 1
	kindNumber
	kindInt
	kindBool
	kindEnum
	kindDate
	kindArray
	kindObject
)

func (k kind) String() string {
	switch k {
	case kindString, kindEnum:
		return "string"
	case kindNumber:
		return "number"
	case kindInt:
		return "integer"
	case kindBool:
		return "boolean"
	case kindDate:
		return "date"
	case kindArray:
		return "array"
	case kindObject:
		return "object"
	}
	return "unknown"
}

// check inspects a coerced value and returns a failing issue (path "/"), or nil.
type check func(v any) *finskema.Issue

// AnyAdapter is the value rule of one field: a primitive type check with its
// canonical coercion, zero or more range/format checks, and transforms that
// run only once every check passed.
//
// Adapters are values; every decorator returns a modified copy, so a shared
// base adapter can be specialised per field without aliasing.
type AnyAdapter struct {
	kind       kind
	coerce     func(context.Context, any) (any, error)
	checks     []check
	transforms []func(any) any
	schema     func() *js.Schema
	decorate   []func(*js.Schema)
	nested     *ObjectSchema

	nullable      bool
	emptyAsAbsent bool

	// defects are contract-definition errors surfaced by Object().Build().
	defects []error

	// bookkeeping for bound self-checks
	lower, upper *float64
}

func (ad AnyAdapter) with(fn func(*AnyAdapter)) AnyAdapter {
	out := ad
	out.checks = slices.Clone(ad.checks)
	out.transforms = slices.Clone(ad.transforms)
	out.decorate = slices.Clone(ad.decorate)
	out.defects = slices.Clone(ad.defects)
	fn(&out)
	return out
}

func (ad AnyAdapter) withCheck(c check, d func(*js.Schema)) AnyAdapter {
	return ad.with(func(o *AnyAdapter) {
		o.checks = append(o.checks, c)
		if d != nil {
			o.decorate = append(o.decorate, d)
		}
	})
}

func (ad AnyAdapter) withDefect(format string, args ...any) AnyAdapter {
	return ad.with(func(o *AnyAdapter) { o.defects = append(o.defects, fmt.Errorf(format, args...)) })
}

// parse runs the full field pipeline on a present value.
func (ad AnyAdapter) parse(ctx context.Context, v any) (any, error) {
	cv, _, err := ad.parseMeta(ctx, v)
	return cv, err
}

// parseMeta is parse plus, for nested objects, the presence map of the
// nested value relative to the field.
func (ad AnyAdapter) parseMeta(ctx context.Context, v any) (any, finskema.PresenceMap, error) {
	if v == nil && ad.nullable {
		return nil, nil, nil
	}
	var (
		cv  any
		pm  finskema.PresenceMap
		err error
	)
	switch {
	case ad.nested != nil:
		cv, pm, err = ad.nested.parse(ctx, v)
	case ad.coerce != nil:
		cv, err = ad.coerce(ctx, v)
	default:
		return nil, nil, finskema.Issues{{Path: "/", Code: finskema.CodeParseError, Message: i18n.T(finskema.CodeParseError, nil), Hint: "adapter has no primitive"}}
	}
	if err != nil {
		return nil, nil, err
	}
	var iss finskema.Issues
	for _, c := range ad.checks {
		if it := c(cv); it != nil {
			iss = finskema.AppendIssues(iss, *it)
		}
	}
	if len(iss) > 0 {
		return nil, nil, iss
	}
	for _, t := range ad.transforms {
		cv = t(cv)
	}
	return cv, pm, nil
}

// Parse validates a standalone value against the adapter.
func (ad AnyAdapter) Parse(ctx context.Context, v any) (any, error) { return ad.parse(ctx, v) }

// JSONSchema projects the adapter.
func (ad AnyAdapter) JSONSchema() *js.Schema {
	s := &js.Schema{}
	if ad.schema != nil {
		s = ad.schema()
	}
	for _, d := range ad.decorate {
		d(s)
	}
	if ad.nullable {
		if t, ok := s.Type.(string); ok && t != "" {
			s.Type = []string{t, "null"}
		}
	}
	return s
}

// Nullable accepts JSON null and keeps it as nil in the canonical value.
func (ad AnyAdapter) Nullable() AnyAdapter {
	return ad.with(func(o *AnyAdapter) { o.nullable = true })
}

// EmptyAsAbsent treats "" as if the field had not been supplied at all.
func (ad AnyAdapter) EmptyAsAbsent() AnyAdapter {
	return ad.with(func(o *AnyAdapter) { o.emptyAsAbsent = true })
}

// Transform appends a pure function applied after every check passed.
func (ad AnyAdapter) Transform(fn func(any) any) AnyAdapter {
	if fn == nil {
		return ad
	}
	return ad.with(func(o *AnyAdapter) { o.transforms = append(o.transforms, fn) })
}

// Describe sets the JSON Schema description.
func (ad AnyAdapter) Describe(text string) AnyAdapter {
	return ad.with(func(o *AnyAdapter) {
		o.decorate = append(o.decorate, func(s *js.Schema) { s.Description = text })
	})
}

// Kind reports the primitive kind ("string", "number", ...).
func (ad AnyAdapter) Kind() string { return ad.kind.String() }

// IsNullable reports whether null is accepted.
func (ad AnyAdapter) IsNullable() bool { return ad.nullable }

// IsEmptyAsAbsent reports whether "" collapses to absent.
func (ad AnyAdapter) IsEmptyAsAbsent() bool { return ad.emptyAsAbsent }

func invalidType(expected kind) finskema.Issues {
	data := map[string]string{"expected": expected.String(), "variant": "expected"}
	return finskema.Issues{{
		Path:    "/",
		Code:    finskema.CodeInvalidType,
		Message: i18n.T(finskema.CodeInvalidType, data),
		Params:  map[string]any{"expected": expected.String()},
	}}
}
