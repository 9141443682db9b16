package dsl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/reoring/finskema"
	"github.com/reoring/finskema/codec"
	"github.com/reoring/finskema/i18n"
	js "github.com/reoring/finskema/jsonschema"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// String accepts text values.
func String() AnyAdapter {
	return AnyAdapter{
		kind: kindString,
		coerce: func(_ context.Context, v any) (any, error) {
			s, ok := asString(v)
			if !ok {
				return nil, invalidType(kindString)
			}
			return s, nil
		},
		schema: func() *js.Schema { return &js.Schema{Type: "string"} },
	}
}

// Bool accepts true/false.
func Bool() AnyAdapter {
	return AnyAdapter{
		kind: kindBool,
		coerce: func(_ context.Context, v any) (any, error) {
			b, ok := v.(bool)
			if !ok {
				return nil, invalidType(kindBool)
			}
			return b, nil
		},
		schema: func() *js.Schema { return &js.Schema{Type: "boolean"} },
	}
}

// Number accepts Go numeric kinds, json.Number and decimal.Decimal. The
// canonical value is a decimal.Decimal so bounds compare exactly.
func Number() AnyAdapter {
	return AnyAdapter{
		kind: kindNumber,
		coerce: func(_ context.Context, v any) (any, error) {
			d, ok := finskema.ToDecimal(v)
			if !ok {
				return nil, invalidType(kindNumber)
			}
			return d, nil
		},
		schema: func() *js.Schema { return &js.Schema{Type: "number"} },
	}
}

// Int accepts integral numbers and yields int64.
func Int() AnyAdapter {
	return AnyAdapter{
		kind: kindInt,
		coerce: func(_ context.Context, v any) (any, error) {
			n, ok := toInt64(v)
			if !ok {
				return nil, invalidType(kindInt)
			}
			return n, nil
		},
		schema: func() *js.Schema { return &js.Schema{Type: "integer"} },
	}
}

// asString accepts string and named string types (typed enum constants).
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return toInt64(float64(n))
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return toInt64(f)
		}
	case decimal.Decimal:
		if n.IsInteger() {
			return n.IntPart(), true
		}
	}
	return 0, false
}

// Enum accepts exactly one of values. No case folding, no prefixes.
func Enum[T ~string](values ...T) AnyAdapter {
	members := make([]string, 0, len(values))
	set := make(map[string]struct{}, len(values))
	var dup []string
	for _, v := range values {
		s := string(v)
		if _, ok := set[s]; ok {
			dup = append(dup, s)
			continue
		}
		set[s] = struct{}{}
		members = append(members, s)
	}
	listed := strings.Join(members, ", ")
	ad := AnyAdapter{
		kind: kindEnum,
		coerce: func(_ context.Context, v any) (any, error) {
			s, ok := asString(v)
			if !ok {
				return nil, invalidType(kindEnum)
			}
			return s, nil
		},
		schema: func() *js.Schema {
			enum := make([]any, len(members))
			for i, m := range members {
				enum[i] = m
			}
			return &js.Schema{Type: "string", Enum: enum}
		},
	}
	ad.checks = []check{func(v any) *finskema.Issue {
		if _, ok := set[v.(string)]; ok {
			return nil
		}
		return &finskema.Issue{
			Path:    "/",
			Code:    finskema.CodeInvalidEnum,
			Message: i18n.T(finskema.CodeInvalidEnum, map[string]string{"values": listed}),
			Params:  map[string]any{"values": append([]string(nil), members...), "got": v},
		}
	}}
	if len(members) == 0 {
		ad = ad.withDefect("enum has no members")
	}
	if len(dup) > 0 {
		ad = ad.withDefect("enum has duplicate members %v", dup)
	}
	return ad
}

// UUID accepts the canonical 8-4-4-4-12 text form only.
func UUID() AnyAdapter {
	return String().withCheck(func(v any) *finskema.Issue {
		s := v.(string)
		if len(s) == 36 {
			if _, err := uuid.Parse(s); err == nil {
				return nil
			}
		}
		return formatIssue("uuid")
	}, func(s *js.Schema) { s.Format = "uuid" })
}

// HexColor accepts "#" followed by six hex digits, either case.
func HexColor() AnyAdapter { return String().Pattern(hexColorRe, "hex color") }

// Date accepts ISO-8601 text or a time.Time and yields ISO text. Text is kept
// exactly as supplied.
func Date() AnyAdapter {
	var c codec.ISODate
	return AnyAdapter{
		kind: kindDate,
		coerce: func(_ context.Context, v any) (any, error) {
			s, err := c.Coerce(v)
			if err != nil {
				if errors.Is(err, codec.ErrInvalidDate) {
					it := formatIssue("date")
					it.Cause = err
					return nil, finskema.Issues{*it}
				}
				return nil, invalidType(kindDate)
			}
			return s, nil
		},
		schema: func() *js.Schema { return &js.Schema{Type: "string", Format: "date-time"} },
	}
}

func formatIssue(name string) *finskema.Issue {
	return &finskema.Issue{
		Path:    "/",
		Code:    finskema.CodeInvalidFormat,
		Message: i18n.T(finskema.CodeInvalidFormat, map[string]string{"format": name, "variant": "named"}),
		Hint:    name,
		Params:  map[string]any{"format": name},
	}
}

// Pattern requires text to match re. name appears in messages and JSON Schema.
func (ad AnyAdapter) Pattern(re *regexp.Regexp, name string) AnyAdapter {
	if ad.kind != kindString {
		return ad.withDefect("pattern on %s field", ad.kind)
	}
	if re == nil {
		return ad.withDefect("nil pattern")
	}
	return ad.withCheck(func(v any) *finskema.Issue {
		if re.MatchString(v.(string)) {
			return nil
		}
		return &finskema.Issue{
			Path:    "/",
			Code:    finskema.CodePattern,
			Message: i18n.T(finskema.CodePattern, map[string]string{"format": name, "variant": "named"}),
			Hint:    name,
			Params:  map[string]any{"pattern": re.String()},
		}
	}, func(s *js.Schema) { s.Pattern = re.String() })
}

// Min sets an inclusive lower bound: length for strings, item count for
// arrays, value for numbers.
func (ad AnyAdapter) Min(n float64) AnyAdapter {
	out := ad.bound(&n, nil)
	switch ad.kind {
	case kindString:
		return out.withCheck(func(v any) *finskema.Issue {
			if float64(utf8.RuneCountInString(v.(string))) >= n {
				return nil
			}
			return sizeIssue(finskema.CodeTooShort, "min", n, "")
		}, func(s *js.Schema) { s.MinLength = js.Ptr(int(n)) })
	case kindArray:
		return out.withCheck(func(v any) *finskema.Issue {
			if float64(len(v.([]any))) >= n {
				return nil
			}
			return sizeIssue(finskema.CodeTooShort, "min", n, "items")
		}, nil)
	case kindNumber, kindInt:
		bound := decimal.NewFromFloat(n)
		return out.withCheck(func(v any) *finskema.Issue {
			d, _ := finskema.ToDecimal(v)
			if d.GreaterThanOrEqual(bound) {
				return nil
			}
			return sizeIssue(finskema.CodeTooSmall, "min", n, "")
		}, func(s *js.Schema) { s.Minimum = js.Ptr(n) })
	}
	return ad.withDefect("min on %s field", ad.kind)
}

// Max sets an inclusive upper bound: length for strings, item count for
// arrays, value for numbers.
func (ad AnyAdapter) Max(n float64) AnyAdapter {
	out := ad.bound(nil, &n)
	switch ad.kind {
	case kindString:
		return out.withCheck(func(v any) *finskema.Issue {
			if float64(utf8.RuneCountInString(v.(string))) <= n {
				return nil
			}
			return sizeIssue(finskema.CodeTooLong, "max", n, "")
		}, func(s *js.Schema) { s.MaxLength = js.Ptr(int(n)) })
	case kindArray:
		return out.withCheck(func(v any) *finskema.Issue {
			if float64(len(v.([]any))) <= n {
				return nil
			}
			return sizeIssue(finskema.CodeTooLong, "max", n, "items")
		}, func(s *js.Schema) { s.MaxItems = js.Ptr(int(n)) })
	case kindNumber, kindInt:
		bound := decimal.NewFromFloat(n)
		return out.withCheck(func(v any) *finskema.Issue {
			d, _ := finskema.ToDecimal(v)
			if d.LessThanOrEqual(bound) {
				return nil
			}
			return sizeIssue(finskema.CodeTooBig, "max", n, "")
		}, func(s *js.Schema) { s.Maximum = js.Ptr(n) })
	}
	return ad.withDefect("max on %s field", ad.kind)
}

// Gt sets an exclusive lower bound on a number.
func (ad AnyAdapter) Gt(n float64) AnyAdapter {
	if ad.kind != kindNumber && ad.kind != kindInt {
		return ad.withDefect("gt on %s field", ad.kind)
	}
	bound := decimal.NewFromFloat(n)
	return ad.bound(&n, nil).withCheck(func(v any) *finskema.Issue {
		d, _ := finskema.ToDecimal(v)
		if d.GreaterThan(bound) {
			return nil
		}
		return sizeIssue(finskema.CodeTooSmall, "min", n, "exclusive")
	}, func(s *js.Schema) { s.ExclusiveMinimum = js.Ptr(n) })
}

// Positive requires a number strictly greater than zero.
func (ad AnyAdapter) Positive() AnyAdapter { return ad.Gt(0) }

// NonNegative requires a number greater than or equal to zero.
func (ad AnyAdapter) NonNegative() AnyAdapter { return ad.Min(0) }

func (ad AnyAdapter) bound(lo, hi *float64) AnyAdapter {
	return ad.with(func(o *AnyAdapter) {
		if lo != nil && (o.lower == nil || *lo > *o.lower) {
			o.lower = lo
		}
		if hi != nil && (o.upper == nil || *hi < *o.upper) {
			o.upper = hi
		}
		if o.lower != nil && o.upper != nil && *o.lower > *o.upper {
			o.defects = append(o.defects, fmt.Errorf("lower bound %v exceeds upper bound %v", *o.lower, *o.upper))
		}
	})
}

func sizeIssue(code, key string, n float64, variant string) *finskema.Issue {
	txt := decimal.NewFromFloat(n).String()
	data := map[string]string{key: txt}
	if variant != "" {
		data["variant"] = variant
	}
	params := map[string]any{key: n, "inclusive": variant != "exclusive"}
	return &finskema.Issue{Path: "/", Code: code, Message: i18n.T(code, data), Params: params}
}
