// Package rules provides reusable cross-field refinements for object
// contracts. Every rule reads the canonical record and passes when one of
// its operands is absent, so the same rule serves create and update.
package rules

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/reoring/finskema"
)

// Op defines simple comparison operators for If(...).Then(...) and Compare.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op Op) String() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	}
	return "?"
}

// NotBefore requires date field later to be on or after earlier.
// The violation is reported at later.
func NotBefore(name, later, earlier string) finskema.Refinement {
	return finskema.Refinement{
		Name:   name,
		Path:   finskema.FieldPath(later),
		Params: pair("not_before", later, earlier),
		Check: func(v finskema.Values) bool {
			l, okL := v.Time(later)
			e, okE := v.Time(earlier)
			return !okL || !okE || !l.Before(e)
		},
	}
}

// After requires date field later to be strictly after earlier.
func After(name, later, earlier string) finskema.Refinement {
	return finskema.Refinement{
		Name:   name,
		Path:   finskema.FieldPath(later),
		Params: pair("after", later, earlier),
		Check: func(v finskema.Values) bool {
			l, okL := v.Time(later)
			e, okE := v.Time(earlier)
			return !okL || !okE || l.After(e)
		},
	}
}

// Exclusive forbids supplying both a and b. The violation is reported at a.
func Exclusive(name, a, b string) finskema.Refinement {
	return finskema.Refinement{
		Name:   name,
		Path:   finskema.FieldPath(a),
		Params: pair("exclusive", a, b),
		Check:  func(v finskema.Values) bool { return !present(v, a) || !present(v, b) },
	}
}

// Differ requires a and b to hold different values when both are present.
func Differ(name, a, b string) finskema.Refinement {
	return finskema.Refinement{
		Name:   name,
		Path:   finskema.FieldPath(a),
		Params: pair("differ", a, b),
		Check: func(v finskema.Values) bool {
			if !present(v, a) || !present(v, b) {
				return true
			}
			return !compare(v[a], Eq, v[b])
		},
	}
}

// PositiveSum requires the numeric fields to add up to more than zero. It
// passes unless every field is present. The violation is reported at target.
func PositiveSum(name, target string, fields ...string) finskema.Refinement {
	return finskema.Refinement{
		Name:   name,
		Path:   finskema.FieldPath(target),
		Params: map[string]string{"variant": "positive_sum", "field": target, "fields": strings.Join(fields, " + ")},
		Check: func(v finskema.Values) bool {
			sum := decimal.Zero
			for _, f := range fields {
				d, ok := v.Decimal(f)
				if !ok {
					return true
				}
				sum = sum.Add(d)
			}
			return sum.IsPositive()
		},
	}
}

// Compare requires field <op> want. It passes when field is absent.
func Compare(name, field string, op Op, want any) finskema.Refinement {
	return finskema.Refinement{
		Name:   name,
		Path:   finskema.FieldPath(field),
		Params: map[string]string{"variant": "compare", "field": field, "op": op.String(), "want": display(want)},
		Check: func(v finskema.Values) bool {
			if !present(v, field) {
				return true
			}
			return compare(v[field], op, want)
		},
	}
}

// Condition is a predicate over the canonical record used to gate rules.
type Condition struct {
	field string
	op    Op
	want  any
	all   []Condition // composite AND
	any   []Condition // composite OR
}

// If builds a condition comparing a top-level field against want. An absent
// field never satisfies the condition.
func If(field string, op Op, want any) Condition {
	return Condition{field: strings.TrimPrefix(field, "/"), op: op, want: want}
}

// IfAll builds a condition that requires all conditions to hold.
func IfAll(conds ...Condition) Condition { return Condition{all: conds} }

// IfAny builds a condition that requires any condition to hold.
func IfAny(conds ...Condition) Condition { return Condition{any: conds} }

// And combines the receiver with additional conditions using logical AND.
func (c Condition) And(others ...Condition) Condition {
	return IfAll(append([]Condition{c}, others...)...)
}

// Or combines the receiver with additional conditions using logical OR.
func (c Condition) Or(others ...Condition) Condition {
	return IfAny(append([]Condition{c}, others...)...)
}

// Holds evaluates the condition against v.
func (c Condition) Holds(v finskema.Values) bool {
	if len(c.all) > 0 {
		for _, it := range c.all {
			if !it.Holds(v) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, it := range c.any {
			if it.Holds(v) {
				return true
			}
		}
		return false
	}
	if !present(v, c.field) {
		return false
	}
	return compare(v[c.field], c.op, c.want)
}

// Then gates r on the condition: r is checked only when c holds.
func (c Condition) Then(r finskema.Refinement) finskema.Refinement {
	inner := r.Check
	if inner == nil {
		return r
	}
	r.Check = func(v finskema.Values) bool { return !c.Holds(v) || inner(v) }
	return r
}

// ------- helpers -------

// pair is the message data of a rule relating field to other.
func pair(variant, field, other string) map[string]string {
	return map[string]string{"variant": variant, "field": field, "other": other}
}

func present(v finskema.Values, name string) bool {
	x, ok := v[name]
	return ok && x != nil
}

func compare(cur any, op Op, want any) bool {
	if a, ok := finskema.ToDecimal(cur); ok {
		if b, ok := finskema.ToDecimal(want); ok {
			return ordered(a.Cmp(b), op)
		}
		return op == Ne
	}
	if a, ok := asText(cur); ok {
		if b, ok := asText(want); ok {
			return ordered(strings.Compare(a, b), op)
		}
		return op == Ne
	}
	switch op {
	case Eq:
		return reflect.DeepEqual(cur, want)
	case Ne:
		return !reflect.DeepEqual(cur, want)
	}
	return false
}

func ordered(c int, op Op) bool {
	switch op {
	case Eq:
		return c == 0
	case Ne:
		return c != 0
	case Lt:
		return c < 0
	case Le:
		return c <= 0
	case Gt:
		return c > 0
	case Ge:
		return c >= 0
	}
	return false
}

func asText(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func display(v any) string {
	if d, ok := finskema.ToDecimal(v); ok {
		return d.String()
	}
	return fmt.Sprint(v)
}
