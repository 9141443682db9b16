package finskema

import "context"

// Result is the outcome of a validation call: either a canonical value or a
// non-empty list of issues, never both.
type Result[T any] struct {
	value  T
	issues Issues
}

// OK reports whether validation succeeded.
func (r Result[T]) OK() bool { return len(r.issues) == 0 }

// Value returns the canonical value. It is the zero value when !OK().
func (r Result[T]) Value() T { return r.value }

// Issues returns the ordered failures. It is nil when OK().
func (r Result[T]) Issues() Issues { return r.issues }

// Unwrap returns the pair form used across the package API.
func (r Result[T]) Unwrap() (T, error) {
	if r.OK() {
		return r.value, nil
	}
	var zero T
	return zero, r.issues
}

// Check runs s.Parse and folds the outcome into a Result. Errors that are not
// Issues are reported as a single parse_error at the root.
func Check[T any](ctx context.Context, s Schema[T], v any) Result[T] {
	val, err := s.Parse(ctx, v)
	if err != nil {
		iss := IssuesFromErr("/", err)
		if len(iss) == 0 {
			iss = Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
		}
		return Result[T]{issues: iss}
	}
	return Result[T]{value: val}
}
