package dsl_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reoring/finskema"
	g "github.com/reoring/finskema/dsl"
)

func TestBuild_SelfChecks(t *testing.T) {
	ok := func(finskema.Values) bool { return true }
	cases := []struct {
		name string
		b    interface {
			Build() (*g.ObjectSchema, error)
		}
		want string
	}{
		{"duplicate field", g.Object().Field("a", g.String()).Field("a", g.Bool()), "declared twice"},
		{"empty name", g.Object().Field("", g.String()), "empty name"},
		{"inverted bounds", g.Object().Field("a", g.Number().Min(10).Max(1)), "exceeds upper bound"},
		{"empty enum", g.Object().Field("a", g.Enum[string]()), "no members"},
		{"duplicate enum", g.Object().Field("a", g.Enum[string]("x", "x")), "duplicate members"},
		{"default violates rule", g.Object().Field("a", g.Number().Min(1)).Default(0), "default fails"},
		{"require unknown", g.Object().Field("a", g.String()).Require("b"), "unknown field"},
		{"refine unknown path", g.Object().Field("a", g.String()).Refine(finskema.Refinement{Name: "r", Path: "/b", Check: ok}), "not a declared field"},
		{"refine nil check", g.Object().Field("a", g.String()).Refine(finskema.Refinement{Name: "r", Path: "/a"}), "nil check"},
		{"pattern on number", g.Object().Field("a", g.Number().Pattern(nil, "x")), "pattern on number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.b.Build()
			if !errors.Is(err, finskema.ErrInvalidContract) {
				t.Fatalf("expected ErrInvalidContract, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %v", tc.want, err)
			}
		})
	}
}

func TestMustBuild_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	g.Object().Field("a", g.Enum[string]()).MustBuild()
}
