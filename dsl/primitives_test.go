package dsl_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/reoring/finskema"
	g "github.com/reoring/finskema/dsl"
)

func firstCode(t *testing.T, err error) string {
	t.Helper()
	iss, ok := finskema.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues error, got %v", err)
	}
	return iss[0].Code
}

func TestString_Basic(t *testing.T) {
	ctx := context.Background()
	s := g.String().Min(1).Max(3)

	v, err := s.Parse(ctx, "abc")
	if err != nil || v != "abc" {
		t.Fatalf("parse ok expected, got v=%v err=%v", v, err)
	}
	if _, err := s.Parse(ctx, 1); firstCode(t, err) != finskema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %v", err)
	}
	if _, err := s.Parse(ctx, ""); firstCode(t, err) != finskema.CodeTooShort {
		t.Fatalf("expected too_short, got %v", err)
	}
	if _, err := s.Parse(ctx, "abcd"); firstCode(t, err) != finskema.CodeTooLong {
		t.Fatalf("expected too_long, got %v", err)
	}
	// length counts characters, not bytes
	if _, err := s.Parse(ctx, "日本語"); err != nil {
		t.Fatalf("unexpected err for 3 runes: %v", err)
	}
}

func TestNumber_ExactBounds(t *testing.T) {
	ctx := context.Background()
	rate := g.Number().Min(-100).Max(1000)

	for _, ok := range []any{-100, 1000, 0.5, json.Number("999.99")} {
		if _, err := rate.Parse(ctx, ok); err != nil {
			t.Fatalf("%v: unexpected err %v", ok, err)
		}
	}
	if _, err := rate.Parse(ctx, -100.01); firstCode(t, err) != finskema.CodeTooSmall {
		t.Fatalf("expected too_small, got %v", err)
	}
	if _, err := rate.Parse(ctx, 1000.01); firstCode(t, err) != finskema.CodeTooBig {
		t.Fatalf("expected too_big, got %v", err)
	}
	if _, err := rate.Parse(ctx, "12"); firstCode(t, err) != finskema.CodeInvalidType {
		t.Fatalf("numeric text must not be coerced, got %v", err)
	}

	v, err := g.Number().Parse(ctx, 12.5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d, ok := v.(decimal.Decimal); !ok || !d.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("expected canonical decimal 12.5, got %#v", v)
	}
}

func TestNumber_PositiveIsExclusive(t *testing.T) {
	ctx := context.Background()
	amt := g.Number().Positive()
	if _, err := amt.Parse(ctx, 0); firstCode(t, err) != finskema.CodeTooSmall {
		t.Fatalf("zero must fail a positive bound, got %v", err)
	}
	if _, err := amt.Parse(ctx, 0.01); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := g.Number().NonNegative().Parse(ctx, 0); err != nil {
		t.Fatalf("zero must pass non-negative: %v", err)
	}
}

func TestInt_RejectsFractions(t *testing.T) {
	ctx := context.Background()
	s := g.Int().Min(1).Max(365)
	v, err := s.Parse(ctx, float64(7))
	if err != nil || v != int64(7) {
		t.Fatalf("expected int64(7), got %#v err=%v", v, err)
	}
	if _, err := s.Parse(ctx, 1.5); firstCode(t, err) != finskema.CodeInvalidType {
		t.Fatalf("expected invalid_type for 1.5, got %v", err)
	}
	if _, err := s.Parse(ctx, 0); firstCode(t, err) != finskema.CodeTooSmall {
		t.Fatalf("expected too_small, got %v", err)
	}
}

type color string

func TestEnum_ExactMatch(t *testing.T) {
	ctx := context.Background()
	s := g.Enum[color]("red", "green")

	if _, err := s.Parse(ctx, "red"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.Parse(ctx, color("green")); err != nil {
		t.Fatalf("typed member should be accepted: %v", err)
	}
	for _, bad := range []string{"Red", "re", "blue", ""} {
		_, err := s.Parse(ctx, bad)
		if firstCode(t, err) != finskema.CodeInvalidEnum {
			t.Fatalf("%q: expected invalid_enum, got %v", bad, err)
		}
	}
}

func TestUUID_Format(t *testing.T) {
	ctx := context.Background()
	if _, err := g.UUID().Parse(ctx, "7d444840-9dc0-11d1-b245-5ffdce74fad2"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, bad := range []string{"not-a-uuid", "7d4448409dc011d1b2455ffdce74fad2", "{7d444840-9dc0-11d1-b245-5ffdce74fad2}"} {
		if _, err := g.UUID().Parse(ctx, bad); firstCode(t, err) != finskema.CodeInvalidFormat {
			t.Fatalf("%q: expected invalid_format, got %v", bad, err)
		}
	}
}

func TestHexColor(t *testing.T) {
	ctx := context.Background()
	for _, ok := range []string{"#00ff00", "#ABCDEF"} {
		if _, err := g.HexColor().Parse(ctx, ok); err != nil {
			t.Fatalf("%q: unexpected err %v", ok, err)
		}
	}
	for _, bad := range []string{"00ff00", "#0f0", "#GGGGGG"} {
		if _, err := g.HexColor().Parse(ctx, bad); firstCode(t, err) != finskema.CodePattern {
			t.Fatalf("%q: expected pattern, got %v", bad, err)
		}
	}
}

func TestDate_TextAndNative(t *testing.T) {
	ctx := context.Background()
	d := g.Date()

	v, err := d.Parse(ctx, "2024-01-15")
	if err != nil || v != "2024-01-15" {
		t.Fatalf("text date must pass unchanged, got %v err=%v", v, err)
	}
	v, err = d.Parse(ctx, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	if err != nil || v != "2024-01-15T10:30:00.000Z" {
		t.Fatalf("native date must render as ISO text, got %v err=%v", v, err)
	}
	if _, err := d.Parse(ctx, "15/01/2024"); firstCode(t, err) != finskema.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
	if _, err := d.Parse(ctx, 20240115); firstCode(t, err) != finskema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}

func TestArray_ElementPaths(t *testing.T) {
	ctx := context.Background()
	tags := g.Array(g.String().Min(1).Max(5)).Max(3)

	_, err := tags.Parse(ctx, []any{"ok", "", "toolong"})
	iss, _ := finskema.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/1" || iss[1].Path != "/2" {
		t.Fatalf("expected element issues at /1 and /2, got %v", iss)
	}
	if _, err := tags.Parse(ctx, []string{"a", "b", "c", "d"}); firstCode(t, err) != finskema.CodeTooLong {
		t.Fatalf("expected too_long, got %v", err)
	}
	v, err := g.Array(g.String()).Transform(g.Unique).Parse(ctx, []any{"a", "b", "a"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := v.([]any); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected deduplicated [a b], got %v", got)
	}
}

func TestPattern_NamedInMessage(t *testing.T) {
	ctx := context.Background()
	cur := g.String().Pattern(regexp.MustCompile(`^[A-Z]{3}$`), "currency code")
	_, err := cur.Parse(ctx, "gbp")
	iss, _ := finskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Hint != "currency code" {
		t.Fatalf("expected named pattern issue, got %v", iss)
	}
}

func TestNullable(t *testing.T) {
	ctx := context.Background()
	v, err := g.String().Nullable().Parse(ctx, nil)
	if err != nil || v != nil {
		t.Fatalf("nullable must accept nil, got %v err=%v", v, err)
	}
	if _, err := g.String().Parse(ctx, nil); firstCode(t, err) != finskema.CodeInvalidType {
		t.Fatalf("expected invalid_type for nil, got %v", err)
	}
}
