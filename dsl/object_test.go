package dsl_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/reoring/finskema"
	g "github.com/reoring/finskema/dsl"
)

func sampleObject(t *testing.T) *g.ObjectSchema {
	t.Helper()
	s, err := g.Object().Title("sample").
		Field("name", g.String().Min(1).Max(10)).Required().
		Field("amount", g.Number().Positive()).Required().
		Field("currency", g.String().Min(3).Max(3)).Default("GBP").
		Field("parentId", g.UUID().EmptyAsAbsent()).Optional().
		Field("note", g.String().Nullable()).Optional().
		Build()
	if err != nil {
		t.Fatalf("unexpected build err: %v", err)
	}
	return s
}

func TestObject_RequiredReportedInDeclarationOrder(t *testing.T) {
	_, err := sampleObject(t).Parse(context.Background(), map[string]any{})
	iss, ok := finskema.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two required issues, got %v", err)
	}
	if iss[0].Path != "/name" || iss[1].Path != "/amount" || iss[0].Code != finskema.CodeRequired {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestObject_CollectsEveryFieldIssue(t *testing.T) {
	_, err := sampleObject(t).Parse(context.Background(), map[string]any{
		"name":   "",
		"amount": -1,
	})
	iss, _ := finskema.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/name" || iss[1].Path != "/amount" {
		t.Fatalf("expected issues for name and amount, got %v", iss)
	}
}

func TestObject_DefaultsAndStrip(t *testing.T) {
	dv, err := sampleObject(t).ParseWithMeta(context.Background(), map[string]any{
		"name":    "Rent",
		"amount":  950,
		"unknown": true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	out := dv.Value
	if out["currency"] != "GBP" {
		t.Fatalf("expected default currency, got %v", out["currency"])
	}
	if _, ok := out["unknown"]; ok {
		t.Fatalf("unknown key must be stripped")
	}
	if !dv.Presence.Defaulted("/currency") || dv.Presence.Supplied("/currency") {
		t.Fatalf("currency presence: got %v", dv.Presence["/currency"])
	}
	if d, _ := out["amount"].(decimal.Decimal); !d.Equal(decimal.NewFromInt(950)) {
		t.Fatalf("amount: got %#v", out["amount"])
	}
}

func TestObject_EmptyAsAbsent(t *testing.T) {
	dv, err := sampleObject(t).ParseWithMeta(context.Background(), map[string]any{
		"name": "x", "amount": 1, "parentId": "",
	})
	if err != nil {
		t.Fatalf("empty optional reference must be accepted: %v", err)
	}
	if _, ok := dv.Value["parentId"]; ok {
		t.Fatalf("parentId must be absent from the canonical record")
	}
	if dv.Presence["/parentId"]&finskema.PresenceEmptyAbsent == 0 {
		t.Fatalf("expected PresenceEmptyAbsent")
	}
}

func TestObject_NullHandling(t *testing.T) {
	s := sampleObject(t)
	out, err := s.Parse(context.Background(), map[string]any{"name": "x", "amount": 1, "note": nil})
	if err != nil {
		t.Fatalf("nullable field must accept null: %v", err)
	}
	if v, ok := out["note"]; !ok || v != nil {
		t.Fatalf("expected note=nil kept, got %v", out)
	}
	_, err = s.Parse(context.Background(), map[string]any{"name": nil, "amount": 1})
	iss, _ := finskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/name" || iss[0].Code != finskema.CodeInvalidType {
		t.Fatalf("expected invalid_type at /name, got %v", iss)
	}
}

func TestObject_NotAnObject(t *testing.T) {
	for _, in := range []any{nil, "x", []any{}, 42} {
		_, err := sampleObject(t).Parse(context.Background(), in)
		if firstCode(t, err) != finskema.CodeInvalidType {
			t.Fatalf("%v: expected invalid_type, got %v", in, err)
		}
	}
}

func TestObject_UnknownStrict(t *testing.T) {
	s := g.Object().Field("a", g.String()).Required().UnknownStrict().MustBuild()
	_, err := s.Parse(context.Background(), map[string]any{"a": "x", "z": 1, "b": 2})
	iss, _ := finskema.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/b" || iss[1].Path != "/z" || iss[0].Code != finskema.CodeUnknownKey {
		t.Fatalf("expected sorted unknown_key issues, got %v", iss)
	}
}

func TestObject_RefinementsRunAfterFields(t *testing.T) {
	calls := 0
	s := g.Object().
		Field("from", g.Date()).Required().
		Field("to", g.Date()).Required().
		Refine(finskema.Refinement{
			Name: "to_after_from",
			Path: "/to",
			Check: func(v finskema.Values) bool {
				calls++
				from, _ := v.Time("from")
				to, _ := v.Time("to")
				return !to.Before(from)
			},
		}).
		Refine(finskema.Refinement{Name: "always", Path: "/from", Check: func(finskema.Values) bool { calls++; return false }}).
		MustBuild()
	ctx := context.Background()

	_, err := s.Parse(ctx, map[string]any{"from": "bad"})
	if calls != 0 {
		t.Fatalf("refinements must not run when a field failed")
	}
	if iss, _ := finskema.AsIssues(err); len(iss) != 2 {
		t.Fatalf("expected field issues only, got %v", iss)
	}

	_, err = s.Parse(ctx, map[string]any{"from": "2024-02-01", "to": "2024-01-01"})
	iss, _ := finskema.AsIssues(err)
	if calls != 2 || len(iss) != 2 {
		t.Fatalf("every refinement must run, calls=%d issues=%v", calls, iss)
	}
	if iss[0].Path != "/to" || iss[0].Rule != "to_after_from" || iss[0].Code != finskema.CodeBusinessRule {
		t.Fatalf("unexpected first refinement issue: %+v", iss[0])
	}
	if iss[0].Message == "" {
		t.Fatalf("refinement issue must carry a message")
	}
}

func TestObject_Idempotent(t *testing.T) {
	s := sampleObject(t)
	ctx := context.Background()
	first, err := s.Parse(ctx, map[string]any{"name": "x", "amount": 2.5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := s.Parse(ctx, first)
	if err != nil {
		t.Fatalf("canonical output must revalidate: %v", err)
	}
	if len(first) != len(second) || second["currency"] != first["currency"] {
		t.Fatalf("second pass changed output: %v vs %v", first, second)
	}
	a, _ := first["amount"].(decimal.Decimal)
	b, _ := second["amount"].(decimal.Decimal)
	if !a.Equal(b) {
		t.Fatalf("amount changed: %v vs %v", a, b)
	}
}

func TestObject_JSONSchema(t *testing.T) {
	js, err := sampleObject(t).JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if js.Type != "object" || len(js.Required) != 2 || js.Required[0] != "name" || js.Required[1] != "amount" {
		t.Fatalf("unexpected required: %v", js.Required)
	}
	if js.Properties["currency"].Default != "GBP" {
		t.Fatalf("expected default in schema, got %v", js.Properties["currency"].Default)
	}
	if js.Properties["amount"].ExclusiveMinimum == nil || *js.Properties["amount"].ExclusiveMinimum != 0 {
		t.Fatalf("expected exclusiveMinimum 0 on amount")
	}
	if typ, ok := js.Properties["note"].Type.([]string); !ok || len(typ) != 2 {
		t.Fatalf("expected nullable type on note, got %v", js.Properties["note"].Type)
	}
}

func TestObject_NestedPaths(t *testing.T) {
	meta := g.Object().Field("source", g.Enum[string]("manual", "import")).Optional().MustBuild()
	s := g.Object().Field("metadata", g.Nested(meta)).Optional().MustBuild()
	_, err := s.Parse(context.Background(), map[string]any{"metadata": map[string]any{"source": "fax"}})
	iss, _ := finskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/metadata/source" || iss[0].Code != finskema.CodeInvalidEnum {
		t.Fatalf("expected nested enum issue, got %v", iss)
	}
}

func TestObject_NestedPresence(t *testing.T) {
	meta := g.Object().
		Field("source", g.Enum[string]("manual", "import")).Optional().
		Field("externalId", g.String().EmptyAsAbsent()).Optional().
		Field("importedAt", g.Date().Nullable()).Optional().
		MustBuild()
	s := g.Object().Field("metadata", g.Nested(meta)).Optional().MustBuild()
	dec, err := s.ParseWithMeta(context.Background(), map[string]any{
		"metadata": map[string]any{"source": "import", "externalId": "", "importedAt": nil},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	pm := dec.Presence
	if !pm.Supplied("/metadata") || !pm.Supplied("/metadata/source") {
		t.Fatalf("nested fields must be reported under the field path, got %v", pm)
	}
	if pm.Supplied("/metadata/externalId") || pm["/metadata/externalId"]&finskema.PresenceEmptyAbsent == 0 {
		t.Fatalf("expected empty-absent flag on /metadata/externalId, got %v", pm)
	}
	if pm["/metadata/importedAt"]&finskema.PresenceWasNull == 0 {
		t.Fatalf("expected null flag on /metadata/importedAt, got %v", pm)
	}
	if _, ok := pm["/source"]; ok {
		t.Fatalf("nested flags must not leak to the root, got %v", pm)
	}
}

func TestObject_UnknownStripOverridesStrict(t *testing.T) {
	s := g.Object().UnknownStrict().UnknownStrip().
		Field("name", g.String()).Required().
		MustBuild()
	if s.Strict() {
		t.Fatalf("later UnknownStrip must win")
	}
	out, err := s.Parse(context.Background(), map[string]any{"name": "x", "extra": 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := out["extra"]; ok {
		t.Fatalf("unknown key must be stripped, got %v", out)
	}
}

func TestObject_DescribeProjected(t *testing.T) {
	s := g.Object().Field("note", g.String().Max(10).Describe("free text")).Optional().MustBuild()
	js, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p := js.Properties["note"]
	if p.Description != "free text" || p.MaxLength == nil || *p.MaxLength != 10 {
		t.Fatalf("description must sit next to the other keywords, got %+v", p)
	}
}
