package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/reoring/finskema"
	g "github.com/reoring/finskema/dsl"
)

type sample struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	ParentID *string         `json:"parentId,omitempty"`
	Note     *string         `json:"note,omitempty"`
}

func TestBind_Projection(t *testing.T) {
	s := g.MustBind[sample](sampleObject(t))
	v, err := s.Parse(context.Background(), map[string]any{"name": "Rent", "amount": "12.50", "note": "x"})
	if err == nil {
		t.Fatalf("numeric text must be rejected, got %+v", v)
	}
	v, err = s.Parse(context.Background(), map[string]any{"name": "Rent", "amount": 12.5, "note": "x"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Name != "Rent" || v.Currency != "GBP" || !v.Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected value: %+v", v)
	}
	if v.ParentID != nil || v.Note == nil || *v.Note != "x" {
		t.Fatalf("unexpected optionals: %+v", v)
	}
}

func TestBind_MissingTagIsDefect(t *testing.T) {
	type partialStruct struct {
		Name string `json:"name"`
	}
	_, err := g.Bind[partialStruct](sampleObject(t))
	if !errors.Is(err, finskema.ErrInvalidContract) {
		t.Fatalf("expected ErrInvalidContract, got %v", err)
	}
	if _, err := g.Bind[int](sampleObject(t)); !errors.Is(err, finskema.ErrInvalidContract) {
		t.Fatalf("non-struct target must be rejected, got %v", err)
	}
}
