package finskema_test

import (
	"errors"
	"testing"

	"github.com/reoring/finskema"
)

func TestCollector_OrderWithoutDedup(t *testing.T) {
	var col finskema.Collector
	if col.Failed() || col.Err() != nil {
		t.Fatalf("empty collector must not fail")
	}
	col.Add()
	col.Add(finskema.Issue{Path: "/amount", Code: finskema.CodeTooSmall})
	col.Add(finskema.Issue{Path: "/amount", Code: finskema.CodeTooSmall})
	col.AddUnder("/tags", finskema.Issues{{Path: "/2", Code: finskema.CodeTooLong}, {Path: "/", Code: finskema.CodeInvalidType}})

	if !col.Failed() || col.Len() != 4 {
		t.Fatalf("expected 4 issues, got %v", col.Issues())
	}
	want := []string{"/amount", "/amount", "/tags/2", "/tags"}
	for i, it := range col.Issues() {
		if it.Path != want[i] {
			t.Fatalf("issue %d: got %s want %s", i, it.Path, want[i])
		}
	}
	iss, ok := finskema.AsIssues(col.Err())
	if !ok || len(iss) != 4 {
		t.Fatalf("Err must expose the collected Issues, got %v", col.Err())
	}
}

func TestCollector_AddErr(t *testing.T) {
	var col finskema.Collector
	col.AddErr("/x", nil)
	if col.Failed() {
		t.Fatalf("nil error must be ignored")
	}
	col.AddErr("/metadata", finskema.Issues{{Path: "/source", Code: finskema.CodeInvalidEnum}})
	boom := errors.New("boom")
	col.AddErr("/date", boom)

	iss := col.Issues()
	if len(iss) != 2 || iss[0].Path != "/metadata/source" {
		t.Fatalf("issues must be rebased, got %v", iss)
	}
	if iss[1].Code != finskema.CodeParseError || !errors.Is(iss[1].Cause, boom) {
		t.Fatalf("plain errors become parse_error, got %+v", iss[1])
	}
}
