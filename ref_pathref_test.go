package finskema_test

import (
	"testing"

	"github.com/reoring/finskema"
)

func TestPathRef_Pointer(t *testing.T) {
	cases := []struct {
		ref  finskema.PathRef
		want string
	}{
		{finskema.Root(), "/"},
		{finskema.Root().Field("metadata").Field("source"), "/metadata/source"},
		{finskema.Root().Field("tags").Index(2), "/tags/2"},
		{finskema.Root().Field("a/b").Field("c~d"), "/a~1b/c~0d"},
		{finskema.Root().Field(""), "/"},
	}
	for i, tc := range cases {
		if got := tc.ref.Pointer(); got != tc.want {
			t.Fatalf("case %d: got %s want %s", i, got, tc.want)
		}
	}
	if finskema.FieldPath("amount") != "/amount" {
		t.Fatalf("unexpected FieldPath")
	}

	base := finskema.Root().Field("tags")
	_ = base.Index(0)
	if base.Pointer() != "/tags" {
		t.Fatalf("deriving a child must not change the parent")
	}
}

func TestRebase(t *testing.T) {
	cases := []struct{ base, child, want string }{
		{"/tags", "/2", "/tags/2"},
		{"/amount", "/", "/amount"},
		{"/amount", "", "/amount"},
		{"/metadata", "source", "/metadata/source"},
		{"/", "/x", "/x"},
		{"", "", "/"},
	}
	for _, tc := range cases {
		if got := finskema.Rebase(tc.base, tc.child); got != tc.want {
			t.Fatalf("Rebase(%q, %q) = %q want %q", tc.base, tc.child, got, tc.want)
		}
	}
}

func TestIssueAt(t *testing.T) {
	it := finskema.IssueAt(finskema.Root().Field("extra"), finskema.CodeUnknownKey, "unknown key", map[string]any{"key": "extra"})
	if it.Path != "/extra" || it.Code != finskema.CodeUnknownKey || it.Params["key"] != "extra" {
		t.Fatalf("unexpected issue: %+v", it)
	}
}

func TestMergePresence(t *testing.T) {
	dst := finskema.PresenceMap{"/metadata": finskema.PresenceSeen}
	child := finskema.PresenceMap{"/source": finskema.PresenceSeen, "/externalId": finskema.PresenceSeen | finskema.PresenceEmptyAbsent}
	got := finskema.MergePresence(dst, "/metadata", child)
	if !got.Supplied("/metadata") || !got.Supplied("/metadata/source") {
		t.Fatalf("unexpected merge: %v", got)
	}
	if got.Supplied("/metadata/externalId") {
		t.Fatalf("empty-absent must not count as supplied")
	}
	if len(dst) != 1 {
		t.Fatalf("merge must not mutate dst")
	}
	if got.Defaulted("/metadata/source") {
		t.Fatalf("no default was applied")
	}
}
