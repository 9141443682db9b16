package finskema

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
}

type pathRef struct {
	parts []string
}

// Root returns the PathRef for the document root ("/").
func Root() PathRef { return &pathRef{} }

// FieldPath returns the pointer of a top-level field ("amount" -> "/amount").
func FieldPath(name string) string { return Root().Field(name).Pointer() }

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Rebase prefixes a child pointer with base: ("/tags", "/2") -> "/tags/2",
// ("/amount", "/") -> "/amount".
func Rebase(base, child string) string {
	if base == "" || base == "/" {
		if child == "" {
			return "/"
		}
		return child
	}
	switch {
	case child == "" || child == "/":
		return base
	case child[0] == '/':
		return base + child
	default:
		return base + "/" + child
	}
}
