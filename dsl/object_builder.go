package dsl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/finskema"
)

// UnknownPolicy controls how keys that are not declared fields are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Ignore and drop unknown keys (default).
	UnknownStrict                      // Reject unknown keys with an issue.
)

// field is one Field Definition: name, value rule, optionality and default.
type field struct {
	name     string
	path     string
	ad       AnyAdapter
	required bool
	// def produces the default when the field is omitted; nil means none.
	def        func() any
	defLiteral any // exported to JSON Schema; nil for generators
}

type objectBuilder struct {
	title         string
	fields        []field
	index         map[string]int
	pending       []string // Require() names, resolved at Build
	unknownPolicy UnknownPolicy
	refines       []finskema.Refinement
	errs          []error
}

type fieldStep struct {
	b   *objectBuilder
	idx int
}

// Object creates a new object builder. Unknown keys are stripped by default.
func Object() *objectBuilder {
	return &objectBuilder{index: map[string]int{}, unknownPolicy: UnknownStrip}
}

// Title names the contract in JSON Schema output and error messages.
func (b *objectBuilder) Title(t string) *objectBuilder {
	b.title = t
	return b
}

// Field registers a field with its adapter. Fields keep declaration order.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	if name == "" {
		b.errs = append(b.errs, errors.New("field with empty name"))
	}
	if _, dup := b.index[name]; dup {
		b.errs = append(b.errs, fmt.Errorf("field %q declared twice", name))
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, field{name: name, path: finskema.FieldPath(name), ad: ad})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

func (f *fieldStep) cur() *field { return &f.b.fields[f.idx] }

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.cur().required = true
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	f.cur().required = false
	return f.b
}

// Default sets the value used when the field is omitted. The default passes
// through the field's own rules at Build time.
func (f *fieldStep) Default(v any) *objectBuilder {
	c := f.cur()
	c.def = func() any { return v }
	c.defLiteral = v
	return f.b
}

// DefaultFunc sets a generator invoked per parse when the field is omitted.
func (f *fieldStep) DefaultFunc(fn func() any) *objectBuilder {
	c := f.cur()
	c.def = fn
	c.defLiteral = nil
	return f.b
}

func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep { return f.b.Field(name, ad) }
func (f *fieldStep) Require(names ...string) *objectBuilder      { return f.b.Require(names...) }
func (f *fieldStep) Refine(r finskema.Refinement) *objectBuilder { return f.b.Refine(r) }
func (f *fieldStep) UnknownStrict() *objectBuilder               { return f.b.UnknownStrict() }
func (f *fieldStep) Build() (*ObjectSchema, error)               { return f.b.Build() }
func (f *fieldStep) MustBuild() *ObjectSchema                    { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	b.pending = append(b.pending, names...)
	return b
}

// UnknownStrict rejects undeclared keys.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknownPolicy = UnknownStrict
	return b
}

// UnknownStrip ignores undeclared keys.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknownPolicy = UnknownStrip
	return b
}

// Refine appends a cross-field rule. Rules run in the order added and only
// when every field passed.
func (b *objectBuilder) Refine(r finskema.Refinement) *objectBuilder {
	b.refines = append(b.refines, r)
	return b
}

// Build runs the contract self-checks and returns the schema. Any defect is
// reported as an error wrapping finskema.ErrInvalidContract.
func (b *objectBuilder) Build() (*ObjectSchema, error) {
	errs := append([]error(nil), b.errs...)
	for _, n := range b.pending {
		i, ok := b.index[n]
		if !ok {
			errs = append(errs, fmt.Errorf("require: unknown field %q", n))
			continue
		}
		b.fields[i].required = true
	}
	for _, f := range b.fields {
		for _, d := range f.ad.defects {
			errs = append(errs, fmt.Errorf("field %q: %w", f.name, d))
		}
		if len(f.ad.defects) == 0 && f.def != nil {
			if err := checkDefault(f); err != nil {
				errs = append(errs, err)
			}
		}
	}
	for i, r := range b.refines {
		label := r.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if r.Check == nil {
			errs = append(errs, fmt.Errorf("refinement %s: nil check", label))
		}
		if _, ok := b.index[topField(r.Path)]; !ok {
			errs = append(errs, fmt.Errorf("refinement %s: path %q is not a declared field", label, r.Path))
		}
	}
	if len(errs) > 0 {
		name := b.title
		if name == "" {
			name = "object"
		}
		return nil, fmt.Errorf("%w: %s: %w", finskema.ErrInvalidContract, name, errors.Join(errs...))
	}
	fields := append([]field(nil), b.fields...)
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.name] = i
	}
	return &ObjectSchema{
		title:         b.title,
		fields:        fields,
		index:         index,
		unknownPolicy: b.unknownPolicy,
		refines:       append([]finskema.Refinement(nil), b.refines...),
	}, nil
}

// MustBuild is like Build but panics on error. Use it for package-level
// contracts so definition defects fail at startup.
func (b *objectBuilder) MustBuild() *ObjectSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func checkDefault(f field) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("field %q: default generator panicked: %v", f.name, r)
		}
	}()
	if _, perr := f.ad.parse(context.Background(), f.def()); perr != nil {
		return fmt.Errorf("field %q: default fails its own rule: %w", f.name, perr)
	}
	return nil
}

// topField returns the first segment of a JSON Pointer ("/metadata/source" -> "metadata").
func topField(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return strings.ReplaceAll(strings.ReplaceAll(p, "~1", "/"), "~0", "~")
}
