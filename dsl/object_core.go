package dsl

import (
	"context"
	"reflect"
	"sort"

	"github.com/reoring/finskema"
	"github.com/reoring/finskema/i18n"
	js "github.com/reoring/finskema/jsonschema"
)

// ObjectSchema is a built, immutable object contract. It is safe for
// concurrent use.
type ObjectSchema struct {
	title         string
	fields        []field
	index         map[string]int
	unknownPolicy UnknownPolicy
	refines       []finskema.Refinement
}

var _ finskema.Schema[map[string]any] = (*ObjectSchema)(nil)

// Parse validates v and returns the canonical record: declared fields only,
// defaults applied, values in canonical form.
func (o *ObjectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	out, _, err := o.parse(ctx, v)
	return out, err
}

// ParseWithMeta is Parse plus per-field presence flags.
func (o *ObjectSchema) ParseWithMeta(ctx context.Context, v any) (finskema.Decoded[map[string]any], error) {
	out, pm, err := o.parse(ctx, v)
	if err != nil {
		return finskema.Decoded[map[string]any]{}, err
	}
	return finskema.Decoded[map[string]any]{Value: out, Presence: pm}, nil
}

func (o *ObjectSchema) parse(ctx context.Context, v any) (map[string]any, finskema.PresenceMap, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	in, ok := asObject(v)
	if !ok {
		return nil, nil, invalidType(kindObject)
	}

	var col finskema.Collector
	pm := make(finskema.PresenceMap, len(o.fields))
	supplied := make([]bool, len(o.fields))

	// presence: required-missing first, in declaration order
	for i, f := range o.fields {
		raw, seen := in[f.name]
		if !seen {
			if f.required {
				col.Add(requiredIssue(f.path))
			}
			continue
		}
		p := finskema.PresenceSeen
		if raw == nil {
			p |= finskema.PresenceWasNull
		}
		if s, isStr := asString(raw); isStr && s == "" && f.ad.emptyAsAbsent {
			pm[f.path] = p | finskema.PresenceEmptyAbsent
			if f.required {
				col.Add(requiredIssue(f.path))
			}
			continue
		}
		pm[f.path] = p
		supplied[i] = true
	}

	if o.unknownPolicy == UnknownStrict {
		var extra []string
		for k := range in {
			if _, known := o.index[k]; !known {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		for _, k := range extra {
			col.Add(finskema.IssueAt(finskema.Root().Field(k), finskema.CodeUnknownKey,
				i18n.T(finskema.CodeUnknownKey, nil), map[string]any{"key": k}))
		}
	}

	out := make(map[string]any, len(o.fields))
	for i, f := range o.fields {
		if !supplied[i] {
			if f.def == nil || f.required {
				continue
			}
			dv, err := f.ad.parse(ctx, f.def())
			if err != nil {
				col.AddErr(f.path, err)
				continue
			}
			out[f.name] = dv
			pm[f.path] |= finskema.PresenceDefaultApplied
			continue
		}
		raw := in[f.name]
		if raw == nil && !f.ad.nullable {
			col.AddUnder(f.path, invalidType(f.ad.kind))
			continue
		}
		pv, cpm, err := f.ad.parseMeta(ctx, raw)
		if err != nil {
			col.AddErr(f.path, err)
			continue
		}
		if len(cpm) > 0 {
			pm = finskema.MergePresence(pm, f.path, cpm)
		}
		out[f.name] = pv
	}
	if col.Failed() {
		return nil, nil, col.Err()
	}

	vals := finskema.Values(out)
	for _, r := range o.refines {
		if r.Check(vals) {
			continue
		}
		it := r.Issue()
		if it.Message == "" {
			it.Message = i18n.T(it.Code, r.MessageData())
		}
		col.Add(it)
	}
	if col.Failed() {
		return nil, nil, col.Err()
	}
	return out, pm, nil
}

func requiredIssue(path string) finskema.Issue {
	return finskema.Issue{Path: path, Code: finskema.CodeRequired, Message: i18n.T(finskema.CodeRequired, nil)}
}

// asObject accepts map[string]any, finskema.Values and other string-keyed maps.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case finskema.Values:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// JSONSchema projects the contract: properties, required names in
// declaration order, defaults, and additionalProperties=false when strict.
func (o *ObjectSchema) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Type: "object", Title: o.title, Properties: make(map[string]*js.Schema, len(o.fields))}
	for _, f := range o.fields {
		ps := f.ad.JSONSchema()
		if f.defLiteral != nil && !f.required {
			ps.Default = jsonDefault(f.defLiteral)
		}
		s.Properties[f.name] = ps
		if f.required {
			s.Required = append(s.Required, f.name)
		}
	}
	if o.unknownPolicy == UnknownStrict {
		s.AdditionalProperties = false
	}
	return s, nil
}

// jsonDefault renders decimal defaults as JSON numbers rather than strings.
func jsonDefault(v any) any {
	if d, ok := finskema.ToDecimal(v); ok {
		f, _ := d.Float64()
		return f
	}
	return v
}

// Title returns the contract name.
func (o *ObjectSchema) Title() string { return o.title }

// Fields returns field names in declaration order.
func (o *ObjectSchema) Fields() []string {
	names := make([]string, len(o.fields))
	for i, f := range o.fields {
		names[i] = f.name
	}
	return names
}

// IsRequired reports whether name is a declared, required field.
func (o *ObjectSchema) IsRequired(name string) bool {
	i, ok := o.index[name]
	return ok && o.fields[i].required
}

// Adapter returns the value rule of a declared field.
func (o *ObjectSchema) Adapter(name string) (AnyAdapter, bool) {
	i, ok := o.index[name]
	if !ok {
		return AnyAdapter{}, false
	}
	return o.fields[i].ad, true
}

// HasDefault reports whether name carries a default.
func (o *ObjectSchema) HasDefault(name string) bool {
	i, ok := o.index[name]
	return ok && o.fields[i].def != nil
}

// Refinements returns the cross-field rules in evaluation order.
func (o *ObjectSchema) Refinements() []finskema.Refinement {
	return append([]finskema.Refinement(nil), o.refines...)
}

// Strict reports whether unknown keys are rejected.
func (o *ObjectSchema) Strict() bool { return o.unknownPolicy == UnknownStrict }
