package dsl

import (
	"context"
	"reflect"

	"github.com/reoring/finskema"
	js "github.com/reoring/finskema/jsonschema"
)

// Array accepts a list whose every element passes elem. Element issues are
// reported at /<index> relative to the field. The canonical value is []any.
func Array(elem AnyAdapter) AnyAdapter {
	ad := AnyAdapter{
		kind: kindArray,
		coerce: func(ctx context.Context, v any) (any, error) {
			items, ok := asSlice(v)
			if !ok {
				return nil, invalidType(kindArray)
			}
			out := make([]any, len(items))
			var col finskema.Collector
			for i, it := range items {
				pv, err := elem.parse(ctx, it)
				if err != nil {
					col.AddErr(finskema.Root().Index(i).Pointer(), err)
					continue
				}
				out[i] = pv
			}
			if col.Failed() {
				return nil, col.Issues()
			}
			return out, nil
		},
		schema: func() *js.Schema { return &js.Schema{Type: "array", Items: elem.JSONSchema()} },
	}
	if len(elem.defects) > 0 {
		ad.defects = append(ad.defects, elem.defects...)
	}
	return ad
}

func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Nested embeds an object contract as a field value (one level, e.g. metadata).
// Issues and presence flags from the nested object keep their own paths
// under the field.
func Nested(obj *ObjectSchema) AnyAdapter {
	if obj == nil {
		return AnyAdapter{kind: kindObject}.withDefect("nested object is nil")
	}
	return AnyAdapter{
		kind:   kindObject,
		nested: obj,
		schema: func() *js.Schema {
			s, _ := obj.JSONSchema()
			return s
		},
	}
}

// Unique drops repeated elements from an array, keeping first occurrences.
func Unique(v any) any {
	items, ok := v.([]any)
	if !ok {
		return v
	}
	seen := make(map[any]struct{}, len(items))
	out := make([]any, 0, len(items))
	for _, it := range items {
		if it != nil && !reflect.TypeOf(it).Comparable() {
			out = append(out, it)
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
