package dsl

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/finskema"
	js "github.com/reoring/finskema/jsonschema"
)

// typedSchema projects the canonical map of an ObjectSchema onto T through
// its json tags.
type typedSchema[T any] struct {
	obj *ObjectSchema
}

// Bind returns a Schema[T] whose Parse validates with obj and decodes the
// canonical record into T. Every contract field must map to a json tag on T;
// a missing tag is reported as a contract defect.
func Bind[T any](obj *ObjectSchema) (finskema.Schema[T], error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: bind: nil object schema", finskema.ErrInvalidContract)
	}
	var zero T
	rt := reflect.TypeOf(zero)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: bind: target %v is not a struct", finskema.ErrInvalidContract, rt)
	}
	tags := jsonNames(rt)
	var errs []error
	for _, f := range obj.fields {
		if _, ok := tags[f.name]; !ok {
			errs = append(errs, fmt.Errorf("field %q has no json tag on %s", f.name, rt.Name()))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: bind %s: %w", finskema.ErrInvalidContract, rt.Name(), errors.Join(errs...))
	}
	return &typedSchema[T]{obj: obj}, nil
}

// MustBind is like Bind but panics on error.
func MustBind[T any](obj *ObjectSchema) finskema.Schema[T] {
	s, err := Bind[T](obj)
	if err != nil {
		panic(err)
	}
	return s
}

func jsonNames(rt reflect.Type) map[string]struct{} {
	out := map[string]struct{}{}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous && sf.Tag.Get("json") == "" {
			et := sf.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				for k := range jsonNames(et) {
					out[k] = struct{}{}
				}
			}
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		out[name] = struct{}{}
	}
	return out
}

func (s *typedSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	m, err := s.obj.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	return project[T](m)
}

func (s *typedSchema[T]) ParseWithMeta(ctx context.Context, v any) (finskema.Decoded[T], error) {
	d, err := s.obj.ParseWithMeta(ctx, v)
	if err != nil {
		return finskema.Decoded[T]{}, err
	}
	out, err := project[T](d.Value)
	if err != nil {
		return finskema.Decoded[T]{}, err
	}
	return finskema.Decoded[T]{Value: out, Presence: d.Presence}, nil
}

func (s *typedSchema[T]) JSONSchema() (*js.Schema, error) { return s.obj.JSONSchema() }

func project[T any](m map[string]any) (T, error) {
	var out T
	b, err := json.Marshal(m)
	if err == nil {
		err = json.Unmarshal(b, &out)
	}
	if err != nil {
		return out, finskema.Issues{{Path: "/", Code: finskema.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return out, nil
}
