// Package jsonschema holds the JSON Schema projection of contracts.
package jsonschema

import json "github.com/goccy/go-json"

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type        any    `json:"type,omitempty"` // string or []string (nullable)
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`
}

// Marshal renders the schema as indented JSON.
func (s *Schema) Marshal() ([]byte, error) { return json.MarshalIndent(s, "", "  ") }

// Clone returns a shallow copy safe to decorate without touching the original.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return &Schema{}
	}
	c := *s
	return &c
}

// Ptr returns a pointer to v. Handy for the optional bound fields.
func Ptr[T any](v T) *T { return &v }
