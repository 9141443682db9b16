package finskema

import (
	"context"

	js "github.com/reoring/finskema/jsonschema"
)

// Schema is a read-only validation contract producing T from untrusted input.
// Implementations must be safe for concurrent use once built.
type Schema[T any] interface {
	// Parse checks v and returns its canonical form (validate -> transform ->
	// default -> refine). It returns Issues when any rule fails.
	Parse(ctx context.Context, v any) (T, error)
	// ParseWithMeta returns the canonical value together with presence metadata.
	ParseWithMeta(ctx context.Context, v any) (Decoded[T], error)
	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}
