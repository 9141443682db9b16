package dsl

import "github.com/reoring/finskema"

// Partial derives the update form of a create contract: every field becomes
// optional and loses its default, while value rules, unknown-key policy and
// refinements stay identical. A supplied value is therefore judged exactly as
// it would be on create.
func Partial(s *ObjectSchema) *ObjectSchema {
	if s == nil {
		return nil
	}
	fields := make([]field, len(s.fields))
	index := make(map[string]int, len(s.fields))
	for i, f := range s.fields {
		f.required = false
		f.def = nil
		f.defLiteral = nil
		fields[i] = f
		index[f.name] = i
	}
	return &ObjectSchema{
		title:         s.title,
		fields:        fields,
		index:         index,
		unknownPolicy: s.unknownPolicy,
		refines:       append([]finskema.Refinement(nil), s.refines...),
	}
}
