// Package finskema provides the validation-and-normalization boundary for
// personal-finance records:
//
// - A stable error model via Issues (JSON Pointer path, code, message)
// - Schema[T]: parse untrusted, loosely typed input into a canonical value
// - Presence metadata (seen, null, default applied, empty collapsed) via ParseWithMeta
// - Refinements: whole-object predicates reported against a single field path
//
// Design policy:
//   - Keep only the error model and public contracts in the root package.
//   - Place the builder DSL under dsl/, reusable refinements under rules/,
//     date coercion under codec/ and entity contracts under finance/.
//   - Contracts are built once at init and are read-only afterwards; a parse
//     allocates its own state and is safe to run concurrently.
//
// Typical usage:
//
//	rec, err := finance.Liabilities.ValidateCreate(ctx, raw)
//	if iss, ok := finskema.AsIssues(err); ok {
//	    for path, msgs := range iss.ByPath() { ... }
//	}
package finskema
