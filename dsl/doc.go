// Package dsl is the builder surface for record contracts.
//
// A contract is declared once with Object():
//
//	var account = dsl.Object().Title("account").
//		Field("name", dsl.String().Min(1).Max(100)).Required().
//		Field("currency", dsl.String().Pattern(currencyRe, "currency code")).Default("GBP").
//		MustBuild()
//
// and is immutable afterwards. Value rules (AnyAdapter) are built from the
// primitives String, Number, Int, Bool, Enum, UUID, Date, HexColor, Array and
// Nested, then narrowed with decorators such as Min, Max, Gt, Pattern,
// Nullable and EmptyAsAbsent. Cross-field rules are attached with Refine.
//
// Build performs the contract self-checks (duplicate fields, inverted bounds,
// empty enums, defaults that violate their own rule, refinements pointing at
// undeclared fields) and reports them wrapped in finskema.ErrInvalidContract.
//
// Partial derives the update form of a create contract. Bind projects the
// canonical record onto a typed struct.
package dsl
