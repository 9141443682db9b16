package finance

import (
	"regexp"

	"github.com/reoring/finskema/dsl"
)

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Shared field shapes. Every contract composes these instead of restating
// bounds, so one concept has one rule everywhere it appears.

func nameField() dsl.AnyAdapter { return dsl.String().Min(1).Max(200) }

func notesField() dsl.AnyAdapter { return dsl.String().Max(1000) }

func descriptionField() dsl.AnyAdapter { return dsl.String().Min(1).Max(500) }

func idField() dsl.AnyAdapter { return dsl.UUID() }

// optionalIDField treats "" as "not linked".
func optionalIDField() dsl.AnyAdapter { return dsl.UUID().EmptyAsAbsent() }

func dateField() dsl.AnyAdapter {
	return dsl.Date().Describe("ISO-8601 date or timestamp")
}

func moneyField() dsl.AnyAdapter { return dsl.Number() }

func positiveMoneyField() dsl.AnyAdapter { return dsl.Number().Positive() }

func nonNegativeMoneyField() dsl.AnyAdapter { return dsl.Number().NonNegative() }

func percentField() dsl.AnyAdapter { return dsl.Number().Min(0).Max(100).Describe("percent") }

func tagsField() dsl.AnyAdapter {
	return dsl.Array(dsl.String().Min(1).Max(50)).Max(20).Transform(dsl.Unique).
		Describe("labels; repeats are dropped")
}

var metadataContract = dsl.Object().Title("metadata").
	Field("source", dsl.Enum(MetadataSources...)).Optional().
	Field("externalId", dsl.String().Max(200)).Optional().
	Field("importedAt", dsl.Date()).Optional().
	MustBuild()

func metadataField() dsl.AnyAdapter {
	return dsl.Nested(metadataContract).Describe("import provenance")
}
