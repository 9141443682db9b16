package finance

import (
	"github.com/reoring/finskema/dsl"
	"github.com/reoring/finskema/rules"
)

var transactionContract = dsl.Object().Title("transaction").
	Field("accountId", idField()).Required().
	Field("categoryId", optionalIDField()).Optional().
	Field("type", dsl.Enum(TransactionTypes...)).Required().
	Field("amount", positiveMoneyField()).Required().
	Field("description", descriptionField()).Required().
	Field("date", dateField()).Required().
	Field("notes", notesField()).Optional().
	Field("tags", tagsField()).Optional().
	Field("transferAccountId", optionalIDField()).Optional().
	Field("isReconciled", dsl.Bool()).Default(false).
	Field("metadata", metadataField()).Optional().
	Refine(rules.Differ("transfer_other_account", "transferAccountId", "accountId")).
	MustBuild()

var accountContract = dsl.Object().Title("account").
	Field("name", nameField()).Required().
	Field("type", dsl.Enum(AccountTypes...)).Required().
	Field("balance", moneyField()).Default(0).
	Field("currency", dsl.String().Pattern(currencyRe, "ISO 4217 currency code")).Default("GBP").
	Field("institution", dsl.String().Max(200).EmptyAsAbsent()).Optional().
	Field("isActive", dsl.Bool()).Default(true).
	Field("notes", notesField()).Optional().
	Field("metadata", metadataField()).Optional().
	MustBuild()

var categoryContract = dsl.Object().Title("category").
	Field("name", dsl.String().Min(1).Max(100)).Required().
	Field("type", dsl.Enum(CategoryTypes...)).Required().
	Field("color", dsl.HexColor()).Required().
	Field("icon", dsl.String().Max(50)).Optional().
	Field("parentId", optionalIDField()).Optional().
	MustBuild()

var assetContract = dsl.Object().Title("asset").
	Field("name", nameField()).Required().
	Field("type", dsl.Enum(AssetTypes...)).Required().
	Field("currentValue", nonNegativeMoneyField()).Required().
	Field("purchasePrice", nonNegativeMoneyField()).Optional().
	Field("purchaseDate", dateField()).Optional().
	Field("annualGrowthRate", dsl.Number().Min(-100).Max(1000)).Optional().
	Field("linkedAccountId", optionalIDField()).Optional().
	Field("notes", notesField()).Optional().
	MustBuild()

var liabilityContract = dsl.Object().Title("liability").
	Field("name", nameField()).Required().
	Field("type", dsl.Enum(LiabilityTypes...)).Required().
	Field("currentBalance", nonNegativeMoneyField()).Required().
	Field("originalAmount", nonNegativeMoneyField()).Optional().
	Field("interestRate", percentField()).Required().
	Field("minimumPayment", nonNegativeMoneyField()).Required().
	Field("openDate", dateField()).Required().
	Field("termEndDate", dateField().Nullable()).Optional().
	Field("lender", dsl.String().Max(200)).Optional().
	Field("linkedAccountId", optionalIDField()).Optional().
	Field("notes", notesField()).Optional().
	Refine(rules.NotBefore("term_end_not_before_open", "termEndDate", "openDate")).
	Refine(rules.If("currentBalance", rules.Gt, 0).
		Then(rules.Compare("minimum_payment_required", "minimumPayment", rules.Gt, 0))).
	MustBuild()

var paymentContract = dsl.Object().Title("payment").
	Field("liabilityId", idField()).Required().
	Field("paymentDate", dateField()).Required().
	Field("principalAmount", nonNegativeMoneyField()).Required().
	Field("interestAmount", nonNegativeMoneyField()).Default(0).
	Field("notes", notesField()).Optional().
	Refine(rules.PositiveSum("payment_total_positive", "principalAmount", "principalAmount", "interestAmount")).
	MustBuild()

var goalContract = dsl.Object().Title("goal").
	Field("name", nameField()).Required().
	Field("type", dsl.Enum(GoalTypes...)).Required().
	Field("targetAmount", positiveMoneyField()).Required().
	Field("currentAmount", nonNegativeMoneyField()).Default(0).
	Field("targetDate", dateField()).Optional().
	Field("priority", dsl.Enum(GoalPriorities...)).Default(PriorityMedium).
	Field("linkedAccountId", optionalIDField()).Optional().
	Field("notes", notesField()).Optional().
	MustBuild()

var budgetContract = dsl.Object().Title("budget").
	Field("name", nameField()).Required().
	Field("categoryId", idField()).Required().
	Field("amount", positiveMoneyField()).Required().
	Field("period", dsl.Enum(BudgetPeriods...)).Required().
	Field("startDate", dateField()).Required().
	Field("endDate", dateField()).Required().
	Field("alertThreshold", percentField()).Default(80).
	Field("rollover", dsl.Bool()).Default(false).
	Field("notes", notesField()).Optional().
	Refine(rules.NotBefore("end_not_before_start", "endDate", "startDate")).
	MustBuild()

var recurringContract = dsl.Object().Title("recurring").
	Field("accountId", idField()).Required().
	Field("categoryId", optionalIDField()).Optional().
	Field("type", dsl.Enum(TransactionTypes...)).Required().
	Field("amount", positiveMoneyField()).Required().
	Field("description", descriptionField()).Required().
	Field("frequency", dsl.Enum(Frequencies...)).Required().
	Field("interval", dsl.Int().Min(1).Max(365)).Default(1).
	Field("startDate", dateField()).Required().
	Field("endDate", dateField()).Optional().
	Field("occurrences", dsl.Int().Min(1).Max(1000)).Optional().
	Field("dayOfMonth", dsl.Int().Min(1).Max(31)).Optional().
	Field("isActive", dsl.Bool()).Default(true).
	Field("notes", notesField()).Optional().
	Refine(rules.Exclusive("end_date_or_occurrences", "endDate", "occurrences")).
	Refine(rules.After("end_after_start", "endDate", "startDate")).
	MustBuild()
