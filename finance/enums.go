package finance

// TransactionType classifies money movement. Recurring rules reuse it.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

var TransactionTypes = []TransactionType{TransactionIncome, TransactionExpense, TransactionTransfer}

type AccountType string

const (
	AccountCurrent         AccountType = "current"
	AccountSavings         AccountType = "savings"
	AccountISA             AccountType = "isa"
	AccountStocksSharesISA AccountType = "stocks_and_shares_isa"
	AccountCredit          AccountType = "credit"
	AccountInvestment      AccountType = "investment"
	AccountLoan            AccountType = "loan"
	AccountAsset           AccountType = "asset"
	AccountLiability       AccountType = "liability"
)

var AccountTypes = []AccountType{
	AccountCurrent, AccountSavings, AccountISA, AccountStocksSharesISA, AccountCredit,
	AccountInvestment, AccountLoan, AccountAsset, AccountLiability,
}

type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

var CategoryTypes = []CategoryType{CategoryIncome, CategoryExpense}

type AssetType string

const (
	AssetHousing          AssetType = "housing"
	AssetInvestment       AssetType = "investment"
	AssetVehicle          AssetType = "vehicle"
	AssetBusiness         AssetType = "business"
	AssetPersonalProperty AssetType = "personal_property"
	AssetCrypto           AssetType = "crypto"
)

var AssetTypes = []AssetType{AssetHousing, AssetInvestment, AssetVehicle, AssetBusiness, AssetPersonalProperty, AssetCrypto}

type LiabilityType string

const (
	LiabilityMortgage     LiabilityType = "mortgage"
	LiabilityAutoLoan     LiabilityType = "auto_loan"
	LiabilityStudentLoan  LiabilityType = "student_loan"
	LiabilityCreditCard   LiabilityType = "credit_card"
	LiabilityPersonalLoan LiabilityType = "personal_loan"
	LiabilityLineOfCredit LiabilityType = "line_of_credit"
)

var LiabilityTypes = []LiabilityType{
	LiabilityMortgage, LiabilityAutoLoan, LiabilityStudentLoan,
	LiabilityCreditCard, LiabilityPersonalLoan, LiabilityLineOfCredit,
}

type GoalType string

const (
	GoalSavings    GoalType = "savings"
	GoalDebtPayoff GoalType = "debt_payoff"
	GoalNetWorth   GoalType = "net_worth"
	GoalPurchase   GoalType = "purchase"
	GoalInvestment GoalType = "investment"
	GoalIncome     GoalType = "income"
)

var GoalTypes = []GoalType{GoalSavings, GoalDebtPayoff, GoalNetWorth, GoalPurchase, GoalInvestment, GoalIncome}

type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

var GoalPriorities = []GoalPriority{PriorityLow, PriorityMedium, PriorityHigh}

type BudgetPeriod string

const (
	PeriodMonthly   BudgetPeriod = "monthly"
	PeriodQuarterly BudgetPeriod = "quarterly"
	PeriodAnnual    BudgetPeriod = "annual"
	PeriodCustom    BudgetPeriod = "custom"
)

var BudgetPeriods = []BudgetPeriod{PeriodMonthly, PeriodQuarterly, PeriodAnnual, PeriodCustom}

// Frequency is the cadence of a recurring rule.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
	FrequencyCustom    Frequency = "custom"
)

var Frequencies = []Frequency{
	FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly,
	FrequencyQuarterly, FrequencyAnnually, FrequencyCustom,
}

// MetadataSource records where a record came from.
type MetadataSource string

const (
	SourceManual MetadataSource = "manual"
	SourceImport MetadataSource = "import"
	SourceSync   MetadataSource = "sync"
)

var MetadataSources = []MetadataSource{SourceManual, SourceImport, SourceSync}
