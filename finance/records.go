package finance

import "github.com/shopspring/decimal"

// Typed canonical records. Dates are ISO-8601 text, money is decimal,
// optional fields are pointers (nil when absent). Patch types carry every
// field as optional for partial updates; a nil Patch field does not say
// whether the caller omitted it or sent null, use
// Contract.ValidateUpdateWithMeta when that matters.

type Metadata struct {
	Source     *MetadataSource `json:"source,omitempty"`
	ExternalID *string         `json:"externalId,omitempty"`
	ImportedAt *string         `json:"importedAt,omitempty"`
}

type Transaction struct {
	AccountID         string          `json:"accountId"`
	CategoryID        *string         `json:"categoryId,omitempty"`
	Type              TransactionType `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Date              string          `json:"date"`
	Notes             *string         `json:"notes,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	TransferAccountID *string         `json:"transferAccountId,omitempty"`
	IsReconciled      bool            `json:"isReconciled"`
	Metadata          *Metadata       `json:"metadata,omitempty"`
}

type TransactionPatch struct {
	AccountID         *string          `json:"accountId,omitempty"`
	CategoryID        *string          `json:"categoryId,omitempty"`
	Type              *TransactionType `json:"type,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Date              *string          `json:"date,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	Tags              []string         `json:"tags,omitempty"`
	TransferAccountID *string          `json:"transferAccountId,omitempty"`
	IsReconciled      *bool            `json:"isReconciled,omitempty"`
	Metadata          *Metadata        `json:"metadata,omitempty"`
}

type Account struct {
	Name        string          `json:"name"`
	Type        AccountType     `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Institution *string         `json:"institution,omitempty"`
	IsActive    bool            `json:"isActive"`
	Notes       *string         `json:"notes,omitempty"`
	Metadata    *Metadata       `json:"metadata,omitempty"`
}

type AccountPatch struct {
	Name        *string          `json:"name,omitempty"`
	Type        *AccountType     `json:"type,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Institution *string          `json:"institution,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Metadata    *Metadata        `json:"metadata,omitempty"`
}

type Category struct {
	Name     string       `json:"name"`
	Type     CategoryType `json:"type"`
	Color    string       `json:"color"`
	Icon     *string      `json:"icon,omitempty"`
	ParentID *string      `json:"parentId,omitempty"`
}

type CategoryPatch struct {
	Name     *string       `json:"name,omitempty"`
	Type     *CategoryType `json:"type,omitempty"`
	Color    *string       `json:"color,omitempty"`
	Icon     *string       `json:"icon,omitempty"`
	ParentID *string       `json:"parentId,omitempty"`
}

type Asset struct {
	Name             string           `json:"name"`
	Type             AssetType        `json:"type"`
	CurrentValue     decimal.Decimal  `json:"currentValue"`
	PurchasePrice    *decimal.Decimal `json:"purchasePrice,omitempty"`
	PurchaseDate     *string          `json:"purchaseDate,omitempty"`
	AnnualGrowthRate *decimal.Decimal `json:"annualGrowthRate,omitempty"`
	LinkedAccountID  *string          `json:"linkedAccountId,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

type AssetPatch struct {
	Name             *string          `json:"name,omitempty"`
	Type             *AssetType       `json:"type,omitempty"`
	CurrentValue     *decimal.Decimal `json:"currentValue,omitempty"`
	PurchasePrice    *decimal.Decimal `json:"purchasePrice,omitempty"`
	PurchaseDate     *string          `json:"purchaseDate,omitempty"`
	AnnualGrowthRate *decimal.Decimal `json:"annualGrowthRate,omitempty"`
	LinkedAccountID  *string          `json:"linkedAccountId,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

type Liability struct {
	Name            string           `json:"name"`
	Type            LiabilityType    `json:"type"`
	CurrentBalance  decimal.Decimal  `json:"currentBalance"`
	OriginalAmount  *decimal.Decimal `json:"originalAmount,omitempty"`
	InterestRate    decimal.Decimal  `json:"interestRate"`
	MinimumPayment  decimal.Decimal  `json:"minimumPayment"`
	OpenDate        string           `json:"openDate"`
	TermEndDate     *string          `json:"termEndDate,omitempty"`
	Lender          *string          `json:"lender,omitempty"`
	LinkedAccountID *string          `json:"linkedAccountId,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

type LiabilityPatch struct {
	Name            *string          `json:"name,omitempty"`
	Type            *LiabilityType   `json:"type,omitempty"`
	CurrentBalance  *decimal.Decimal `json:"currentBalance,omitempty"`
	OriginalAmount  *decimal.Decimal `json:"originalAmount,omitempty"`
	InterestRate    *decimal.Decimal `json:"interestRate,omitempty"`
	MinimumPayment  *decimal.Decimal `json:"minimumPayment,omitempty"`
	OpenDate        *string          `json:"openDate,omitempty"`
	TermEndDate     *string          `json:"termEndDate,omitempty"`
	Lender          *string          `json:"lender,omitempty"`
	LinkedAccountID *string          `json:"linkedAccountId,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// Payment is one liability payment split into principal and interest.
type Payment struct {
	LiabilityID     string          `json:"liabilityId"`
	PaymentDate     string          `json:"paymentDate"`
	PrincipalAmount decimal.Decimal `json:"principalAmount"`
	InterestAmount  decimal.Decimal `json:"interestAmount"`
	Notes           *string         `json:"notes,omitempty"`
}

type PaymentPatch struct {
	LiabilityID     *string          `json:"liabilityId,omitempty"`
	PaymentDate     *string          `json:"paymentDate,omitempty"`
	PrincipalAmount *decimal.Decimal `json:"principalAmount,omitempty"`
	InterestAmount  *decimal.Decimal `json:"interestAmount,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

type Goal struct {
	Name            string          `json:"name"`
	Type            GoalType        `json:"type"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	CurrentAmount   decimal.Decimal `json:"currentAmount"`
	TargetDate      *string         `json:"targetDate,omitempty"`
	Priority        GoalPriority    `json:"priority"`
	LinkedAccountID *string         `json:"linkedAccountId,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

type GoalPatch struct {
	Name            *string          `json:"name,omitempty"`
	Type            *GoalType        `json:"type,omitempty"`
	TargetAmount    *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount   *decimal.Decimal `json:"currentAmount,omitempty"`
	TargetDate      *string          `json:"targetDate,omitempty"`
	Priority        *GoalPriority    `json:"priority,omitempty"`
	LinkedAccountID *string          `json:"linkedAccountId,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

type Budget struct {
	Name           string          `json:"name"`
	CategoryID     string          `json:"categoryId"`
	Amount         decimal.Decimal `json:"amount"`
	Period         BudgetPeriod    `json:"period"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	AlertThreshold decimal.Decimal `json:"alertThreshold"`
	Rollover       bool            `json:"rollover"`
	Notes          *string         `json:"notes,omitempty"`
}

type BudgetPatch struct {
	Name           *string          `json:"name,omitempty"`
	CategoryID     *string          `json:"categoryId,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Period         *BudgetPeriod    `json:"period,omitempty"`
	StartDate      *string          `json:"startDate,omitempty"`
	EndDate        *string          `json:"endDate,omitempty"`
	AlertThreshold *decimal.Decimal `json:"alertThreshold,omitempty"`
	Rollover       *bool            `json:"rollover,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// RecurringRule describes a repeating transaction. Occurrence generation
// happens elsewhere.
type RecurringRule struct {
	AccountID   string          `json:"accountId"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Frequency   Frequency       `json:"frequency"`
	Interval    int             `json:"interval"`
	StartDate   string          `json:"startDate"`
	EndDate     *string         `json:"endDate,omitempty"`
	Occurrences *int            `json:"occurrences,omitempty"`
	DayOfMonth  *int            `json:"dayOfMonth,omitempty"`
	IsActive    bool            `json:"isActive"`
	Notes       *string         `json:"notes,omitempty"`
}

type RecurringRulePatch struct {
	AccountID   *string          `json:"accountId,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
	Type        *TransactionType `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Frequency   *Frequency       `json:"frequency,omitempty"`
	Interval    *int             `json:"interval,omitempty"`
	StartDate   *string          `json:"startDate,omitempty"`
	EndDate     *string          `json:"endDate,omitempty"`
	Occurrences *int             `json:"occurrences,omitempty"`
	DayOfMonth  *int             `json:"dayOfMonth,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}
