package finance

import (
	"context"

	"github.com/reoring/finskema"
	"github.com/reoring/finskema/dsl"
)

// Entity is the untyped view of a contract pair, used by the registry, batch
// validation and the CLI.
type Entity interface {
	Name() string
	Schema(op finskema.Operation) *dsl.ObjectSchema
	Canonical(ctx context.Context, op finskema.Operation, raw any) (map[string]any, error)
}

// Contract pairs the create contract of an entity with its derived update
// contract and their typed projections.
type Contract[C, U any] struct {
	name   string
	create *dsl.ObjectSchema
	update *dsl.ObjectSchema
	typedC finskema.Schema[C]
	typedU finskema.Schema[U]
}

var _ Entity = (*Contract[Transaction, TransactionPatch])(nil)

func newContract[C, U any](create *dsl.ObjectSchema) *Contract[C, U] {
	update := dsl.Partial(create)
	return &Contract[C, U]{
		name:   create.Title(),
		create: create,
		update: update,
		typedC: dsl.MustBind[C](create),
		typedU: dsl.MustBind[U](update),
	}
}

func (c *Contract[C, U]) Name() string { return c.name }

// ValidateCreate checks a full record and returns it in canonical typed form.
func (c *Contract[C, U]) ValidateCreate(ctx context.Context, raw any) (C, error) {
	return c.typedC.Parse(ctx, raw)
}

// ValidateUpdate checks a partial record. Only supplied fields are judged.
func (c *Contract[C, U]) ValidateUpdate(ctx context.Context, raw any) (U, error) {
	return c.typedU.Parse(ctx, raw)
}

// ValidateUpdateWithMeta is ValidateUpdate plus presence flags. A Patch
// field is nil both when it was left out and when it was sent as null or
// collapsed from ""; Presence tells them apart (PresenceWasNull marks an
// explicit clear).
func (c *Contract[C, U]) ValidateUpdateWithMeta(ctx context.Context, raw any) (finskema.Decoded[U], error) {
	return c.typedU.ParseWithMeta(ctx, raw)
}

// CheckCreate is ValidateCreate folded into a Result.
func (c *Contract[C, U]) CheckCreate(ctx context.Context, raw any) finskema.Result[C] {
	return finskema.Check(ctx, c.typedC, raw)
}

// CheckUpdate is ValidateUpdate folded into a Result.
func (c *Contract[C, U]) CheckUpdate(ctx context.Context, raw any) finskema.Result[U] {
	return finskema.Check(ctx, c.typedU, raw)
}

func (c *Contract[C, U]) CreateSchema() *dsl.ObjectSchema { return c.create }
func (c *Contract[C, U]) UpdateSchema() *dsl.ObjectSchema { return c.update }

// CanonicalCreate returns the canonical record as a map, suitable for
// re-encoding or for a second validation pass.
func (c *Contract[C, U]) CanonicalCreate(ctx context.Context, raw any) (map[string]any, error) {
	return c.create.Parse(ctx, raw)
}

func (c *Contract[C, U]) CanonicalUpdate(ctx context.Context, raw any) (map[string]any, error) {
	return c.update.Parse(ctx, raw)
}

func (c *Contract[C, U]) Schema(op finskema.Operation) *dsl.ObjectSchema {
	if op == finskema.OpUpdate {
		return c.update
	}
	return c.create
}

func (c *Contract[C, U]) Canonical(ctx context.Context, op finskema.Operation, raw any) (map[string]any, error) {
	return c.Schema(op).Parse(ctx, raw)
}

var (
	Transactions   = newContract[Transaction, TransactionPatch](transactionContract)
	Accounts       = newContract[Account, AccountPatch](accountContract)
	Categories     = newContract[Category, CategoryPatch](categoryContract)
	Assets         = newContract[Asset, AssetPatch](assetContract)
	Liabilities    = newContract[Liability, LiabilityPatch](liabilityContract)
	Payments       = newContract[Payment, PaymentPatch](paymentContract)
	Goals          = newContract[Goal, GoalPatch](goalContract)
	Budgets        = newContract[Budget, BudgetPatch](budgetContract)
	RecurringRules = newContract[RecurringRule, RecurringRulePatch](recurringContract)
)

var registry = []Entity{
	Transactions, Accounts, Categories, Assets, Liabilities, Payments, Goals, Budgets, RecurringRules,
}

// Entities returns every contract in a stable order.
func Entities() []Entity { return append([]Entity(nil), registry...) }

// Lookup finds a contract by name ("transaction", "liability", ...).
func Lookup(name string) (Entity, bool) {
	for _, e := range registry {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}
