// Package finance holds the entity contracts of the personal-finance domain:
// transactions, accounts, categories, assets, liabilities, liability payments,
// goals, budgets and recurring-transaction rules.
//
// Each entity is a Contract pairing a create contract with the update
// contract derived from it by dsl.Partial, so a value rejected on create is
// rejected on update as well. Contracts are built at package init and are
// safe for concurrent use.
//
//	tx, err := finance.Transactions.ValidateCreate(ctx, raw)
//	if iss, ok := finskema.AsIssues(err); ok {
//		// surface iss.ByPath() as form errors
//	}
package finance
