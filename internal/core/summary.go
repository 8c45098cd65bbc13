package core

import "github.com/shopspring/decimal"

// Balance is the all-time split of the transaction ledger.
type Balance struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// CategoryTotal is an expense sum aggregated by category name.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthSummary is one entry of a trailing-months trend series.
type MonthSummary struct {
	MonthLabel string // abbreviated month name, e.g. "Jan"
	Year       int
	Income     decimal.Decimal
	Expense    decimal.Decimal
}

// TransactionFilter narrows a transaction search. Zero values mean
// "no constraint"; Text matches description or category substrings.
type TransactionFilter struct {
	Text     string
	Category string
	Kind     MovementKind
	From     string // DateLayout or TimestampLayout, inclusive
	To       string
}
