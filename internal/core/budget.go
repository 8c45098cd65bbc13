package core

import "github.com/shopspring/decimal"

const (
	BudgetNoLimit BudgetStatus = "no_limit"
	BudgetUnder   BudgetStatus = "under"
	BudgetNear    BudgetStatus = "near"
	BudgetOver    BudgetStatus = "over"
)

// nearThreshold is the spent/limit ratio at which a budget counts as
// close to its limit.
var nearThreshold = decimal.RequireFromString("0.8")

type (
	BudgetStatus string

	// BudgetReport compares a category's monthly spend against its limit.
	BudgetReport struct {
		Category string
		Limit    decimal.Decimal
		Spent    decimal.Decimal
		Ratio    decimal.Decimal
		Status   BudgetStatus
	}
)

// ClassifyBudget builds the report for one category. A non-positive limit
// means no budget row exists for the category; the ratio is left at zero.
// Bands are inclusive on their lower edge: ratio >= 1.0 is over,
// ratio >= 0.8 is near, anything below is under.
func ClassifyBudget(category string, spent, limit decimal.Decimal) BudgetReport {
	report := BudgetReport{Category: category, Limit: limit, Spent: spent}
	if !limit.IsPositive() {
		report.Status = BudgetNoLimit
		return report
	}
	report.Ratio = spent.Div(limit)
	switch {
	case report.Ratio.GreaterThanOrEqual(one):
		report.Status = BudgetOver
	case report.Ratio.GreaterThanOrEqual(nearThreshold):
		report.Status = BudgetNear
	default:
		report.Status = BudgetUnder
	}
	return report
}
