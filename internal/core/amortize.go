package core

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// MonthlyInstallment computes the fixed monthly payment for a principal
// amortized over termMonths at monthlyRate percent per month.
//
// With a zero rate the installment is a straight division of the principal.
// With a positive rate it applies the annuity formula
//
//	P * (r * (1+r)^n) / ((1+r)^n - 1)   where r = monthlyRate/100
//
// rounded half-up to cents. A non-positive term returns the principal
// itself; callers validate the term before reaching this function, so the
// fallback only matters for malformed historical rows. Negative rates are
// rejected at the input boundary, not here.
func MonthlyInstallment(principal decimal.Decimal, termMonths int, monthlyRate decimal.Decimal) decimal.Decimal {
	if termMonths <= 0 {
		return principal
	}
	n := decimal.NewFromInt(int64(termMonths))
	if monthlyRate.IsZero() {
		return principal.Div(n).Round(2)
	}
	r := monthlyRate.Div(hundred)
	compound := one.Add(r).Pow(n)
	return principal.Mul(r).Mul(compound).Div(compound.Sub(one)).Round(2)
}

// RemainingBalance reports how many installments are left on a plan and
// the amount still owed at the stored installment. Both are non-negative
// as long as monthsPaid never exceeds termMonths, an invariant the payoff
// transitions maintain.
func RemainingBalance(termMonths, monthsPaid int, installment decimal.Decimal) (int, decimal.Decimal) {
	remaining := termMonths - monthsPaid
	return remaining, installment.Mul(decimal.NewFromInt(int64(remaining)))
}
