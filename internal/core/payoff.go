package core

import "github.com/shopspring/decimal"

// Payoff transitions. Each function takes the current row, returns the row
// after the transition, and never mutates its input. Persisting the result
// is the caller's job.

// ApplyLoanPayment accumulates a payment. Once the total paid reaches the
// principal the amount is clamped to the principal (an overshooting final
// payment never pushes it past) and the loan leaves the active set.
func ApplyLoanPayment(l Loan, amount decimal.Decimal) Loan {
	l.AmountPaid = l.AmountPaid.Add(amount)
	if l.AmountPaid.GreaterThanOrEqual(l.Principal) {
		l.AmountPaid = l.Principal
		l.Active = false
	}
	return l
}

// AdvanceCreditMonth records one monthly installment payment. The payment
// amount is not a parameter: each call advances exactly one month at the
// stored installment. Reaching the term clamps MonthsPaid and marks the
// purchase paid.
func AdvanceCreditMonth(c CreditPurchase) CreditPurchase {
	c.MonthsPaid++
	if c.MonthsPaid >= c.TermMonths {
		c.MonthsPaid = c.TermMonths
		c.Paid = true
	}
	return c
}

// ApplyGoalDeposit adds to a savings goal, clamping at the target and
// marking the goal completed when it is reached.
func ApplyGoalDeposit(g SavingsGoal, amount decimal.Decimal) SavingsGoal {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.CurrentAmount = g.TargetAmount
		g.Completed = true
	}
	return g
}

// ApplyGoalWithdrawal removes from a savings goal, flooring at zero.
// Completion is never revoked: a completed goal stays completed even if a
// withdrawal drops it back below the target.
func ApplyGoalWithdrawal(g SavingsGoal, amount decimal.Decimal) SavingsGoal {
	g.CurrentAmount = g.CurrentAmount.Sub(amount)
	if g.CurrentAmount.IsNegative() {
		g.CurrentAmount = decimal.Zero
	}
	return g
}
