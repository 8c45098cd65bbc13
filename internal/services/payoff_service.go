package services

import (
	"context"
	"fmt"
	"log/slog"

	"finanzas/internal/core"
	"finanzas/internal/storage"

	"github.com/shopspring/decimal"
)

// PayoffService advances the loan, credit-purchase, and savings-goal
// lifecycles: it loads the row, applies the pure transition from core, and
// persists the result. A missing id surfaces as core.ErrNotFound.
type PayoffService struct {
	store *storage.Repository
}

func NewPayoffService(store *storage.Repository) *PayoffService {
	return &PayoffService{store: store}
}

// RegisterLoanPayment accumulates a payment against a loan and returns the
// updated row. Payments that reach the principal close the loan.
func (s *PayoffService) RegisterLoanPayment(ctx context.Context, id int64, amount decimal.Decimal) (core.Loan, error) {
	if !amount.IsPositive() {
		return core.Loan{}, core.ErrInvalidAmount
	}
	loan, err := s.store.GetLoan(ctx, id)
	if err != nil {
		return core.Loan{}, err
	}

	loan = core.ApplyLoanPayment(loan, amount)
	if err := s.store.SaveLoanProgress(ctx, id, loan.AmountPaid, loan.Active); err != nil {
		return core.Loan{}, err
	}

	if !loan.Active {
		slog.InfoContext(ctx, "Loan paid off", "id", id, "lender", loan.Lender, "principal", loan.Principal)
	}
	return loan, nil
}

// RegisterCreditPayment advances a credit purchase by one monthly
// installment. Paying the final month marks the purchase paid; calling it
// again reports core.ErrCreditAlreadyPaid.
func (s *PayoffService) RegisterCreditPayment(ctx context.Context, id int64) (core.CreditPurchase, error) {
	credit, err := s.store.GetCreditPurchase(ctx, id)
	if err != nil {
		return core.CreditPurchase{}, err
	}
	if credit.Paid {
		return core.CreditPurchase{}, fmt.Errorf("credit purchase %d: %w", id, core.ErrCreditAlreadyPaid)
	}

	credit = core.AdvanceCreditMonth(credit)
	if err := s.store.SaveCreditProgress(ctx, id, credit.MonthsPaid, credit.Paid); err != nil {
		return core.CreditPurchase{}, err
	}

	if credit.Paid {
		slog.InfoContext(ctx, "Credit purchase paid off", "id", id, "lender", credit.Lender, "term_months", credit.TermMonths)
	}
	return credit, nil
}

// DepositToGoal adds to a savings goal, completing it when the target is
// reached.
func (s *PayoffService) DepositToGoal(ctx context.Context, id int64, amount decimal.Decimal) (core.SavingsGoal, error) {
	if !amount.IsPositive() {
		return core.SavingsGoal{}, core.ErrInvalidAmount
	}
	goal, err := s.store.GetSavingsGoal(ctx, id)
	if err != nil {
		return core.SavingsGoal{}, err
	}

	goal = core.ApplyGoalDeposit(goal, amount)
	if err := s.store.SaveGoalProgress(ctx, id, goal.CurrentAmount, goal.Completed); err != nil {
		return core.SavingsGoal{}, err
	}

	if goal.Completed {
		slog.InfoContext(ctx, "Savings goal completed", "id", id, "name", goal.Name, "target_amount", goal.TargetAmount)
	}
	return goal, nil
}

// WithdrawFromGoal removes from a savings goal, flooring at zero. The
// completion flag is never cleared by a withdrawal.
func (s *PayoffService) WithdrawFromGoal(ctx context.Context, id int64, amount decimal.Decimal) (core.SavingsGoal, error) {
	if !amount.IsPositive() {
		return core.SavingsGoal{}, core.ErrInvalidAmount
	}
	goal, err := s.store.GetSavingsGoal(ctx, id)
	if err != nil {
		return core.SavingsGoal{}, err
	}

	goal = core.ApplyGoalWithdrawal(goal, amount)
	if err := s.store.SaveGoalProgress(ctx, id, goal.CurrentAmount, goal.Completed); err != nil {
		return core.SavingsGoal{}, err
	}
	return goal, nil
}
