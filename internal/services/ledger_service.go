// Package services holds the application operations the presentation layer
// drives: ledger CRUD behind the validation boundary, aggregation reads,
// payoff transitions, budget evaluation, transfers, and settings.
package services

import (
	"context"
	"fmt"
	"time"

	"finanzas/internal/core"
	"finanzas/internal/storage"

	"github.com/shopspring/decimal"
)

// LedgerService is the input boundary for entity CRUD. Every write is
// validated here before it can reach the store; the aggregation and payoff
// logic below this layer never sees a malformed row.
type LedgerService struct {
	store *storage.Repository
	now   func() time.Time
}

func NewLedgerService(store *storage.Repository) *LedgerService {
	return &LedgerService{store: store, now: time.Now}
}

func (s *LedgerService) AddTransaction(ctx context.Context, kind core.MovementKind, category string, amount decimal.Decimal, description string) (int64, error) {
	t := core.Transaction{
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Description: description,
		Timestamp:   s.now(),
	}
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("validate transaction: %w", err)
	}
	return s.store.CreateTransaction(ctx, t)
}

func (s *LedgerService) EditTransaction(ctx context.Context, id int64, kind core.MovementKind, category string, amount decimal.Decimal, description string) error {
	t := core.Transaction{
		ID:          id,
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Description: description,
		Timestamp:   s.now(), // not persisted by the update; edits keep the original entry time
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validate transaction: %w", err)
	}
	return s.store.UpdateTransaction(ctx, t)
}

func (s *LedgerService) RemoveTransaction(ctx context.Context, id int64) error {
	return s.store.DeleteTransaction(ctx, id)
}

func (s *LedgerService) AddSubscription(ctx context.Context, name string, monthlyAmount decimal.Decimal, billingDay int) (int64, error) {
	sub := core.Subscription{Name: name, MonthlyAmount: monthlyAmount, BillingDay: billingDay, Active: true}
	if err := sub.Validate(); err != nil {
		return 0, fmt.Errorf("validate subscription: %w", err)
	}
	return s.store.CreateSubscription(ctx, sub)
}

func (s *LedgerService) EditSubscription(ctx context.Context, id int64, name string, monthlyAmount decimal.Decimal, billingDay int) error {
	sub := core.Subscription{ID: id, Name: name, MonthlyAmount: monthlyAmount, BillingDay: billingDay, Active: true}
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("validate subscription: %w", err)
	}
	return s.store.UpdateSubscription(ctx, sub)
}

func (s *LedgerService) RemoveSubscription(ctx context.Context, id int64) error {
	return s.store.DeactivateSubscription(ctx, id)
}

func (s *LedgerService) AddLoan(ctx context.Context, lender string, principal, monthlyInstallment decimal.Decimal, dueDay int) (int64, error) {
	l := core.Loan{
		Lender:             lender,
		Principal:          principal,
		MonthlyInstallment: monthlyInstallment,
		DueDay:             dueDay,
		StartDate:          s.now(),
		Active:             true,
	}
	if err := l.Validate(); err != nil {
		return 0, fmt.Errorf("validate loan: %w", err)
	}
	return s.store.CreateLoan(ctx, l)
}

func (s *LedgerService) EditLoan(ctx context.Context, id int64, lender string, principal, monthlyInstallment decimal.Decimal, dueDay int) error {
	l := core.Loan{
		ID:                 id,
		Lender:             lender,
		Principal:          principal,
		MonthlyInstallment: monthlyInstallment,
		DueDay:             dueDay,
		Active:             true,
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("validate loan: %w", err)
	}
	return s.store.UpdateLoan(ctx, l)
}

func (s *LedgerService) RemoveLoan(ctx context.Context, id int64) error {
	return s.store.DeactivateLoan(ctx, id)
}

// AddCreditPurchase derives the fixed installment once, here, and stores
// it alongside the purchase.
func (s *LedgerService) AddCreditPurchase(ctx context.Context, description, lender string, principal decimal.Decimal, termMonths int, monthlyRate decimal.Decimal) (int64, error) {
	c := core.CreditPurchase{
		Description:  description,
		Lender:       lender,
		Principal:    principal,
		TermMonths:   termMonths,
		PurchaseDate: s.now(),
		MonthlyRate:  monthlyRate,
	}
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("validate credit purchase: %w", err)
	}
	c.MonthlyInstallment = core.MonthlyInstallment(principal, termMonths, monthlyRate)
	return s.store.CreateCreditPurchase(ctx, c)
}

// EditCreditPurchase recomputes the installment for the new terms.
func (s *LedgerService) EditCreditPurchase(ctx context.Context, id int64, description, lender string, principal decimal.Decimal, termMonths int, monthlyRate decimal.Decimal) error {
	c := core.CreditPurchase{
		ID:          id,
		Description: description,
		Lender:      lender,
		Principal:   principal,
		TermMonths:  termMonths,
		MonthlyRate: monthlyRate,
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validate credit purchase: %w", err)
	}
	c.MonthlyInstallment = core.MonthlyInstallment(principal, termMonths, monthlyRate)
	return s.store.UpdateCreditPurchase(ctx, c)
}

func (s *LedgerService) RemoveCreditPurchase(ctx context.Context, id int64) error {
	return s.store.MarkCreditPaid(ctx, id)
}

func (s *LedgerService) AddSavingsGoal(ctx context.Context, name string, target decimal.Decimal) (int64, error) {
	g := core.SavingsGoal{Name: name, TargetAmount: target, StartDate: s.now()}
	if err := g.Validate(); err != nil {
		return 0, fmt.Errorf("validate savings goal: %w", err)
	}
	return s.store.CreateSavingsGoal(ctx, g)
}

func (s *LedgerService) EditSavingsGoal(ctx context.Context, id int64, name string, target decimal.Decimal) error {
	g := core.SavingsGoal{ID: id, Name: name, TargetAmount: target}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("validate savings goal: %w", err)
	}
	return s.store.UpdateSavingsGoal(ctx, g)
}

func (s *LedgerService) RemoveSavingsGoal(ctx context.Context, id int64) error {
	return s.store.CompleteGoal(ctx, id)
}

func (s *LedgerService) AddBankAccount(ctx context.Context, bankName string, accountType core.AccountType, initialBalance, creditLimit decimal.Decimal) (int64, error) {
	a := core.BankAccount{
		BankName:    bankName,
		AccountType: accountType,
		Balance:     initialBalance,
		CreditLimit: creditLimit,
		CreatedDate: s.now(),
		Active:      true,
	}
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("validate bank account: %w", err)
	}
	return s.store.CreateBankAccount(ctx, a)
}

func (s *LedgerService) EditBankAccount(ctx context.Context, id int64, bankName string, accountType core.AccountType, creditLimit decimal.Decimal) error {
	a := core.BankAccount{
		ID:          id,
		BankName:    bankName,
		AccountType: accountType,
		CreditLimit: creditLimit,
		Active:      true,
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("validate bank account: %w", err)
	}
	return s.store.UpdateBankAccount(ctx, a)
}

func (s *LedgerService) RemoveBankAccount(ctx context.Context, id int64) error {
	return s.store.DeactivateAccount(ctx, id)
}
