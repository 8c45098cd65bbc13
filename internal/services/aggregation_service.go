package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"finanzas/internal/core"
	"finanzas/internal/storage"

	"github.com/shopspring/decimal"
)

// AggregationService derives balances, reports, and recurring totals from
// the store's current contents. Every call recomputes from scratch; there
// is no caching and nothing here ever writes.
type AggregationService struct {
	store *storage.Repository
	now   func() time.Time
}

func NewAggregationService(store *storage.Repository) *AggregationService {
	return &AggregationService{store: store, now: time.Now}
}

// OverallBalance sums the whole transaction ledger, split by kind.
// An empty store yields zeros.
func (s *AggregationService) OverallBalance(ctx context.Context) (core.Balance, error) {
	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		return core.Balance{}, fmt.Errorf("overall balance: %w", err)
	}
	return sumByKind(transactions), nil
}

// MonthlyBalance sums the transactions of one calendar month, split by
// kind. A transaction on the first or last day of the month counts; one a
// day outside it does not.
func (s *AggregationService) MonthlyBalance(ctx context.Context, month, year int) (income, expense decimal.Decimal, err error) {
	transactions, err := s.store.MonthTransactions(ctx, month, year)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("monthly balance: %w", err)
	}
	b := sumByKind(transactions)
	return b.Income, b.Expense, nil
}

// SpendByCategory sums a month's expenses per category, descending by
// total. Categories with equal totals keep the store's iteration order,
// which is stable but not part of the contract.
func (s *AggregationService) SpendByCategory(ctx context.Context, month, year int) ([]core.CategoryTotal, error) {
	transactions, err := s.store.MonthTransactions(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("spend by category: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range transactions {
		if t.Kind != core.Expense {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	out := make([]core.CategoryTotal, 0, len(order))
	for _, category := range order {
		out = append(out, core.CategoryTotal{Category: category, Total: totals[category]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out, nil
}

// CategorySpend is the single-category cut of SpendByCategory, used by the
// budget evaluator.
func (s *AggregationService) CategorySpend(ctx context.Context, category string, month, year int) (decimal.Decimal, error) {
	transactions, err := s.store.MonthTransactions(ctx, month, year)
	if err != nil {
		return decimal.Zero, fmt.Errorf("category spend: %w", err)
	}
	total := decimal.Zero
	for _, t := range transactions {
		if t.Kind == core.Expense && t.Category == category {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

// TrailingMonths produces exactly n entries walking backward from the
// current month. Each step back subtracts a fixed 30 days rather than one
// calendar month, so over long windows the labels drift off true month
// boundaries; display code keys on the step index, not the label.
func (s *AggregationService) TrailingMonths(ctx context.Context, n int) ([]core.MonthSummary, error) {
	now := s.now()
	out := make([]core.MonthSummary, 0, n)

	for i := n - 1; i >= 0; i-- {
		at := now.AddDate(0, 0, -i*30)
		income, expense, err := s.MonthlyBalance(ctx, int(at.Month()), at.Year())
		if err != nil {
			return nil, fmt.Errorf("trailing months: %w", err)
		}
		out = append(out, core.MonthSummary{
			MonthLabel: at.Format("Jan"),
			Year:       at.Year(),
			Income:     income,
			Expense:    expense,
		})
	}
	return out, nil
}

// SubscriptionsTotal sums the monthly amount of every active subscription.
func (s *AggregationService) SubscriptionsTotal(ctx context.Context) (decimal.Decimal, error) {
	subs, err := s.store.ListActiveSubscriptions(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("subscriptions total: %w", err)
	}
	total := decimal.Zero
	for _, sub := range subs {
		total = total.Add(sub.MonthlyAmount)
	}
	return total, nil
}

// LoanInstallmentsTotal sums the monthly installments of active loans.
func (s *AggregationService) LoanInstallmentsTotal(ctx context.Context) (decimal.Decimal, error) {
	loans, err := s.store.ListActiveLoans(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("loan installments total: %w", err)
	}
	total := decimal.Zero
	for _, l := range loans {
		total = total.Add(l.MonthlyInstallment)
	}
	return total, nil
}

// LoanDebtTotal sums what is still owed across active loans.
func (s *AggregationService) LoanDebtTotal(ctx context.Context) (decimal.Decimal, error) {
	loans, err := s.store.ListActiveLoans(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("loan debt total: %w", err)
	}
	total := decimal.Zero
	for _, l := range loans {
		total = total.Add(l.Principal.Sub(l.AmountPaid))
	}
	return total, nil
}

// CreditInstallmentsTotal sums the monthly installments of unpaid credit
// purchases.
func (s *AggregationService) CreditInstallmentsTotal(ctx context.Context) (decimal.Decimal, error) {
	credits, err := s.store.ListUnpaidCredits(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("credit installments total: %w", err)
	}
	total := decimal.Zero
	for _, c := range credits {
		total = total.Add(c.MonthlyInstallment)
	}
	return total, nil
}

// CreditDebtTotal sums the remaining balances of unpaid credit purchases
// at their stored installments.
func (s *AggregationService) CreditDebtTotal(ctx context.Context) (decimal.Decimal, error) {
	credits, err := s.store.ListUnpaidCredits(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("credit debt total: %w", err)
	}
	total := decimal.Zero
	for _, c := range credits {
		_, balance := core.RemainingBalance(c.TermMonths, c.MonthsPaid, c.MonthlyInstallment)
		total = total.Add(balance)
	}
	return total, nil
}

// SavingsTotal sums the current amounts of goals still in progress.
func (s *AggregationService) SavingsTotal(ctx context.Context) (decimal.Decimal, error) {
	goals, err := s.store.ListOpenGoals(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("savings total: %w", err)
	}
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(g.CurrentAmount)
	}
	return total, nil
}

// BankBalanceTotal sums the balances of active accounts. Bank balances are
// stored value, reported separately; they never feed AvailableFunds.
func (s *AggregationService) BankBalanceTotal(ctx context.Context) (decimal.Decimal, error) {
	accounts, err := s.store.ListActiveAccounts(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bank balance total: %w", err)
	}
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total, nil
}

// AvailableFunds is the net ledger balance minus every recurring monthly
// obligation: subscriptions, loan installments, and credit installments.
func (s *AggregationService) AvailableFunds(ctx context.Context) (decimal.Decimal, error) {
	balance, err := s.OverallBalance(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	obligations, err := s.monthlyObligations(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Net.Sub(obligations), nil
}

// MonthlyAvailable is a month's income minus its expenses and the fixed
// monthly obligations.
func (s *AggregationService) MonthlyAvailable(ctx context.Context, month, year int) (decimal.Decimal, error) {
	income, expense, err := s.MonthlyBalance(ctx, month, year)
	if err != nil {
		return decimal.Zero, err
	}
	obligations, err := s.monthlyObligations(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expense).Sub(obligations), nil
}

func (s *AggregationService) monthlyObligations(ctx context.Context) (decimal.Decimal, error) {
	subs, err := s.SubscriptionsTotal(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	loans, err := s.LoanInstallmentsTotal(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	credits, err := s.CreditInstallmentsTotal(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return subs.Add(loans).Add(credits), nil
}

func sumByKind(transactions []core.Transaction) core.Balance {
	b := core.Balance{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range transactions {
		switch t.Kind {
		case core.Income:
			b.Income = b.Income.Add(t.Amount)
		case core.Expense:
			b.Expense = b.Expense.Add(t.Amount)
		}
	}
	b.Net = b.Income.Sub(b.Expense)
	return b
}
