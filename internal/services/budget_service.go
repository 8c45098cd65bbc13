package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finanzas/internal/core"
	"finanzas/internal/storage"

	"github.com/shopspring/decimal"
)

// BudgetService manages per-category spending limits and evaluates monthly
// spend against them.
type BudgetService struct {
	store *storage.Repository
	agg   *AggregationService
	now   func() time.Time
}

func NewBudgetService(store *storage.Repository, agg *AggregationService) *BudgetService {
	return &BudgetService{store: store, agg: agg, now: time.Now}
}

// Save upserts the limit for a category, replacing any prior one. The
// current month and year are stamped on the row; there is no per-month
// history.
func (s *BudgetService) Save(ctx context.Context, category string, limit decimal.Decimal) error {
	now := s.now()
	b := core.Budget{
		Category: category,
		Limit:    limit,
		Month:    int(now.Month()),
		Year:     now.Year(),
	}
	if b.Category == "" {
		return core.ErrEmptyCategory
	}
	if !b.Limit.IsPositive() {
		return core.ErrInvalidAmount
	}
	return s.store.SaveBudget(ctx, b)
}

// Evaluate compares a category's spend for the given month against its
// configured limit. A category without a budget row reports no_limit.
func (s *BudgetService) Evaluate(ctx context.Context, category string, month, year int) (core.BudgetReport, error) {
	spent, err := s.agg.CategorySpend(ctx, category, month, year)
	if err != nil {
		return core.BudgetReport{}, fmt.Errorf("evaluate budget: %w", err)
	}

	budget, err := s.store.GetBudgetByCategory(ctx, category)
	if errors.Is(err, core.ErrNotFound) {
		return core.ClassifyBudget(category, spent, decimal.Zero), nil
	}
	if err != nil {
		return core.BudgetReport{}, fmt.Errorf("evaluate budget: %w", err)
	}

	return core.ClassifyBudget(category, spent, budget.Limit), nil
}

// EvaluateCurrent evaluates against the current calendar month.
func (s *BudgetService) EvaluateCurrent(ctx context.Context, category string) (core.BudgetReport, error) {
	now := s.now()
	return s.Evaluate(ctx, category, int(now.Month()), now.Year())
}

// EvaluateAll reports every configured budget for the given month.
func (s *BudgetService) EvaluateAll(ctx context.Context, month, year int) ([]core.BudgetReport, error) {
	budgets, err := s.store.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluate budgets: %w", err)
	}

	out := make([]core.BudgetReport, 0, len(budgets))
	for _, b := range budgets {
		spent, err := s.agg.CategorySpend(ctx, b.Category, month, year)
		if err != nil {
			return nil, fmt.Errorf("evaluate budgets: %w", err)
		}
		out = append(out, core.ClassifyBudget(b.Category, spent, b.Limit))
	}
	return out, nil
}

func (s *BudgetService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteBudget(ctx, id)
}
