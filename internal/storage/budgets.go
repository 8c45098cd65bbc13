package storage

import (
	"context"
	"fmt"
	"log/slog"

	"finanzas/internal/core"
)

// SaveBudget upserts keyed by category: saving a category that already has
// a budget replaces its limit unconditionally. Month and year are stamped
// with the save time; no per-month history is kept.
func (r *Repository) SaveBudget(ctx context.Context, b core.Budget) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO budgets (category, spending_limit, month, year) VALUES (?, ?, ?, ?)",
		b.Category, b.Limit.String(), b.Month, b.Year)
	if err != nil {
		return fmt.Errorf("save budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget saved",
		"category", b.Category,
		"limit", b.Limit)

	return nil
}

func (r *Repository) GetBudgetByCategory(ctx context.Context, category string) (core.Budget, error) {
	var b core.Budget
	err := r.db.QueryRowContext(ctx,
		"SELECT id, category, spending_limit, month, year FROM budgets WHERE category = ?", category).
		Scan(&b.ID, &b.Category, &b.Limit, &b.Month, &b.Year)
	if err != nil {
		return core.Budget{}, fmt.Errorf("get budget for %q: %w", category, notFound(err))
	}
	return b, nil
}

func (r *Repository) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, category, spending_limit, month, year FROM budgets ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var out []core.Budget
	for rows.Next() {
		var b core.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.Limit, &b.Month, &b.Year); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repository) DeleteBudget(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM budgets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete budget %d: %w", id, err)
	}
	return requireRow(res, id, "budget")
}
