package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finanzas/internal/core"

	"github.com/shopspring/decimal"
)

const goalColumns = "id, name, target_amount, current_amount, start_date, completed"

func (r *Repository) CreateSavingsGoal(ctx context.Context, g core.SavingsGoal) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO savings_goals (name, target_amount, current_amount, start_date, completed) VALUES (?, ?, '0', ?, 0)",
		g.Name, g.TargetAmount.String(), g.StartDate.Format(core.DateLayout))
	if err != nil {
		return 0, fmt.Errorf("create savings goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("savings goal insert id: %w", err)
	}

	slog.InfoContext(ctx, "Savings goal saved",
		"id", id,
		"name", g.Name,
		"target_amount", g.TargetAmount)

	return id, nil
}

func (r *Repository) GetSavingsGoal(ctx context.Context, id int64) (core.SavingsGoal, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+goalColumns+" FROM savings_goals WHERE id = ?", id)
	g, err := scanGoal(row)
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("get savings goal %d: %w", id, notFound(err))
	}
	return g, nil
}

// ListOpenGoals returns goals still in progress, most recently started
// first.
func (r *Repository) ListOpenGoals(ctx context.Context) ([]core.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+goalColumns+" FROM savings_goals WHERE completed = 0 ORDER BY start_date DESC")
	if err != nil {
		return nil, fmt.Errorf("list savings goals: %w", err)
	}
	defer rows.Close()

	var out []core.SavingsGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan savings goal: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateSavingsGoal(ctx context.Context, g core.SavingsGoal) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE savings_goals SET name = ?, target_amount = ? WHERE id = ?",
		g.Name, g.TargetAmount.String(), g.ID)
	if err != nil {
		return fmt.Errorf("update savings goal %d: %w", g.ID, err)
	}
	return requireRow(res, g.ID, "savings goal")
}

// SaveGoalProgress persists the outcome of a deposit or withdrawal
// transition.
func (r *Repository) SaveGoalProgress(ctx context.Context, id int64, current decimal.Decimal, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE savings_goals SET current_amount = ?, completed = ? WHERE id = ?",
		current.String(), completed, id)
	if err != nil {
		return fmt.Errorf("save goal progress %d: %w", id, err)
	}
	return requireRow(res, id, "savings goal")
}

// CompleteGoal soft-deletes by forcing the completed flag, the same
// terminal state a reached target produces.
func (r *Repository) CompleteGoal(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE savings_goals SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("complete savings goal %d: %w", id, err)
	}
	return requireRow(res, id, "savings goal")
}

func scanGoal(row rowScanner) (core.SavingsGoal, error) {
	var (
		g     core.SavingsGoal
		start string
	)
	if err := row.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &start, &g.Completed); err != nil {
		return core.SavingsGoal{}, err
	}
	parsed, err := time.Parse(core.DateLayout, start)
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("parse start date %q: %w", start, err)
	}
	g.StartDate = parsed
	return g, nil
}
