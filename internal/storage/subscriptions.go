package storage

import (
	"context"
	"fmt"
	"log/slog"

	"finanzas/internal/core"
)

func (r *Repository) CreateSubscription(ctx context.Context, s core.Subscription) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO subscriptions (name, monthly_amount, billing_day, active) VALUES (?, ?, ?, 1)",
		s.Name, s.MonthlyAmount.String(), s.BillingDay)
	if err != nil {
		return 0, fmt.Errorf("create subscription: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("subscription insert id: %w", err)
	}

	slog.InfoContext(ctx, "Subscription saved",
		"id", id,
		"name", s.Name,
		"monthly_amount", s.MonthlyAmount,
		"billing_day", s.BillingDay)

	return id, nil
}

// ListActiveSubscriptions returns the current active set ordered by billing
// day. Deactivated rows stay in the table but are never read back here.
func (r *Repository) ListActiveSubscriptions(ctx context.Context) ([]core.Subscription, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, monthly_amount, billing_day, active FROM subscriptions WHERE active = 1 ORDER BY billing_day")
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var out []core.Subscription
	for rows.Next() {
		var s core.Subscription
		if err := rows.Scan(&s.ID, &s.Name, &s.MonthlyAmount, &s.BillingDay, &s.Active); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateSubscription(ctx context.Context, s core.Subscription) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE subscriptions SET name = ?, monthly_amount = ?, billing_day = ? WHERE id = ?",
		s.Name, s.MonthlyAmount.String(), s.BillingDay, s.ID)
	if err != nil {
		return fmt.Errorf("update subscription %d: %w", s.ID, err)
	}
	return requireRow(res, s.ID, "subscription")
}

// DeactivateSubscription soft-deletes: the row keeps its history but drops
// out of the active set.
func (r *Repository) DeactivateSubscription(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE subscriptions SET active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deactivate subscription %d: %w", id, err)
	}
	return requireRow(res, id, "subscription")
}
