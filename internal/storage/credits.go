package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finanzas/internal/core"
)

const creditColumns = "id, description, lender, principal, term_months, monthly_installment, months_paid, purchase_date, monthly_rate, paid"

func (r *Repository) CreateCreditPurchase(ctx context.Context, c core.CreditPurchase) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO credit_purchases (description, lender, principal, term_months, monthly_installment, months_paid, purchase_date, monthly_rate, paid) VALUES (?, ?, ?, ?, ?, 0, ?, ?, 0)",
		c.Description, c.Lender, c.Principal.String(), c.TermMonths,
		c.MonthlyInstallment.String(), c.PurchaseDate.Format(core.DateLayout), c.MonthlyRate.String())
	if err != nil {
		return 0, fmt.Errorf("create credit purchase: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("credit purchase insert id: %w", err)
	}

	slog.InfoContext(ctx, "Credit purchase saved",
		"id", id,
		"lender", c.Lender,
		"principal", c.Principal,
		"term_months", c.TermMonths,
		"monthly_installment", c.MonthlyInstallment)

	return id, nil
}

func (r *Repository) GetCreditPurchase(ctx context.Context, id int64) (core.CreditPurchase, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+creditColumns+" FROM credit_purchases WHERE id = ?", id)
	c, err := scanCredit(row)
	if err != nil {
		return core.CreditPurchase{}, fmt.Errorf("get credit purchase %d: %w", id, notFound(err))
	}
	return c, nil
}

// ListUnpaidCredits returns purchases still being paid off, most recent
// purchase first.
func (r *Repository) ListUnpaidCredits(ctx context.Context) ([]core.CreditPurchase, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+creditColumns+" FROM credit_purchases WHERE paid = 0 ORDER BY purchase_date DESC")
	if err != nil {
		return nil, fmt.Errorf("list credit purchases: %w", err)
	}
	defer rows.Close()

	var out []core.CreditPurchase
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit purchase: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateCreditPurchase rewrites the editable fields, including the
// installment the caller recomputed for the new principal/term/rate.
func (r *Repository) UpdateCreditPurchase(ctx context.Context, c core.CreditPurchase) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE credit_purchases SET description = ?, lender = ?, principal = ?, term_months = ?, monthly_installment = ?, monthly_rate = ? WHERE id = ?",
		c.Description, c.Lender, c.Principal.String(), c.TermMonths,
		c.MonthlyInstallment.String(), c.MonthlyRate.String(), c.ID)
	if err != nil {
		return fmt.Errorf("update credit purchase %d: %w", c.ID, err)
	}
	return requireRow(res, c.ID, "credit purchase")
}

// SaveCreditProgress persists the outcome of a monthly payment transition.
func (r *Repository) SaveCreditProgress(ctx context.Context, id int64, monthsPaid int, paid bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE credit_purchases SET months_paid = ?, paid = ? WHERE id = ?",
		monthsPaid, paid, id)
	if err != nil {
		return fmt.Errorf("save credit progress %d: %w", id, err)
	}
	return requireRow(res, id, "credit purchase")
}

// MarkCreditPaid soft-deletes by forcing the paid flag regardless of
// months_paid, the same terminal state a completed plan reaches.
func (r *Repository) MarkCreditPaid(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE credit_purchases SET paid = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark credit paid %d: %w", id, err)
	}
	return requireRow(res, id, "credit purchase")
}

func scanCredit(row rowScanner) (core.CreditPurchase, error) {
	var (
		c        core.CreditPurchase
		purchase string
	)
	if err := row.Scan(&c.ID, &c.Description, &c.Lender, &c.Principal, &c.TermMonths,
		&c.MonthlyInstallment, &c.MonthsPaid, &purchase, &c.MonthlyRate, &c.Paid); err != nil {
		return core.CreditPurchase{}, err
	}
	parsed, err := time.Parse(core.DateLayout, purchase)
	if err != nil {
		return core.CreditPurchase{}, fmt.Errorf("parse purchase date %q: %w", purchase, err)
	}
	c.PurchaseDate = parsed
	return c, nil
}
