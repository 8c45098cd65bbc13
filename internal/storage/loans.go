package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finanzas/internal/core"

	"github.com/shopspring/decimal"
)

const loanColumns = "id, lender, principal, amount_paid, monthly_installment, due_day, start_date, active"

func (r *Repository) CreateLoan(ctx context.Context, l core.Loan) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO loans (lender, principal, amount_paid, monthly_installment, due_day, start_date, active) VALUES (?, ?, '0', ?, ?, ?, 1)",
		l.Lender, l.Principal.String(), l.MonthlyInstallment.String(), l.DueDay, l.StartDate.Format(core.DateLayout))
	if err != nil {
		return 0, fmt.Errorf("create loan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("loan insert id: %w", err)
	}

	slog.InfoContext(ctx, "Loan saved",
		"id", id,
		"lender", l.Lender,
		"principal", l.Principal,
		"monthly_installment", l.MonthlyInstallment)

	return id, nil
}

func (r *Repository) GetLoan(ctx context.Context, id int64) (core.Loan, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+loanColumns+" FROM loans WHERE id = ?", id)
	l, err := scanLoan(row)
	if err != nil {
		return core.Loan{}, fmt.Errorf("get loan %d: %w", id, notFound(err))
	}
	return l, nil
}

// ListActiveLoans returns loans that are neither paid off nor removed,
// ordered by due day.
func (r *Repository) ListActiveLoans(ctx context.Context) ([]core.Loan, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+loanColumns+" FROM loans WHERE active = 1 ORDER BY due_day")
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	var out []core.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateLoan(ctx context.Context, l core.Loan) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE loans SET lender = ?, principal = ?, monthly_installment = ?, due_day = ? WHERE id = ?",
		l.Lender, l.Principal.String(), l.MonthlyInstallment.String(), l.DueDay, l.ID)
	if err != nil {
		return fmt.Errorf("update loan %d: %w", l.ID, err)
	}
	return requireRow(res, l.ID, "loan")
}

// SaveLoanProgress persists the outcome of a payment transition: the
// accumulated amount and whether the loan is still active.
func (r *Repository) SaveLoanProgress(ctx context.Context, id int64, amountPaid decimal.Decimal, active bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE loans SET amount_paid = ?, active = ? WHERE id = ?",
		amountPaid.String(), active, id)
	if err != nil {
		return fmt.Errorf("save loan progress %d: %w", id, err)
	}
	return requireRow(res, id, "loan")
}

// DeactivateLoan soft-deletes. The row lands in the same terminal state a
// natural payoff does, possibly with amount_paid still below principal;
// the schema does not record which of the two happened.
func (r *Repository) DeactivateLoan(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE loans SET active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deactivate loan %d: %w", id, err)
	}
	return requireRow(res, id, "loan")
}

func scanLoan(row rowScanner) (core.Loan, error) {
	var (
		l     core.Loan
		start string
	)
	if err := row.Scan(&l.ID, &l.Lender, &l.Principal, &l.AmountPaid, &l.MonthlyInstallment, &l.DueDay, &start, &l.Active); err != nil {
		return core.Loan{}, err
	}
	parsed, err := time.Parse(core.DateLayout, start)
	if err != nil {
		return core.Loan{}, fmt.Errorf("parse start date %q: %w", start, err)
	}
	l.StartDate = parsed
	return l, nil
}
