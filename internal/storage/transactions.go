package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finanzas/internal/core"
)

const transactionColumns = "id, kind, category, amount, description, timestamp"

func (r *Repository) CreateTransaction(ctx context.Context, t core.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO transactions (kind, category, amount, description, timestamp) VALUES (?, ?, ?, ?, ?)",
		string(t.Kind), t.Category, t.Amount.String(), t.Description, t.Timestamp.Format(core.TimestampLayout))
	if err != nil {
		return 0, fmt.Errorf("create transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"kind", t.Kind,
		"category", t.Category,
		"amount", t.Amount)

	return id, nil
}

func (r *Repository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	t, err := scanTransaction(row)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, notFound(err))
	}
	return t, nil
}

// ListTransactions returns every transaction, newest entry first.
func (r *Repository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	return r.queryTransactions(ctx,
		"SELECT "+transactionColumns+" FROM transactions ORDER BY id DESC")
}

// MonthTransactions returns the transactions of one calendar month, newest
// first. The month is normalized to two digits before comparison so the
// stored zero-padded encoding matches exactly.
func (r *Repository) MonthTransactions(ctx context.Context, month, year int) ([]core.Transaction, error) {
	return r.queryTransactions(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE strftime('%m', timestamp) = ? AND strftime('%Y', timestamp) = ? ORDER BY timestamp DESC",
		fmt.Sprintf("%02d", month), fmt.Sprintf("%04d", year))
}

// SearchTransactions filters by free text over description and category,
// optionally narrowed by category, kind, and an inclusive date range.
func (r *Repository) SearchTransactions(ctx context.Context, f core.TransactionFilter) ([]core.Transaction, error) {
	var (
		where []string
		args  []any
	)
	query := "SELECT " + transactionColumns + " FROM transactions"

	if f.Text != "" {
		where = append(where, "(description LIKE ? OR category LIKE ?)")
		pattern := "%" + f.Text + "%"
		args = append(args, pattern, pattern)
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}
	if f.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(f.Kind))
	}
	if f.From != "" {
		where = append(where, "timestamp >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		where = append(where, "timestamp <= ?")
		args = append(args, f.To)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"

	return r.queryTransactions(ctx, query, args...)
}

func (r *Repository) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE transactions SET kind = ?, category = ?, amount = ?, description = ? WHERE id = ?",
		string(t.Kind), t.Category, t.Amount.String(), t.Description, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", t.ID, err)
	}
	return requireRow(res, t.ID, "transaction")
}

func (r *Repository) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return requireRow(res, id, "transaction")
}

func (r *Repository) queryTransactions(ctx context.Context, query string, args ...any) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		t    core.Transaction
		kind string
		ts   string
	)
	if err := row.Scan(&t.ID, &kind, &t.Category, &t.Amount, &t.Description, &ts); err != nil {
		return core.Transaction{}, err
	}
	t.Kind = core.MovementKind(kind)
	parsed, err := time.Parse(core.TimestampLayout, ts)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse timestamp %q: %w", ts, err)
	}
	t.Timestamp = parsed
	return t, nil
}
