package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finanzas/internal/core"

	"github.com/shopspring/decimal"
)

const accountColumns = "id, bank_name, account_type, balance, credit_limit, created_date, active"

func (r *Repository) CreateBankAccount(ctx context.Context, a core.BankAccount) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO bank_accounts (bank_name, account_type, balance, credit_limit, created_date, active) VALUES (?, ?, ?, ?, ?, 1)",
		a.BankName, string(a.AccountType), a.Balance.String(), a.CreditLimit.String(), a.CreatedDate.Format(core.DateLayout))
	if err != nil {
		return 0, fmt.Errorf("create bank account: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("bank account insert id: %w", err)
	}

	slog.InfoContext(ctx, "Bank account saved",
		"id", id,
		"bank_name", a.BankName,
		"account_type", a.AccountType,
		"balance", a.Balance)

	return id, nil
}

func (r *Repository) GetBankAccount(ctx context.Context, id int64) (core.BankAccount, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM bank_accounts WHERE id = ?", id)
	a, err := scanAccount(row)
	if err != nil {
		return core.BankAccount{}, fmt.Errorf("get bank account %d: %w", id, notFound(err))
	}
	return a, nil
}

// ListActiveAccounts returns accounts not yet removed, ordered by bank
// name.
func (r *Repository) ListActiveAccounts(ctx context.Context) ([]core.BankAccount, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+accountColumns+" FROM bank_accounts WHERE active = 1 ORDER BY bank_name")
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var out []core.BankAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateBankAccount(ctx context.Context, a core.BankAccount) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE bank_accounts SET bank_name = ?, account_type = ?, credit_limit = ? WHERE id = ?",
		a.BankName, string(a.AccountType), a.CreditLimit.String(), a.ID)
	if err != nil {
		return fmt.Errorf("update bank account %d: %w", a.ID, err)
	}
	return requireRow(res, a.ID, "bank account")
}

// SetAccountBalance overwrites the stored balance.
func (r *Repository) SetAccountBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE bank_accounts SET balance = ? WHERE id = ?", balance.String(), id)
	if err != nil {
		return fmt.Errorf("set account balance %d: %w", id, err)
	}
	return requireRow(res, id, "bank account")
}

// DeactivateAccount soft-deletes. Transfers that reference the account
// keep their rows; the reference dangles and resolves to no name on read.
func (r *Repository) DeactivateAccount(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE bank_accounts SET active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deactivate bank account %d: %w", id, err)
	}
	return requireRow(res, id, "bank account")
}

func scanAccount(row rowScanner) (core.BankAccount, error) {
	var (
		a       core.BankAccount
		accType string
		created string
	)
	if err := row.Scan(&a.ID, &a.BankName, &accType, &a.Balance, &a.CreditLimit, &created, &a.Active); err != nil {
		return core.BankAccount{}, err
	}
	a.AccountType = core.AccountType(accType)
	parsed, err := time.Parse(core.DateLayout, created)
	if err != nil {
		return core.BankAccount{}, fmt.Errorf("parse created date %q: %w", created, err)
	}
	a.CreatedDate = parsed
	return a, nil
}
