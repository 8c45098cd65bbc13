package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finanzas/internal/core"

	"github.com/shopspring/decimal"
)

// TransferRecord is a transfer row with the referenced bank names resolved.
// A name is nil when the account has since been removed from the store.
type TransferRecord struct {
	core.Transfer
	SourceBank      *string
	DestinationBank *string
}

// TransferFunds debits the source account, credits the destination, and
// appends the transfer record in a single transaction: either the whole
// move lands or nothing changes.
func (r *Repository) TransferFunds(ctx context.Context, t core.Transfer) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transfer: %w", err)
	}
	defer tx.Rollback()

	if err := adjustBalance(ctx, tx, t.SourceID, t.Amount.Neg()); err != nil {
		return 0, fmt.Errorf("debit account %d: %w", t.SourceID, err)
	}
	if err := adjustBalance(ctx, tx, t.DestinationID, t.Amount); err != nil {
		return 0, fmt.Errorf("credit account %d: %w", t.DestinationID, err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO transfers (source_account_id, destination_account_id, amount, timestamp, description) VALUES (?, ?, ?, ?, ?)",
		t.SourceID, t.DestinationID, t.Amount.String(), t.Timestamp.Format(core.TimestampLayout), t.Description)
	if err != nil {
		return 0, fmt.Errorf("record transfer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transfer insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transfer: %w", err)
	}

	slog.InfoContext(ctx, "Transfer recorded",
		"id", id,
		"source_account_id", t.SourceID,
		"destination_account_id", t.DestinationID,
		"amount", t.Amount)

	return id, nil
}

func adjustBalance(ctx context.Context, tx queryExecer, accountID int64, delta decimal.Decimal) error {
	var balance decimal.Decimal
	err := tx.QueryRowContext(ctx,
		"SELECT balance FROM bank_accounts WHERE id = ?", accountID).Scan(&balance)
	if err != nil {
		return notFound(err)
	}
	_, err = tx.ExecContext(ctx,
		"UPDATE bank_accounts SET balance = ? WHERE id = ?", balance.Add(delta).String(), accountID)
	return err
}

// ListTransfers returns the transfer history, newest first, with bank
// names resolved where the accounts still exist.
func (r *Repository) ListTransfers(ctx context.Context) ([]TransferRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.source_account_id, t.destination_account_id, t.amount, t.timestamp, t.description,
		       src.bank_name, dst.bank_name
		FROM transfers t
		LEFT JOIN bank_accounts src ON t.source_account_id = src.id
		LEFT JOIN bank_accounts dst ON t.destination_account_id = dst.id
		ORDER BY t.timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var out []TransferRecord
	for rows.Next() {
		var (
			rec TransferRecord
			ts  string
		)
		if err := rows.Scan(&rec.ID, &rec.SourceID, &rec.DestinationID, &rec.Amount, &ts, &rec.Description,
			&rec.SourceBank, &rec.DestinationBank); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		parsed, err := time.Parse(core.TimestampLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parse transfer timestamp %q: %w", ts, err)
		}
		rec.Timestamp = parsed
		out = append(out, rec)
	}
	return out, rows.Err()
}
