package services

import (
	"context"
	"errors"
	"testing"

	"finanzas/internal/core"
)

func TestTransferMovesBalance(t *testing.T) {
	store := newTestStore(t)
	ledger := NewLedgerService(store)
	ledger.now = fixedClock
	transfers := NewTransferService(store)
	transfers.now = fixedClock
	ctx := context.Background()

	src, err := ledger.AddBankAccount(ctx, "Checking Bank", core.AccountDebit, d("500"), d("0"))
	if err != nil {
		t.Fatalf("source account: %v", err)
	}
	dst, err := ledger.AddBankAccount(ctx, "Savings Bank", core.AccountSavings, d("100"), d("0"))
	if err != nil {
		t.Fatalf("destination account: %v", err)
	}

	if _, err := transfers.Transfer(ctx, src, dst, d("150"), "monthly savings"); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	source, err := store.GetBankAccount(ctx, src)
	if err != nil {
		t.Fatalf("get source: %v", err)
	}
	destination, err := store.GetBankAccount(ctx, dst)
	if err != nil {
		t.Fatalf("get destination: %v", err)
	}
	if !source.Balance.Equal(d("350")) || !destination.Balance.Equal(d("250")) {
		t.Fatalf("balances = %s / %s", source.Balance, destination.Balance)
	}

	history, err := transfers.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || !history[0].Amount.Equal(d("150")) {
		t.Fatalf("history = %+v", history)
	}
	if history[0].Description != "monthly savings" {
		t.Fatalf("description = %q", history[0].Description)
	}
}

func TestTransferRejectsBadInput(t *testing.T) {
	store := newTestStore(t)
	ledger := NewLedgerService(store)
	ledger.now = fixedClock
	transfers := NewTransferService(store)
	transfers.now = fixedClock
	ctx := context.Background()

	id, err := ledger.AddBankAccount(ctx, "Bank", core.AccountDebit, d("100"), d("0"))
	if err != nil {
		t.Fatalf("account: %v", err)
	}

	if _, err := transfers.Transfer(ctx, id, id, d("10"), ""); !errors.Is(err, core.ErrSameAccount) {
		t.Fatalf("same account: expected ErrSameAccount, got %v", err)
	}
	if _, err := transfers.Transfer(ctx, id, id+1, d("0"), ""); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("zero amount: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := transfers.Transfer(ctx, id, 999, d("10"), ""); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("missing destination: expected ErrNotFound, got %v", err)
	}

	// None of the rejected calls may leave a trace.
	account, err := store.GetBankAccount(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !account.Balance.Equal(d("100")) {
		t.Fatalf("balance = %s", account.Balance)
	}
	history, err := transfers.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("history len = %d", len(history))
	}
}
