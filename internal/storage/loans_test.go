package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"finanzas/internal/core"
)

func TestLoanLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateLoan(ctx, core.Loan{
		Lender:             "Credit Union",
		Principal:          d("1200"),
		MonthlyInstallment: d("106.62"),
		DueDay:             15,
		StartDate:          at(2025, time.February, 1, 0, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	loan, err := repo.GetLoan(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// New loans always start at zero paid, active.
	if !loan.AmountPaid.IsZero() || !loan.Active {
		t.Fatalf("fresh loan: paid=%s active=%v", loan.AmountPaid, loan.Active)
	}
	if !loan.Principal.Equal(d("1200")) || loan.DueDay != 15 {
		t.Fatalf("loan = %+v", loan)
	}

	if err := repo.SaveLoanProgress(ctx, id, d("500"), true); err != nil {
		t.Fatalf("save progress: %v", err)
	}
	loan, err = repo.GetLoan(ctx, id)
	if err != nil {
		t.Fatalf("get after progress: %v", err)
	}
	if !loan.AmountPaid.Equal(d("500")) || !loan.Active {
		t.Fatalf("after progress: paid=%s active=%v", loan.AmountPaid, loan.Active)
	}

	if err := repo.SaveLoanProgress(ctx, id, d("1200"), false); err != nil {
		t.Fatalf("final progress: %v", err)
	}
	active, err := repo.ListActiveLoans(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("paid-off loan still listed: %+v", active)
	}
}

func TestListActiveLoansOrderedByDueDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	days := []int{25, 5, 15}
	for _, day := range days {
		_, err := repo.CreateLoan(ctx, core.Loan{
			Lender: "Bank", Principal: d("100"), MonthlyInstallment: d("10"),
			DueDay: day, StartDate: at(2025, time.January, 1, 0, 0),
		})
		if err != nil {
			t.Fatalf("create day %d: %v", day, err)
		}
	}

	loans, err := repo.ListActiveLoans(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(loans) != 3 || loans[0].DueDay != 5 || loans[1].DueDay != 15 || loans[2].DueDay != 25 {
		t.Fatalf("order: %+v", loans)
	}
}

func TestDeactivateLoan(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateLoan(ctx, core.Loan{
		Lender: "Bank", Principal: d("100"), MonthlyInstallment: d("10"),
		DueDay: 1, StartDate: at(2025, time.January, 1, 0, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DeactivateLoan(ctx, id); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	active, err := repo.ListActiveLoans(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("removed loan still listed")
	}
	// The row itself survives for history.
	if _, err := repo.GetLoan(ctx, id); err != nil {
		t.Fatalf("get after deactivate: %v", err)
	}

	if err := repo.DeactivateLoan(ctx, 999); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
