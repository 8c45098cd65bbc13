package storage

import (
	"context"
	"testing"
	"time"

	"finanzas/internal/core"
)

func TestCreditPurchaseLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateCreditPurchase(ctx, core.CreditPurchase{
		Description:        "Laptop",
		Lender:             "Electronics Store",
		Principal:          d("1500"),
		TermMonths:         12,
		MonthlyInstallment: d("133.28"),
		PurchaseDate:       at(2025, time.March, 5, 0, 0),
		MonthlyRate:        d("1"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	credit, err := repo.GetCreditPurchase(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if credit.MonthsPaid != 0 || credit.Paid {
		t.Fatalf("fresh purchase: months=%d paid=%v", credit.MonthsPaid, credit.Paid)
	}
	if !credit.MonthlyRate.Equal(d("1")) || !credit.MonthlyInstallment.Equal(d("133.28")) {
		t.Fatalf("credit = %+v", credit)
	}

	if err := repo.SaveCreditProgress(ctx, id, 12, true); err != nil {
		t.Fatalf("save progress: %v", err)
	}
	unpaid, err := repo.ListUnpaidCredits(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(unpaid) != 0 {
		t.Fatalf("settled purchase still listed: %+v", unpaid)
	}
}

func TestUpdateCreditPurchase(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateCreditPurchase(ctx, core.CreditPurchase{
		Description: "Phone", Lender: "Carrier", Principal: d("600"),
		TermMonths: 6, MonthlyInstallment: d("100"),
		PurchaseDate: at(2025, time.January, 10, 0, 0), MonthlyRate: d("0"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SaveCreditProgress(ctx, id, 2, false); err != nil {
		t.Fatalf("progress: %v", err)
	}

	// Editing rewrites the plan but never touches accumulated progress.
	if err := repo.UpdateCreditPurchase(ctx, core.CreditPurchase{
		ID: id, Description: "Phone v2", Lender: "Carrier", Principal: d("720"),
		TermMonths: 8, MonthlyInstallment: d("90"), MonthlyRate: d("0"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	credit, err := repo.GetCreditPurchase(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if credit.Description != "Phone v2" || credit.TermMonths != 8 || !credit.MonthlyInstallment.Equal(d("90")) {
		t.Fatalf("credit = %+v", credit)
	}
	if credit.MonthsPaid != 2 {
		t.Fatalf("months paid changed to %d", credit.MonthsPaid)
	}
}

func TestListUnpaidCreditsNewestPurchaseFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	dates := []time.Time{
		at(2025, time.January, 1, 0, 0),
		at(2025, time.March, 1, 0, 0),
		at(2025, time.February, 1, 0, 0),
	}
	for i, date := range dates {
		_, err := repo.CreateCreditPurchase(ctx, core.CreditPurchase{
			Description: "item", Lender: "store", Principal: d("100"),
			TermMonths: 3, MonthlyInstallment: d("33.33"),
			PurchaseDate: date, MonthlyRate: d("0"),
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	unpaid, err := repo.ListUnpaidCredits(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(unpaid) != 3 {
		t.Fatalf("len = %d", len(unpaid))
	}
	if unpaid[0].PurchaseDate.Month() != time.March || unpaid[2].PurchaseDate.Month() != time.January {
		t.Fatalf("order: %v, %v, %v",
			unpaid[0].PurchaseDate, unpaid[1].PurchaseDate, unpaid[2].PurchaseDate)
	}
}
