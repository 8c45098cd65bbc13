package core

import "testing"

func TestApplyLoanPayment(t *testing.T) {
	loan := Loan{Principal: d("1000"), AmountPaid: d("400"), Active: true}

	t.Run("partial payment stays active", func(t *testing.T) {
		got := ApplyLoanPayment(loan, d("100"))
		if !got.AmountPaid.Equal(d("500")) || !got.Active {
			t.Fatalf("got paid=%s active=%v", got.AmountPaid, got.Active)
		}
	})

	t.Run("exact payoff deactivates", func(t *testing.T) {
		got := ApplyLoanPayment(loan, d("600"))
		if !got.AmountPaid.Equal(d("1000")) || got.Active {
			t.Fatalf("got paid=%s active=%v", got.AmountPaid, got.Active)
		}
	})

	t.Run("overshoot clamps at principal", func(t *testing.T) {
		got := ApplyLoanPayment(loan, d("999"))
		if !got.AmountPaid.Equal(d("1000")) || got.Active {
			t.Fatalf("got paid=%s active=%v", got.AmountPaid, got.Active)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		ApplyLoanPayment(loan, d("600"))
		if !loan.AmountPaid.Equal(d("400")) || !loan.Active {
			t.Fatalf("input changed: paid=%s active=%v", loan.AmountPaid, loan.Active)
		}
	})
}

func TestAdvanceCreditMonth(t *testing.T) {
	credit := CreditPurchase{TermMonths: 3, MonthsPaid: 0}

	got := AdvanceCreditMonth(credit)
	if got.MonthsPaid != 1 || got.Paid {
		t.Fatalf("after one month: paid=%d done=%v", got.MonthsPaid, got.Paid)
	}

	got = AdvanceCreditMonth(AdvanceCreditMonth(got))
	if got.MonthsPaid != 3 || !got.Paid {
		t.Fatalf("after full term: paid=%d done=%v", got.MonthsPaid, got.Paid)
	}

	// Advancing past the term must not push MonthsPaid beyond it.
	got = AdvanceCreditMonth(got)
	if got.MonthsPaid != 3 || !got.Paid {
		t.Fatalf("past term: paid=%d done=%v", got.MonthsPaid, got.Paid)
	}
}

func TestApplyGoalDeposit(t *testing.T) {
	goal := SavingsGoal{TargetAmount: d("500"), CurrentAmount: d("450")}

	got := ApplyGoalDeposit(goal, d("20"))
	if !got.CurrentAmount.Equal(d("470")) || got.Completed {
		t.Fatalf("got current=%s completed=%v", got.CurrentAmount, got.Completed)
	}

	got = ApplyGoalDeposit(goal, d("100"))
	if !got.CurrentAmount.Equal(d("500")) || !got.Completed {
		t.Fatalf("overshoot: current=%s completed=%v", got.CurrentAmount, got.Completed)
	}
}

func TestApplyGoalWithdrawal(t *testing.T) {
	goal := SavingsGoal{TargetAmount: d("500"), CurrentAmount: d("100")}

	got := ApplyGoalWithdrawal(goal, d("30"))
	if !got.CurrentAmount.Equal(d("70")) {
		t.Fatalf("got current=%s", got.CurrentAmount)
	}

	t.Run("floors at zero", func(t *testing.T) {
		got := ApplyGoalWithdrawal(goal, d("150"))
		if !got.CurrentAmount.IsZero() {
			t.Fatalf("got current=%s", got.CurrentAmount)
		}
	})

	t.Run("completion survives withdrawal", func(t *testing.T) {
		full := SavingsGoal{TargetAmount: d("500"), CurrentAmount: d("500"), Completed: true}
		got := ApplyGoalWithdrawal(full, d("200"))
		if !got.Completed {
			t.Fatal("withdrawal revoked completion")
		}
		if !got.CurrentAmount.Equal(d("300")) {
			t.Fatalf("got current=%s", got.CurrentAmount)
		}
	})
}
