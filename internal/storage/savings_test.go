package storage

import (
	"context"
	"testing"
	"time"

	"finanzas/internal/core"
)

func TestSavingsGoalLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateSavingsGoal(ctx, core.SavingsGoal{
		Name:         "Vacation",
		TargetAmount: d("2000"),
		StartDate:    at(2025, time.January, 15, 0, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	goal, err := repo.GetSavingsGoal(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !goal.CurrentAmount.IsZero() || goal.Completed {
		t.Fatalf("fresh goal: current=%s completed=%v", goal.CurrentAmount, goal.Completed)
	}

	if err := repo.SaveGoalProgress(ctx, id, d("750.50"), false); err != nil {
		t.Fatalf("progress: %v", err)
	}
	goal, err = repo.GetSavingsGoal(ctx, id)
	if err != nil {
		t.Fatalf("get after progress: %v", err)
	}
	if !goal.CurrentAmount.Equal(d("750.50")) {
		t.Fatalf("current = %s", goal.CurrentAmount)
	}

	if err := repo.UpdateSavingsGoal(ctx, core.SavingsGoal{ID: id, Name: "Big Vacation", TargetAmount: d("3000")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	goal, err = repo.GetSavingsGoal(ctx, id)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if goal.Name != "Big Vacation" || !goal.TargetAmount.Equal(d("3000")) {
		t.Fatalf("goal = %+v", goal)
	}
	if !goal.CurrentAmount.Equal(d("750.50")) {
		t.Fatalf("update touched progress: %s", goal.CurrentAmount)
	}

	if err := repo.CompleteGoal(ctx, id); err != nil {
		t.Fatalf("complete: %v", err)
	}
	open, err := repo.ListOpenGoals(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("completed goal still open: %+v", open)
	}
}

func TestListOpenGoalsNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, start := range []time.Time{
		at(2024, time.June, 1, 0, 0),
		at(2025, time.February, 1, 0, 0),
	} {
		_, err := repo.CreateSavingsGoal(ctx, core.SavingsGoal{
			Name: "goal", TargetAmount: d("100"), StartDate: start,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	open, err := repo.ListOpenGoals(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(open) != 2 || !open[0].StartDate.After(open[1].StartDate) {
		t.Fatalf("order: %+v", open)
	}
}
