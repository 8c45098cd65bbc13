package services

import (
	"path/filepath"
	"testing"
	"time"

	"finanzas/internal/storage"

	"github.com/shopspring/decimal"
)

func newTestStore(t *testing.T) *storage.Repository {
	t.Helper()
	store, err := storage.NewRepository(filepath.Join(t.TempDir(), "finanzas.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fixedClock pins every service's notion of now to mid-March 2025 so
// month-sensitive paths are deterministic.
var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }
