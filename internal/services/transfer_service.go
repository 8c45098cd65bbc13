package services

import (
	"context"
	"time"

	"finanzas/internal/core"
	"finanzas/internal/storage"

	"github.com/shopspring/decimal"
)

// TransferService moves balance between two bank accounts and keeps the
// append-only transfer history. The debit, credit, and history row commit
// together in one store transaction.
type TransferService struct {
	store *storage.Repository
	now   func() time.Time
}

func NewTransferService(store *storage.Repository) *TransferService {
	return &TransferService{store: store, now: time.Now}
}

// Transfer moves amount from the source account to the destination. On
// success the source balance drops by amount, the destination rises by
// amount, and exactly one transfer record references both.
func (s *TransferService) Transfer(ctx context.Context, sourceID, destinationID int64, amount decimal.Decimal, description string) (int64, error) {
	if !amount.IsPositive() {
		return 0, core.ErrInvalidAmount
	}
	if sourceID == destinationID {
		return 0, core.ErrSameAccount
	}

	return s.store.TransferFunds(ctx, core.Transfer{
		SourceID:      sourceID,
		DestinationID: destinationID,
		Amount:        amount,
		Timestamp:     s.now(),
		Description:   description,
	})
}

// History returns the transfer log, newest first, with bank names resolved
// where the accounts still exist.
func (s *TransferService) History(ctx context.Context) ([]storage.TransferRecord, error) {
	return s.store.ListTransfers(ctx)
}
