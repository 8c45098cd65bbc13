// Package app wires the store and services into the single object the
// presentation shell consumes.
package app

import (
	"finanzas/internal/config"
	"finanzas/internal/services"
	"finanzas/internal/storage"
)

// App is the composition root handed to the presentation layer.
type App struct {
	Store       *storage.Repository
	Ledger      *services.LedgerService
	Aggregation *services.AggregationService
	Payoff      *services.PayoffService
	Budgets     *services.BudgetService
	Transfers   *services.TransferService
	Settings    *services.SettingsService
}

func New(store *storage.Repository, cfg *config.Config) *App {
	aggregation := services.NewAggregationService(store)
	return &App{
		Store:       store,
		Ledger:      services.NewLedgerService(store),
		Aggregation: aggregation,
		Payoff:      services.NewPayoffService(store),
		Budgets:     services.NewBudgetService(store, aggregation),
		Transfers:   services.NewTransferService(store),
		Settings:    services.NewSettingsService(store, cfg.DefaultTheme),
	}
}

func (a *App) Close() error {
	return a.Store.Close()
}
