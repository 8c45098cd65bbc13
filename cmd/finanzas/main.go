package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"finanzas/internal/app"
	"finanzas/internal/cli"
	"finanzas/internal/log"
)

// The process hosts the local finance store and its services; the windowed
// presentation layer drives them synchronously and closes the process when
// the user exits. Running headless, the host stays up until SIGINT/SIGTERM.
func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.LogLevel != slog.LevelInfo {
		logger = cli.SetupLogger(cfg.LogLevel)
	}

	store := cli.InitStore(logger, cfg.DBPath)

	application := app.New(store, cfg)
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		balance, err := application.Aggregation.OverallBalance(ctx)
		if err != nil {
			return err
		}
		available, err := application.Aggregation.AvailableFunds(ctx)
		if err != nil {
			return err
		}
		theme, err := application.Settings.Theme(ctx)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "Store opened",
			log.FieldOperation, log.OpStartup,
			log.FieldPath, cfg.DBPath,
			"net_balance", balance.Net,
			"available_funds", available,
			"theme", theme)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received", log.FieldOperation, log.OpShutdown)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Host error", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Stopped")
}
