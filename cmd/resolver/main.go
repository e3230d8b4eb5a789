package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/cardhouse/pricing-data/internal/config"
	"github.com/cardhouse/pricing-data/internal/database"
	"github.com/cardhouse/pricing-data/internal/model"
	"github.com/cardhouse/pricing-data/internal/resolve"
	"github.com/cardhouse/pricing-data/internal/store"
	"github.com/cardhouse/pricing-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/pipeline.yaml", "path to config file")
	dateStr := flag.String("date", "", "resolve a single date YYYY-MM-DD (default: today UTC)")
	fromStr := flag.String("from", "", "inclusive lower date bound YYYY-MM-DD")
	toStr := flag.String("to", "", "inclusive upper date bound YYYY-MM-DD")
	allDates := flag.Bool("all-dates", false, "resolve every date present in the snapshot table")
	currency := flag.String("currency", model.DefaultCurrency, "currency to resolve")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting resolver",
		"version", version.String(),
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.Jobs.LogLevel),
	}))
	slog.SetDefault(logger)

	scope, err := resolve.NewScope(*dateStr, *fromStr, *toStr, *allDates)
	if err != nil {
		logger.Error("invalid date scope", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	st := store.New(pool, cfg.Jobs.BatchSize)
	runID := uuid.New()

	var snapshots int
	var sum store.RunSummary
	err = st.InTx(ctx, func(tx pgx.Tx) error {
		snaps, err := st.SnapshotsInScope(ctx, tx, scope, *currency)
		if err != nil {
			return err
		}
		snapshots = len(snaps)

		prices := resolve.Resolve(snaps, time.Now().UTC())
		sum, err = st.UpsertDailyPrices(ctx, tx, prices)
		return err
	})
	if err != nil {
		logger.Error("resolution failed",
			"scope", scope,
			"currency", *currency,
			"error", err,
		)
		os.Exit(1)
	}

	logger.Info("resolver finished",
		"run_id", runID,
		"scope", scope,
		"currency", *currency,
		"snapshots", snapshots,
		"inserted", sum.Inserted,
		"updated", sum.Updated,
		"rows", sum.Total(),
	)
}
