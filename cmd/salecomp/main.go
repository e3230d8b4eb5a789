package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/cardhouse/pricing-data/internal/config"
	"github.com/cardhouse/pricing-data/internal/database"
	"github.com/cardhouse/pricing-data/internal/model"
	"github.com/cardhouse/pricing-data/internal/salecomp"
	"github.com/cardhouse/pricing-data/internal/store"
	"github.com/cardhouse/pricing-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/pipeline.yaml", "path to config file")
	dateStr := flag.String("date", "", "computation date YYYY-MM-DD (default: today UTC)")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting sale-comp rollup",
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

	asOf := model.Today()
	if *dateStr != "" {
		if asOf, err = model.ParseDate(*dateStr); err != nil {
			logger.Error("invalid -date", "error", err)
			os.Exit(1)
		}
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
	from, to := salecomp.Window(asOf)

	var sales int
	var sum store.RunSummary
	err = st.InTx(ctx, func(tx pgx.Tx) error {
		comps, err := st.SaleCompsBetween(ctx, tx, from, to)
		if err != nil {
			return err
		}
		sales = len(comps)

		ests := salecomp.Rollup(asOf, comps)
		sum, err = st.UpsertEstimates(ctx, tx, ests)
		return err
	})
	if err != nil {
		logger.Error("rollup failed",
			"as_of", asOf,
			"error", err,
		)
		os.Exit(1)
	}

	logger.Info("sale-comp rollup finished",
		"run_id", runID,
		"as_of", asOf,
		"window_days", salecomp.WindowDays,
		"sales", sales,
		"inserted", sum.Inserted,
		"updated", sum.Updated,
		"rows", sum.Total(),
	)
}
