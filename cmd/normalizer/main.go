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
	"github.com/cardhouse/pricing-data/internal/normalize"
	"github.com/cardhouse/pricing-data/internal/store"
	"github.com/cardhouse/pricing-data/internal/vendor"
	"github.com/cardhouse/pricing-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/pipeline.yaml", "path to config file")
	vendorName := flag.String("vendor", "", "vendor to normalize (default: all configured vendors)")
	dateStr := flag.String("date", "", "target date YYYY-MM-DD (default: today UTC)")
	flag.Parse()

	// Optional .env next to the process; config expansion reads the result.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting normalizer",
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

	// An unparseable date fails the whole run before any reads or writes.
	date := model.Today()
	if *dateStr != "" {
		if date, err = model.ParseDate(*dateStr); err != nil {
			logger.Error("invalid -date", "error", err)
			os.Exit(1)
		}
	}

	specs := vendor.All()
	if *vendorName != "" {
		spec, err := vendor.Lookup(*vendorName)
		if err != nil {
			logger.Error("invalid -vendor", "error", err)
			os.Exit(1)
		}
		specs = []vendor.Spec{spec}
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

	var total store.RunSummary
	for _, spec := range specs {
		// One transaction per vendor: a vendor is an independent,
		// re-runnable unit of work.
		var sum store.RunSummary
		err := st.InTx(ctx, func(tx pgx.Tx) error {
			rows, err := st.VendorRows(ctx, tx, spec)
			if err != nil {
				return err
			}
			snaps := normalize.Transform(spec, rows, date, runID)
			sum, err = st.UpsertSnapshots(ctx, tx, snaps)
			return err
		})
		if err != nil {
			logger.Error("vendor normalization failed",
				"vendor", spec.Name,
				"date", date,
				"error", err,
			)
			os.Exit(1)
		}

		logger.Info("vendor normalized",
			"vendor", spec.Name,
			"inserted", sum.Inserted,
			"updated", sum.Updated,
		)
		total.Add(sum)
	}

	logger.Info("normalizer finished",
		"run_id", runID,
		"date", date,
		"vendors", len(specs),
		"inserted", total.Inserted,
		"updated", total.Updated,
		"rows", total.Total(),
	)
}
