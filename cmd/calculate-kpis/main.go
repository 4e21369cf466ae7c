// Command calculate-kpis computes the financial KPI table from the raw
// income statement and balance sheet, persists it under output/ and prints
// an abbreviated ratio view.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"finkpi/internal/config"
	"finkpi/internal/exporter"
	"finkpi/internal/kpi"
)

func main() {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		logger.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureOutputDir(); err != nil {
		logger.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}

	builder := kpi.NewBuilder(paths, logger)
	kpiTable, err := builder.Build()
	if err != nil {
		logger.Error("Failed to build KPI table", "error", err)
		os.Exit(1)
	}

	if err := exporter.WriteWorkbook(kpiTable, paths.KPIWorkbookXLSX); err != nil {
		logger.Error("Failed to export KPI workbook", "error", err)
		os.Exit(1)
	}
	logger.Info("KPI workbook written", "path", paths.KPIWorkbookXLSX)

	if err := kpi.Fprint(os.Stdout, kpiTable, kpi.BuilderView); err != nil {
		logger.Error("Failed to print KPI view", "error", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)
	return logger
}
