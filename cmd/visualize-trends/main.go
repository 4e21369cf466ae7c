// Command visualize-trends renders trend charts for selected KPIs. It
// reuses the persisted KPI table when present and otherwise builds it from
// the raw statements, then writes one PNG line chart per ratio under
// output/ and prints a compact ratio view.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"finkpi/internal/chart"
	"finkpi/internal/config"
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
	kpiTable, err := builder.LoadOrBuild()
	if err != nil {
		logger.Error("Failed to load or build KPI table", "error", err)
		os.Exit(1)
	}

	renderer := chart.NewRenderer(cfg.Chart, logger)
	if err := renderer.TrendCharts(kpiTable, paths.OutputDir); err != nil {
		logger.Error("Failed to render trend charts", "error", err)
		os.Exit(1)
	}

	if err := kpi.Fprint(os.Stdout, kpiTable, kpi.ReporterView); err != nil {
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
