package kpi

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"finkpi/internal/config"
	"finkpi/internal/table"
)

// Builder derives the KPI table from the raw financial statements.
type Builder struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewBuilder creates a builder over the given path set.
func NewBuilder(paths *config.Paths, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{paths: paths, logger: logger}
}

// Build loads the income statement and balance sheet, reconciles column
// naming, joins them on Year and derives the ten KPI columns. The result is
// persisted to the KPI table artifact (overwriting any previous run) and
// returned. Row order follows the income statement, restricted to years
// present in both statements.
func (b *Builder) Build() (*table.Table, error) {
	income, err := table.ReadFile(b.paths.IncomeStatementCSV)
	if err != nil {
		return nil, fmt.Errorf("load income statement: %w", err)
	}
	balance, err := table.ReadFile(b.paths.BalanceSheetCSV)
	if err != nil {
		return nil, fmt.Errorf("load balance sheet: %w", err)
	}

	b.logger.Info("loaded financial statements",
		"income_rows", income.NumRows(),
		"balance_rows", balance.NumRows())

	// Normalize balance sheet column names so the ratio formulas match.
	balance.Rename("TotalCurrentAssets", "CurrentAssets")
	balance.Rename("TotalCurrentLiabilities", "CurrentLiabilities")

	joined, err := income.InnerJoin(balance, "Year")
	if err != nil {
		var missing *table.MissingColumnError
		if errors.As(err, &missing) {
			return nil, &SchemaError{Column: missing.Column}
		}
		return nil, fmt.Errorf("join statements: %w", err)
	}

	if err := Derive(joined); err != nil {
		return nil, err
	}

	if err := table.WriteFile(joined, b.paths.KPITableCSV); err != nil {
		return nil, fmt.Errorf("persist kpi table: %w", err)
	}

	b.logger.Info("kpi table written",
		"path", b.paths.KPITableCSV,
		"rows", joined.NumRows(),
		"columns", len(joined.Columns()))
	return joined, nil
}

// LoadOrBuild returns the persisted KPI table if the artifact exists,
// trusting its schema as-is, and only builds from the raw statements when
// it is absent. There is no staleness check: a stale artifact is returned
// verbatim until it is deleted.
func (b *Builder) LoadOrBuild() (*table.Table, error) {
	return LoadOr(b.paths.KPITableCSV, func() (*table.Table, error) {
		b.logger.Info("no persisted kpi table, building from statements",
			"path", b.paths.KPITableCSV)
		return b.Build()
	})
}

// LoadOr returns the table persisted at path if it exists, and otherwise
// invokes build. Exposed separately from Builder so the cache-or-compute
// branch can be exercised with an arbitrary build step.
func LoadOr(path string, build func() (*table.Table, error)) (*table.Table, error) {
	if _, err := os.Stat(path); err == nil {
		return table.ReadFile(path)
	}
	return build()
}
