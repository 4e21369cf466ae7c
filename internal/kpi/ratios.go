package kpi

import (
	"fmt"

	"finkpi/internal/table"
)

// SchemaError reports a source column the derivation step expected but the
// joined table does not carry.
type SchemaError struct {
	Column string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("kpi: expected column %q in joined statement table", e.Column)
}

// Ratio defines one derived KPI column: its name, the source columns it
// reads, and the arithmetic over a single row's values. The same
// definitions drive both derivation and the formula tests.
type Ratio struct {
	Name    string
	Inputs  []string
	Compute func(row map[string]float64) float64
}

// Ratios lists the ten derived columns in derivation and output order.
// Formulas divide directly; a zero or NaN denominator produces Inf or NaN
// in the output row rather than an error.
var Ratios = []Ratio{
	{
		Name:   "OperatingMargin",
		Inputs: []string{"OperatingIncome", "Revenue"},
		Compute: func(r map[string]float64) float64 {
			return r["OperatingIncome"] / r["Revenue"]
		},
	},
	{
		Name:   "NetMargin",
		Inputs: []string{"NetIncome", "Revenue"},
		Compute: func(r map[string]float64) float64 {
			return r["NetIncome"] / r["Revenue"]
		},
	},
	{
		Name:   "ROA",
		Inputs: []string{"NetIncome", "TotalAssets"},
		Compute: func(r map[string]float64) float64 {
			return r["NetIncome"] / r["TotalAssets"]
		},
	},
	{
		Name:   "ROE",
		Inputs: []string{"NetIncome", "TotalEquity"},
		Compute: func(r map[string]float64) float64 {
			return r["NetIncome"] / r["TotalEquity"]
		},
	},
	{
		Name:   "CurrentRatio",
		Inputs: []string{"CurrentAssets", "CurrentLiabilities"},
		Compute: func(r map[string]float64) float64 {
			return r["CurrentAssets"] / r["CurrentLiabilities"]
		},
	},
	{
		Name:   "QuickRatio",
		Inputs: []string{"CurrentAssets", "Inventory", "CurrentLiabilities"},
		Compute: func(r map[string]float64) float64 {
			return (r["CurrentAssets"] - r["Inventory"]) / r["CurrentLiabilities"]
		},
	},
	{
		Name:   "DebtToEquity",
		Inputs: []string{"TotalLiabilities", "TotalEquity"},
		Compute: func(r map[string]float64) float64 {
			return r["TotalLiabilities"] / r["TotalEquity"]
		},
	},
	{
		Name:   "InterestCoverage",
		Inputs: []string{"OperatingIncome", "InterestExpense"},
		Compute: func(r map[string]float64) float64 {
			return r["OperatingIncome"] / r["InterestExpense"]
		},
	},
	{
		Name:   "AssetTurnover",
		Inputs: []string{"Revenue", "TotalAssets"},
		Compute: func(r map[string]float64) float64 {
			return r["Revenue"] / r["TotalAssets"]
		},
	},
	{
		Name:   "ReceivablesTurnover",
		Inputs: []string{"Revenue", "AccountsReceivable"},
		Compute: func(r map[string]float64) float64 {
			return r["Revenue"] / r["AccountsReceivable"]
		},
	},
}

// Derive appends the ten ratio columns to the joined statement table, in
// Ratios order. The first ratio whose input column is absent aborts the
// derivation with a SchemaError naming that column.
func Derive(t *table.Table) error {
	for _, ratio := range Ratios {
		inputs := make(map[string][]float64, len(ratio.Inputs))
		for _, name := range ratio.Inputs {
			values, err := t.Column(name)
			if err != nil {
				return &SchemaError{Column: name}
			}
			inputs[name] = values
		}

		values := make([]float64, t.NumRows())
		row := make(map[string]float64, len(ratio.Inputs))
		for i := range values {
			for name, col := range inputs {
				row[name] = col[i]
			}
			values[i] = ratio.Compute(row)
		}
		if err := t.AddColumn(ratio.Name, values); err != nil {
			return fmt.Errorf("derive %s: %w", ratio.Name, err)
		}
	}
	return nil
}
