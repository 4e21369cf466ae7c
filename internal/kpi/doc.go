// Package kpi builds the financial KPI table: it loads the income statement
// and balance sheet, reconciles balance sheet column naming, inner-joins
// the two on fiscal year and derives ten standard ratios covering
// profitability, liquidity, leverage and efficiency.
//
// The ratio definitions live in Ratios as data so the derivation step and
// its tests share a single source of truth. Division is plain float64
// arithmetic: a zero or missing denominator yields Inf or NaN in the output
// row, never an error. The joined table is persisted as the kpi_table.csv
// artifact, which later runs reuse as-is via LoadOrBuild.
package kpi
