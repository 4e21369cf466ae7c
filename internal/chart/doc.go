// Package chart renders KPI trend charts: one PNG line-and-marker plot per
// ratio, fiscal year on the x-axis, with light dashed gridlines. Chart
// values are taken from the KPI table as-is; non-finite ratios pass through
// to the plotting layer unguarded.
package chart
