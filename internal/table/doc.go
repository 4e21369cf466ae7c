// Package table provides a small column-ordered table of float64 values
// used by the KPI pipeline: named column access, in-place renames, inner
// joins on a key column, and a CSV codec with stable formatting.
//
// All values are float64, including fiscal years (small integers, exact in
// float64). Arithmetic over columns follows IEEE-754 semantics: dividing by
// zero or by a missing value yields Inf or NaN, which round-trips through
// the CSV codec unchanged.
package table
