package kpi

import (
	"fmt"
	"io"

	"finkpi/internal/table"
)

// BuilderView lists the columns printed after computing the KPI table.
var BuilderView = []string{"Year", "OperatingMargin", "NetMargin", "ROA", "ROE"}

// ReporterView lists the columns printed after rendering the trend charts.
var ReporterView = []string{"Year", "OperatingMargin", "NetMargin", "ROA", "ROE", "DebtToEquity"}

// Fprint writes a fixed-width view of the named columns for human
// inspection. Year prints as an integer, ratios with four decimals.
func Fprint(w io.Writer, t *table.Table, columns []string) error {
	data := make([][]float64, len(columns))
	widths := make([]int, len(columns))
	for i, name := range columns {
		values, err := t.Column(name)
		if err != nil {
			return err
		}
		data[i] = values
		widths[i] = len(name)
		if name != "Year" && widths[i] < 8 {
			widths[i] = 8
		}
	}

	for i, name := range columns {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintf(w, "%*s", widths[i], name)
	}
	fmt.Fprintln(w)

	for row := 0; row < t.NumRows(); row++ {
		for i, name := range columns {
			if i > 0 {
				fmt.Fprint(w, "  ")
			}
			if name == "Year" {
				fmt.Fprintf(w, "%*.0f", widths[i], data[i][row])
			} else {
				fmt.Fprintf(w, "%*.4f", widths[i], data[i][row])
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}
