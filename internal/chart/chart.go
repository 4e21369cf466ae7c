package chart

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"finkpi/internal/config"
	"finkpi/internal/table"
)

// TrendSpec names one KPI column to chart, its y-axis label and the
// artifact filename under the output directory.
type TrendSpec struct {
	Column   string
	YLabel   string
	Filename string
}

// DefaultTrends is the fixed chart set rendered by visualize-trends,
// in rendering order.
var DefaultTrends = []TrendSpec{
	{Column: "OperatingMargin", YLabel: "Operating Margin", Filename: "operating_margin_trend.png"},
	{Column: "NetMargin", YLabel: "Net Margin", Filename: "net_margin_trend.png"},
	{Column: "ROE", YLabel: "Return on Equity", Filename: "roe_trend.png"},
	{Column: "DebtToEquity", YLabel: "Debt-to-Equity", Filename: "debt_to_equity_trend.png"},
}

// Renderer draws KPI trend charts as PNG artifacts.
type Renderer struct {
	width  vg.Length
	height vg.Length
	logger *slog.Logger
}

// NewRenderer creates a renderer with the configured figure dimensions.
func NewRenderer(cfg config.ChartConfig, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	width := cfg.WidthInches
	if width <= 0 {
		width = 8
	}
	height := cfg.HeightInches
	if height <= 0 {
		height = 4
	}
	return &Renderer{
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
		logger: logger,
	}
}

// PlotTrend renders a line-and-marker chart of the named column over Year
// and writes it to dest, overwriting any existing file. If the table lacks
// Year or the named column, a MissingColumnError naming it is returned and
// no artifact is written.
func (r *Renderer) PlotTrend(t *table.Table, column, yLabel, dest string) error {
	years, err := t.Column("Year")
	if err != nil {
		return err
	}
	values, err := t.Column(column)
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, len(years))
	for i := range years {
		pts[i].X = years[i]
		pts[i].Y = values[i]
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Trend Over Time", column)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = yLabel

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(2), vg.Points(4)}
	grid.Vertical.Dashes = dashes
	grid.Vertical.Color = color.Gray{Y: 0xB0}
	grid.Horizontal.Dashes = dashes
	grid.Horizontal.Color = color.Gray{Y: 0xB0}
	p.Add(grid)

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("build line for %s: %w", column, err)
	}
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	if err := p.Save(r.width, r.height, dest); err != nil {
		return fmt.Errorf("save chart %s: %w", filepath.Base(dest), err)
	}

	r.logger.Info("trend chart written", "column", column, "path", dest)
	return nil
}

// TrendCharts renders the DefaultTrends set into outputDir, in order. The
// first failure aborts the remaining charts and propagates.
func (r *Renderer) TrendCharts(t *table.Table, outputDir string) error {
	for _, spec := range DefaultTrends {
		dest := filepath.Join(outputDir, spec.Filename)
		if err := r.PlotTrend(t, spec.Column, spec.YLabel, dest); err != nil {
			return fmt.Errorf("render %s trend: %w", spec.Column, err)
		}
	}
	return nil
}
