package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the file locations the pipeline reads and writes.
// This is the single source of truth for paths in the application.
type Paths struct {
	ExecutableDir string
	DataDir       string
	OutputDir     string

	// Raw statement inputs
	IncomeStatementCSV string
	BalanceSheetCSV    string

	// Generated artifacts
	KPITableCSV     string
	KPIWorkbookXLSX string
}

// GetPaths returns the application paths relative to the executable
// location. All paths are relative to the executable directory, never the
// current working directory, so the tools behave the same wherever they are
// invoked from.
//
// Directory structure:
//
//	data/
//	  sample/
//	    comcast_income_statement.csv
//	    comcast_balance_sheet.csv
//	output/
//	  kpi_table.csv
//	  kpi_table.xlsx
//	  *_trend.png
func GetPaths() (*Paths, error) {
	exeDir, err := executableDir()
	if err != nil {
		return nil, err
	}
	return PathsIn(exeDir), nil
}

// PathsIn builds the path set rooted at the given base directory. Tests and
// config overrides use this directly.
func PathsIn(baseDir string) *Paths {
	p := &Paths{ExecutableDir: baseDir}
	p.SetDataDir(filepath.Join(baseDir, "data", "sample"))
	p.SetOutputDir(filepath.Join(baseDir, "output"))
	return p
}

// SetDataDir repoints the raw statement inputs at a different directory.
func (p *Paths) SetDataDir(dir string) {
	p.DataDir = dir
	p.IncomeStatementCSV = filepath.Join(dir, "comcast_income_statement.csv")
	p.BalanceSheetCSV = filepath.Join(dir, "comcast_balance_sheet.csv")
}

// SetOutputDir repoints the generated artifacts at a different directory.
func (p *Paths) SetOutputDir(dir string) {
	p.OutputDir = dir
	p.KPITableCSV = filepath.Join(dir, "kpi_table.csv")
	p.KPIWorkbookXLSX = filepath.Join(dir, "kpi_table.xlsx")
}

// EnsureOutputDir creates the output directory if it does not exist.
func (p *Paths) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// TrendChartPath returns the full path for a trend chart artifact.
func (p *Paths) TrendChartPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}
