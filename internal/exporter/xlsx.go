package exporter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"finkpi/internal/table"
)

// SheetName is the single worksheet the KPI workbook carries.
const SheetName = "KPI"

// WriteWorkbook writes the KPI table as an Excel workbook with a bold
// header row, overwriting any existing file. Non-finite ratio values are
// written as their text form since a worksheet cell cannot hold Inf or NaN.
func WriteWorkbook(t *table.Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name worksheet: %w", err)
	}

	columns := t.Columns()
	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell for %s: %w", name, err)
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return fmt.Errorf("write header %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for col, name := range columns {
		values, err := t.Column(name)
		if err != nil {
			return err
		}
		for row, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("cell for %s row %d: %w", name, row, err)
			}
			if err := setNumericCell(f, cell, v); err != nil {
				return fmt.Errorf("write %s row %d: %w", name, row, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", filepath.Base(path), err)
	}
	return nil
}

func setNumericCell(f *excelize.File, cell string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.SetCellValue(SheetName, cell, fmt.Sprintf("%v", v))
	}
	return f.SetCellValue(SheetName, cell, v)
}
