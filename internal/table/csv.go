package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// utf8BOM is prepended to written files so Excel recognises the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile loads a CSV file into a table. The first row is the header; every
// other cell is parsed as float64. Cells that are empty or unparseable load
// as NaN so missing operands propagate through arithmetic instead of
// aborting the run. A leading UTF-8 BOM is stripped.
func ReadFile(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: no header row", filepath.Base(path))
	}

	header := records[0]
	rows := records[1:]

	t := New()
	for col, name := range header {
		values := make([]float64, len(rows))
		for i, row := range rows {
			values[i] = parseCell(row, col)
		}
		if err := t.AddColumn(name, values); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
	}
	return t, nil
}

// WriteFile persists a table as a CSV file, overwriting any existing file.
// The parent directory is created if absent. Values are formatted with the
// shortest representation that round-trips, so identical tables produce
// byte-identical files.
func WriteFile(t *Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.columns))
	for row := 0; row < t.NumRows(); row++ {
		for col, name := range t.columns {
			record[col] = formatCell(t.cells[name][row])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func parseCell(row []string, col int) float64 {
	if col >= len(row) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
