package table

import (
	"fmt"
)

// MissingColumnError reports a column that a caller expected but the table
// does not carry. The column name is preserved so callers can surface it.
type MissingColumnError struct {
	Column string
}

// Error implements the error interface
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table: missing column %q", e.Column)
}

// Table is an ordered set of named float64 columns of equal length.
// Column order is significant: it is preserved through renames, joins and
// persistence so repeated runs produce identical artifacts.
type Table struct {
	columns []string
	cells   map[string][]float64
}

// New creates an empty table.
func New() *Table {
	return &Table{
		cells: make(map[string][]float64),
	}
}

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.cells[t.columns[0]])
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cells[name]
	return ok
}

// Column returns the values of the named column in row order.
// The returned slice is the table's backing storage, not a copy.
func (t *Table) Column(name string) ([]float64, error) {
	values, ok := t.cells[name]
	if !ok {
		return nil, &MissingColumnError{Column: name}
	}
	return values, nil
}

// AddColumn appends a column to the table. The first column added fixes the
// row count; later columns must match it. Adding an existing name replaces
// the values in place without changing column order.
func (t *Table) AddColumn(name string, values []float64) error {
	if n := t.NumRows(); len(t.columns) > 0 && len(values) != n {
		return fmt.Errorf("table: column %q has %d values, table has %d rows", name, len(values), n)
	}
	if _, ok := t.cells[name]; !ok {
		t.columns = append(t.columns, name)
	}
	t.cells[name] = values
	return nil
}

// Rename renames a column in place, keeping its position. Renaming a column
// the table does not carry is a no-op: absence surfaces at the first
// consumer that looks the new name up, not here.
func (t *Table) Rename(from, to string) {
	values, ok := t.cells[from]
	if !ok {
		return
	}
	for i, name := range t.columns {
		if name == from {
			t.columns[i] = to
			break
		}
	}
	delete(t.cells, from)
	t.cells[to] = values
}

// InnerJoin joins t with other on the named key column. The result keeps
// t's row order, restricted to key values present in both tables, and
// carries t's columns followed by other's columns minus the key. A NaN key
// never matches. Both tables must carry the key column.
func (t *Table) InnerJoin(other *Table, key string) (*Table, error) {
	leftKeys, err := t.Column(key)
	if err != nil {
		return nil, err
	}
	rightKeys, err := other.Column(key)
	if err != nil {
		return nil, err
	}

	// Map key value to row index on the right side. NaN keys insert
	// unreachable entries, which is exactly inner-join behaviour.
	rightRows := make(map[float64]int, len(rightKeys))
	for i, k := range rightKeys {
		rightRows[k] = i
	}

	var leftIdx, rightIdx []int
	for i, k := range leftKeys {
		if j, ok := rightRows[k]; ok {
			leftIdx = append(leftIdx, i)
			rightIdx = append(rightIdx, j)
		}
	}

	joined := New()
	for _, name := range t.columns {
		src := t.cells[name]
		values := make([]float64, len(leftIdx))
		for row, i := range leftIdx {
			values[row] = src[i]
		}
		if err := joined.AddColumn(name, values); err != nil {
			return nil, err
		}
	}
	for _, name := range other.columns {
		if name == key {
			continue
		}
		src := other.cells[name]
		values := make([]float64, len(rightIdx))
		for row, j := range rightIdx {
			values[row] = src[j]
		}
		if err := joined.AddColumn(name, values); err != nil {
			return nil, err
		}
	}
	return joined, nil
}
