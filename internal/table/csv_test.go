package table

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "income.csv")
	content := "Year,Revenue,NetIncome\n2021,100,10\n2022,110,12\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Year", "Revenue", "NetIncome"}, tbl.Columns())
	assert.Equal(t, 2, tbl.NumRows())

	revenue, err := tbl.Column("Revenue")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 110}, revenue)
}

func TestReadFile_StripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Year,Revenue\n2021,100\n")...)
	require.NoError(t, os.WriteFile(path, content, 0644))

	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Year", "Revenue"}, tbl.Columns())
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadFile_UnparseableCellLoadsAsNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaps.csv")
	content := "Year,Revenue\n2021,\n2022,n/a\n2023,120\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := ReadFile(path)
	require.NoError(t, err)

	revenue, err := tbl.Column("Revenue")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(revenue[0]))
	assert.True(t, math.IsNaN(revenue[1]))
	assert.Equal(t, 120.0, revenue[2])
}

func TestWriteFile_RoundTrip(t *testing.T) {
	tbl := newTestTable(t, []string{"Year", "OperatingMargin", "NetMargin"}, [][]float64{
		{2021, 0.2, 0.1},
		{2022, math.Inf(1), math.NaN()},
		{2023, -0.05, math.Inf(-1)},
	})

	path := filepath.Join(t.TempDir(), "out", "kpi_table.csv")
	require.NoError(t, WriteFile(tbl, path))

	loaded, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, tbl.Columns(), loaded.Columns())
	assert.Equal(t, tbl.NumRows(), loaded.NumRows())

	margin, err := loaded.Column("OperatingMargin")
	require.NoError(t, err)
	assert.Equal(t, 0.2, margin[0])
	assert.True(t, math.IsInf(margin[1], 1))

	net, err := loaded.Column("NetMargin")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(net[1]))
	assert.True(t, math.IsInf(net[2], -1))
}

func TestWriteFile_Deterministic(t *testing.T) {
	tbl := newTestTable(t, []string{"Year", "ROA"}, [][]float64{
		{2021, 0.05},
		{2022, 1.0 / 3.0},
	})

	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, WriteFile(tbl, first))
	require.NoError(t, WriteFile(tbl, second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kpi_table.csv")

	big := newTestTable(t, []string{"Year"}, [][]float64{{2020}, {2021}, {2022}})
	require.NoError(t, WriteFile(big, path))

	small := newTestTable(t, []string{"Year"}, [][]float64{{2023}})
	require.NoError(t, WriteFile(small, path))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.NumRows())
}
