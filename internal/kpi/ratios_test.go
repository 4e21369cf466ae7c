package kpi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finkpi/internal/table"
)

// statementColumns is the full post-rename column set a joined statement
// table carries before derivation.
var statementColumns = []string{
	"Year", "Revenue", "OperatingIncome", "NetIncome", "InterestExpense",
	"TotalAssets", "TotalEquity", "TotalLiabilities", "Inventory",
	"AccountsReceivable", "CurrentAssets", "CurrentLiabilities",
}

func newJoinedTable(t *testing.T, rows [][]float64) *table.Table {
	t.Helper()

	tbl := table.New()
	for col, name := range statementColumns {
		values := make([]float64, len(rows))
		for i, row := range rows {
			values[i] = row[col]
		}
		require.NoError(t, tbl.AddColumn(name, values))
	}
	return tbl
}

func TestRatios_Order(t *testing.T) {
	expected := []string{
		"OperatingMargin", "NetMargin", "ROA", "ROE",
		"CurrentRatio", "QuickRatio", "DebtToEquity", "InterestCoverage",
		"AssetTurnover", "ReceivablesTurnover",
	}
	require.Len(t, Ratios, len(expected))
	for i, ratio := range Ratios {
		assert.Equal(t, expected[i], ratio.Name)
	}
}

func TestDerive_ExactFormulas(t *testing.T) {
	tbl := newJoinedTable(t, [][]float64{
		// Year Rev OpInc NetInc IntExp TotA TotE TotL Inv AR CA CL
		{2021, 100, 20, 10, 4, 200, 80, 120, 5, 25, 50, 40},
		{2022, 110, 33, 11, 5, 220, 88, 132, 6, 22, 55, 44},
	})

	require.NoError(t, Derive(tbl))

	revenue, err := tbl.Column("Revenue")
	require.NoError(t, err)

	// Every derived row must reproduce its formula exactly.
	for _, ratio := range Ratios {
		derived, err := tbl.Column(ratio.Name)
		require.NoError(t, err)
		require.Len(t, derived, len(revenue))

		row := make(map[string]float64, len(ratio.Inputs))
		for i := range derived {
			for _, input := range ratio.Inputs {
				values, err := tbl.Column(input)
				require.NoError(t, err)
				row[input] = values[i]
			}
			assert.Equal(t, ratio.Compute(row), derived[i],
				"ratio %s row %d", ratio.Name, i)
		}
	}

	// Spot-check a few known values.
	operating, err := tbl.Column("OperatingMargin")
	require.NoError(t, err)
	assert.Equal(t, 0.20, operating[0])
	assert.Equal(t, 0.30, operating[1])

	quick, err := tbl.Column("QuickRatio")
	require.NoError(t, err)
	assert.Equal(t, (50.0-5.0)/40.0, quick[0])

	coverage, err := tbl.Column("InterestCoverage")
	require.NoError(t, err)
	assert.Equal(t, 5.0, coverage[0])
}

func TestDerive_AppendsInOrderAfterSourceColumns(t *testing.T) {
	tbl := newJoinedTable(t, [][]float64{
		{2021, 100, 20, 10, 4, 200, 80, 120, 5, 25, 50, 40},
	})

	require.NoError(t, Derive(tbl))

	columns := tbl.Columns()
	require.Len(t, columns, len(statementColumns)+len(Ratios))
	for i, ratio := range Ratios {
		assert.Equal(t, ratio.Name, columns[len(statementColumns)+i])
	}
}

func TestDerive_ZeroDenominatorYieldsInf(t *testing.T) {
	tbl := newJoinedTable(t, [][]float64{
		{2021, 0, 20, 10, 4, 200, 80, 120, 5, 25, 50, 40},
	})

	require.NoError(t, Derive(tbl))

	operating, err := tbl.Column("OperatingMargin")
	require.NoError(t, err)
	assert.True(t, math.IsInf(operating[0], 1))

	net, err := tbl.Column("NetMargin")
	require.NoError(t, err)
	assert.True(t, math.IsInf(net[0], 1))
}

func TestDerive_MissingValuePropagatesNaN(t *testing.T) {
	tbl := newJoinedTable(t, [][]float64{
		{2021, 100, 20, math.NaN(), 4, 200, 80, 120, 5, 25, 50, 40},
	})

	require.NoError(t, Derive(tbl))

	net, err := tbl.Column("NetMargin")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(net[0]))
}

func TestDerive_MissingColumnFailsWithSchemaError(t *testing.T) {
	tbl := table.New()
	require.NoError(t, tbl.AddColumn("Year", []float64{2021}))
	require.NoError(t, tbl.AddColumn("Revenue", []float64{100}))

	err := Derive(tbl)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "OperatingIncome", schemaErr.Column)
}

func TestDerive_UnrenamedBalanceColumnSurfacesDownstream(t *testing.T) {
	// A balance sheet whose TotalCurrentAssets was never renamed fails at
	// the first ratio that expects CurrentAssets.
	tbl := table.New()
	columns := map[string][]float64{
		"Year":               {2021},
		"Revenue":            {100},
		"OperatingIncome":    {20},
		"NetIncome":          {10},
		"InterestExpense":    {4},
		"TotalAssets":        {200},
		"TotalEquity":        {80},
		"TotalLiabilities":   {120},
		"Inventory":          {5},
		"AccountsReceivable": {25},
		"TotalCurrentAssets": {50},
	}
	for name, values := range columns {
		require.NoError(t, tbl.AddColumn(name, values))
	}

	err := Derive(tbl)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "CurrentAssets", schemaErr.Column)
}
