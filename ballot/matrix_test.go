package ballot_test

import (
	"testing"

	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/catalog"
	"github.com/stretchr/testify/require"
)

func TestMatrix_ZeroFillsAbsentParty(t *testing.T) {
	table := ballot.Load([]ballot.RawRow{
		row(1001, "1", map[ballot.PartyCode]int{"A": 10, "B": 5}),
		row(1002, "1", map[ballot.PartyCode]int{"A": 2}),
	}, e1, 0, nil)

	m := ballot.Matrix(table.Rows(), []catalog.PartyCode{"A", "B", "C"})
	require.Equal(t, []catalog.PartyCode{"A", "B", "C"}, m.Columns)
	require.Equal(t, int64(10), m.Data[0][0])
	require.Equal(t, int64(5), m.Data[0][1])
	require.Equal(t, int64(0), m.Data[0][2])
	require.Equal(t, int64(2), m.Data[1][0])
	require.Equal(t, int64(0), m.Data[1][1])
}

func TestMatrix_ColumnOrderIsDeclaredNotAlphabetical(t *testing.T) {
	table := ballot.Load([]ballot.RawRow{
		row(1001, "1", map[ballot.PartyCode]int{"Z": 1, "A": 2}),
	}, e1, 0, nil)
	m := ballot.Matrix(table.Rows(), []catalog.PartyCode{"Z", "A"})
	require.Equal(t, int64(1), m.Data[0][0])
	require.Equal(t, int64(2), m.Data[0][1])
}
