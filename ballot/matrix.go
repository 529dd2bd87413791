// File: matrix.go
// Role: dense precincts×parties count extraction.
//
// Adapted from a graph-adjacency-matrix idiom (an Index map[string]int
// keying a dense backing slice) to key precincts and party columns
// instead of graph vertices.
package ballot

import "github.com/harelcain/electiontransfer/catalog"

// CountMatrix is a dense precincts×parties integer matrix together with
// the row/column identifiers it was built from, in the order Matrix
// received them. Column order is the declared order, never alphabetical
// or map-iteration order.
type CountMatrix struct {
	RowIds  []PrecinctId
	Columns []catalog.PartyCode
	Data    [][]int64 // Data[row][col]
}

// Matrix returns the precincts-by-parties count matrix for the given
// rows, with columns in orderedParties order, zero-filling any party
// absent from a given precinct's Votes.
func Matrix(rows []Precinct, orderedParties []catalog.PartyCode) CountMatrix {
	colIdx := make(map[catalog.PartyCode]int, len(orderedParties))
	for i, c := range orderedParties {
		colIdx[c] = i
	}

	ids := make([]PrecinctId, len(rows))
	data := make([][]int64, len(rows))
	for r, p := range rows {
		ids[r] = p.Id
		row := make([]int64, len(orderedParties))
		for code, v := range p.Votes {
			if j, ok := colIdx[code]; ok {
				row[j] = int64(v)
			}
		}
		data[r] = row
	}

	cols := make([]catalog.PartyCode, len(orderedParties))
	copy(cols, orderedParties)

	return CountMatrix{RowIds: ids, Columns: cols, Data: data}
}

// RowsForPairs extracts the Precinct rows of table in the order given by
// ids, silently skipping any id absent from table. Callers that pass the
// source or target half of Match's own output never hit this case, since
// Match only emits ids it already confirmed present in both tables.
func RowsForPairs(table *BallotTable, ids []PrecinctId) []Precinct {
	out := make([]Precinct, 0, len(ids))
	for _, id := range ids {
		if p, ok := table.Lookup(id); ok {
			out = append(out, p)
		}
	}
	return out
}
