// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for ballot.
//
// Data flow: RawRow (from the out-of-scope BallotParser collaborator) ->
// Load -> BallotTable -> Match (pairs two tables) -> Matrix (dense
// extraction for transfer/irregularity/metrics).
//
// Complexity:
//   - Load:   O(rows) time/space.
//   - Match:  O(|e2 rows|) time, O(1) extra space beyond the output.
//   - Matrix: O(rows * len(orderedParties)) time/space.
package ballot
