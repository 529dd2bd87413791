// Package abstain augments a vote count matrix with a synthetic
// "did-not-vote" column derived from eligible-voter totals.
//
// Errors:
//
//	ErrMissingEligible - neither an eligible total nor a national estimate
//	                      was available for a given precinct; the column
//	                      falls back to zero with a warning.
package abstain

import "errors"

// ErrMissingEligible is surfaced as a warning, never an abort: the
// abstain column for the affected precinct is set to zero.
var ErrMissingEligible = errors.New("abstain: eligible total unavailable, falling back to zero")

// AbstainLabel is the virtual party code appended to both the source and
// target axes of the transfer matrix when abstention augmentation is
// enabled.
const AbstainLabel = "abstain"

// PrecinctTurnout carries the inputs abstain needs per precinct: the
// reported eligible count (0 if absent) and the total votes cast.
type PrecinctTurnout struct {
	Eligible int
	Voted    int
}
