// Package metrics aggregates precinct-level ballot data into
// settlement-level summaries and derives cross-election comparison
// statistics: Pedersen volatility, Herfindahl-Hirschman concentration,
// cosine similarity, Pearson correlation, and turnout change.
package metrics

import "github.com/harelcain/electiontransfer/catalog"

// PrecinctInput is one precinct's contribution to settlement
// aggregation: its canonical settlement name, raw vote counts, and
// turnout figures.
type PrecinctInput struct {
	Settlement string
	Votes      map[string]int
	Valid      int
	Voted      int
	Eligible   int
}

// Settlement is the aggregated record for one settlement within one
// election.
type Settlement struct {
	Name         string
	Voters       int
	Eligible     int
	Proportions  map[string]float64
	WinningParty string
	Turnout      float64 // percentage; 0 when Eligible == 0
}

// ConcentrationThresholds reports the minimum number of settlements,
// sorted descending by a party's absolute vote count, whose cumulative
// share crosses each threshold.
type ConcentrationThresholds struct {
	S50, S75, S90, S98 int
}

// HHIResult is one party's concentration summary for a single election.
type HHIResult struct {
	HHI                 float64
	EffectiveSettlements int
	Thresholds           ConcentrationThresholds
}

// catalogView is the subset of catalog.Catalog that Pedersen needs,
// narrowed to ease testing with a fake.
type catalogView interface {
	FamilyOf(code catalog.PartyCode, election catalog.ElectionId) (catalog.FamilyId, bool)
}
