// Package ballot models one election's per-precinct ballot counts as a
// columnar table of immutable Precinct records, and provides
// canonical-id construction, cross-election pairing, and dense matrix
// extraction.
//
// Errors:
//
//	ErrEmptyTable         - a BallotTable has zero rows after load.
//	ErrUnknownPrecinctId  - a lookup referenced an id not present in the table.
package ballot

import (
	"errors"
	"fmt"

	"github.com/harelcain/electiontransfer/catalog"
)

// ErrEmptyTable indicates a BallotTable has zero rows after loading.
// Load itself never errors, and no function in this module returns
// ErrEmptyTable.
var ErrEmptyTable = errors.New("ballot: table has zero rows")

// ErrUnknownPrecinctId indicates a lookup referenced a PrecinctId absent
// from the table.
var ErrUnknownPrecinctId = errors.New("ballot: unknown precinct id")

// ElectionId re-exports catalog.ElectionId so callers need only import one
// package for the common election-scoping type.
type ElectionId = catalog.ElectionId

// PartyCode re-exports catalog.PartyCode.
type PartyCode = catalog.PartyCode

// excludedSettlement is the publisher's special aggregate code for
// external/diplomatic envelopes, always dropped from BallotTable.
const excludedSettlement = 9999

// PrecinctId is the canonical key settlement_code + canonical precinct
// number. Equality and ordering are defined on this type, never on the
// raw (settlement_name, precinct_number) strings the upstream feed
// supplies.
type PrecinctId struct {
	Settlement int
	Number     string // canonical: trailing ".0" stripped, divisor applied
}

// String renders a PrecinctId as "settlement·number", its canonical
// textual form.
func (id PrecinctId) String() string {
	return fmt.Sprintf("%d·%s", id.Settlement, id.Number)
}

// Less orders PrecinctIds by settlement then by canonical number string,
// giving BallotTable's diagnostics and tests a stable order independent
// of map iteration.
func (id PrecinctId) Less(other PrecinctId) bool {
	if id.Settlement != other.Settlement {
		return id.Settlement < other.Settlement
	}
	return id.Number < other.Number
}

// RawRow is the row shape emitted by the (out-of-scope) BallotParser
// collaborator: one record per precinct, party votes keyed by the codes
// declared present in that election's raw feed.
type RawRow struct {
	SettlementCode int
	SettlementName string
	PrecinctNumber string // raw, possibly with a ".N" suffix
	Eligible       int    // 0 / absent is the documented sentinel for "missing"
	Voted          int
	Valid          int
	Invalid        int
	Votes          map[PartyCode]int
}

// Precinct is one immutable row of a BallotTable.
type Precinct struct {
	Id             PrecinctId
	SettlementName string // pre-canonical; canon.Canon applied by consumers, not here
	Eligible       int
	Voted          int
	Valid          int
	Invalid        int
	Votes          map[PartyCode]int
}

// Diagnostic is a non-fatal observation about one precinct's internal
// consistency: checked only where relevant, a violation is a signal,
// never a rejection.
type Diagnostic struct {
	Id      PrecinctId
	Kind    string
	Message string
}

const (
	// DiagValidInvalidMismatch flags |valid+invalid-voted| > 1.
	DiagValidInvalidMismatch = "valid_invalid_mismatch"
	// DiagVotedExceedsEligible flags voted > eligible when eligible > 0.
	DiagVotedExceedsEligible = "voted_exceeds_eligible"
	// DiagVoteSumMismatch flags sum(votes) != valid when valid > 0.
	DiagVoteSumMismatch = "vote_sum_mismatch"
)

// PrecinctPair is one matched (E1, E2) precinct produced by Match.
type PrecinctPair struct {
	Source PrecinctId
	Target PrecinctId
}
