// Package collab declares the external collaborator interfaces this
// module depends on but does not implement: BallotParser and
// VerifierCollaborator. Concrete implementations live outside
// this module and are injected by callers; tests use in-memory fakes.
package collab

import "context"

// Row is one parsed ballot row, matching BallotParser's required
// schema: settlement_name, settlement_code, precinct_number, eligible,
// voted, invalid, valid, plus one integer column per party code.
type Row struct {
	SettlementName string
	SettlementCode int
	PrecinctNumber string
	Eligible       int
	Voted          int
	Invalid        int
	Valid          int
	Votes          map[string]int
}

// ColumnMap states which source column maps to which required field and
// which columns are party-code vote columns.
type ColumnMap struct {
	SettlementName string
	SettlementCode string
	PrecinctNumber string
	Eligible       string
	Voted          string
	Invalid        string
	Valid          string
	PartyColumns   []string
}

// BallotParser consumes a source identifier, a declared text encoding,
// and a ColumnMap, and produces a sequence of Row records.
type BallotParser interface {
	Parse(ctx context.Context, source string, encoding string, columns ColumnMap) ([]Row, error)
}

// VerifierCollaborator queries an authoritative source to determine
// whether a precinct's counts have been replaced since the raw feed was
// published. Pure query; no side effects expected. Rate-limiting is the
// collaborator's concern, not the core's.
type VerifierCollaborator interface {
	WasCorrected(ctx context.Context, election string, settlementCode int, precinctNumber string) (corrected bool, note string, err error)
}
