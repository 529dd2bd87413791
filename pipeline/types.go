// Package pipeline wires catalog, ballot, abstain, transfer, simulate,
// irregularity, and metrics into the end-to-end operations: load both
// elections' ballot tables, match precincts, solve the transfer matrix,
// optionally augment with abstention, forward-simulate a synthetic
// election, score irregularities, and aggregate settlement-level
// metrics.
//
// Each exported function here is a thin, independently callable stage
// rather than one monolithic Run, so a caller (the auditctl CLI or a
// future collaborator service) can invoke only the stage it needs.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/harelcain/electiontransfer/catalog"
)

// RunID mints a fresh run identifier using the same uuid.New().String()
// idiom used elsewhere in this codebase to tag one-off entities,
// repurposed here to tag one pipeline invocation.
func RunID() string {
	return uuid.New().String()
}

// ElectionPair names the two elections a stage compares.
type ElectionPair struct {
	Source catalog.ElectionId
	Target catalog.ElectionId
}
