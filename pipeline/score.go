// File: score.go
// Role: the IrregularityScorer stage, converting ballot.Precinct rows
// into irregularity.Precinct and running Score under the pipeline
// config's thresholds.
package pipeline

import (
	"context"

	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/catalog"
	"github.com/harelcain/electiontransfer/collab"
	"github.com/harelcain/electiontransfer/irregularity"
)

// ScoreIrregularities runs the precinct-level anomaly scorer over one
// election's ballot table, then applies the optional
// VerifierCollaborator correction filter when verifier is non-nil.
// metrics may be nil; when non-nil, its AnomaliesFound gauge is set to
// the final (post-filter) anomaly count.
func ScoreIrregularities(ctx context.Context, log *Logger, table *ballot.BallotTable, columns []catalog.PartyCode, opts irregularity.Options, verifier collab.VerifierCollaborator, keepFixed bool, metrics *Collector) ([]irregularity.Anomaly, error) {
	colStrings := make([]string, len(columns))
	for i, c := range columns {
		colStrings[i] = string(c)
	}
	opts.Columns = colStrings

	rows := table.Rows()
	precincts := make([]irregularity.Precinct, len(rows))
	idByString := make(map[string]ballot.PrecinctId, len(rows))
	for i, p := range rows {
		votes := make(map[string]int, len(p.Votes))
		for code, v := range p.Votes {
			votes[string(code)] = v
		}
		reportId := p.Id.String()
		precincts[i] = irregularity.Precinct{
			Id: reportId, Votes: votes, Valid: p.Valid, Invalid: p.Invalid, Voted: p.Voted, Eligible: p.Eligible,
		}
		idByString[reportId] = p.Id
	}

	anomalies, err := irregularity.Score(precincts, opts)
	if err != nil {
		return nil, err
	}
	log.Info("irregularity scoring complete", "anomalies", len(anomalies), "election", string(table.Election))

	if verifier == nil {
		if metrics != nil {
			metrics.AnomaliesFound.Set(float64(len(anomalies)))
		}
		return anomalies, nil
	}

	settlementOf := func(precinctId string) (int, string) {
		id := idByString[precinctId]
		return id.Settlement, id.Number
	}
	filtered, err := irregularity.FilterCorrected(ctx, anomalies, string(table.Election), settlementOf, verifier, keepFixed)
	if err != nil {
		return nil, err
	}
	if metrics != nil {
		metrics.AnomaliesFound.Set(float64(len(filtered)))
	}
	return filtered, nil
}
