// File: solve.go
// Role: the TransferSolver stage of the build order, wiring Match,
// Matrix extraction, optional abstention augmentation, and Solve into
// one callable unit.
package pipeline

import (
	"fmt"

	"github.com/harelcain/electiontransfer/abstain"
	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/catalog"
	"github.com/harelcain/electiontransfer/config"
	"github.com/harelcain/electiontransfer/transfer"
)

// SolveResult is the outcome of one transfer-matrix solve, together with
// the matched-precinct list and column order it was fit against.
type SolveResult struct {
	Pairs         []ballot.PrecinctPair
	SourceColumns []catalog.PartyCode
	TargetColumns []catalog.PartyCode
	Result        transfer.Result
	Flows         []transfer.Flow
	ExportedFlows []transfer.Flow
}

// SolveTransfer runs the full transfer-matrix estimation stage for
// one pair of already-loaded ballot tables: matches precincts, builds
// the dense count matrices, optionally appends an abstention column, and
// solves for M. metrics may be nil; when non-nil, its gauges are set to
// this run's matched-precinct count and solver diagnostics.
func SolveTransfer(log *Logger, e1, e2 *ballot.BallotTable, sourceParties, targetParties []catalog.PartyCode, cfg config.Config, metrics *Collector) (SolveResult, error) {
	pairs := ballot.Match(e1, e2)
	log.Info("matched precincts", "count", len(pairs), "source_election", string(e1.Election), "target_election", string(e2.Election))
	if metrics != nil {
		metrics.MatchedPrecincts.Set(float64(len(pairs)))
	}
	if len(pairs) == 0 {
		return SolveResult{}, fmt.Errorf("pipeline: %w", transfer.ErrInputEmpty)
	}

	sourceIds := make([]ballot.PrecinctId, len(pairs))
	targetIds := make([]ballot.PrecinctId, len(pairs))
	for i, p := range pairs {
		sourceIds[i] = p.Source
		targetIds[i] = p.Target
	}

	sourceRows := ballot.RowsForPairs(e1, sourceIds)
	targetRows := ballot.RowsForPairs(e2, targetIds)

	sourceMatrix := ballot.Matrix(sourceRows, sourceParties)
	targetMatrix := ballot.Matrix(targetRows, targetParties)

	X := toFloatMatrix(sourceMatrix.Data)
	Y := toFloatMatrix(targetMatrix.Data)

	if cfg.TransferIncludeAbstention {
		sourceTurnout := make([]abstain.PrecinctTurnout, len(sourceRows))
		targetTurnout := make([]abstain.PrecinctTurnout, len(targetRows))
		for i, p := range sourceRows {
			sourceTurnout[i] = abstain.PrecinctTurnout{Eligible: p.Eligible, Voted: p.Voted}
		}
		for i, p := range targetRows {
			targetTurnout[i] = abstain.PrecinctTurnout{Eligible: p.Eligible, Voted: p.Voted}
		}
		nationalEligible, totalVoted := nationalTurnout(e1.Rows())
		sourceAbstain, warnings := abstain.Column(sourceTurnout, nationalEligible, totalVoted)
		for _, w := range warnings {
			log.Warn("abstain column fallback", "error", w.Error())
		}
		nationalEligible2, totalVoted2 := nationalTurnout(e2.Rows())
		targetAbstain, warnings2 := abstain.Column(targetTurnout, nationalEligible2, totalVoted2)
		for _, w := range warnings2 {
			log.Warn("abstain column fallback", "error", w.Error())
		}
		X, Y = abstain.Augment(X, Y, sourceAbstain, targetAbstain)
	}

	opts, err := cfg.ToTransferOptions()
	if err != nil {
		return SolveResult{}, err
	}

	result, err := transfer.Solve(X, Y, opts)
	if err != nil {
		return SolveResult{}, fmt.Errorf("pipeline: solve: %w", err)
	}
	log.Info("solve complete", "r_squared", result.RSquared, "iterations", result.Iterations, "status", int(result.Status))
	if metrics != nil {
		metrics.SolverRSquared.Set(result.RSquared)
		metrics.SolverIterations.Set(float64(result.Iterations))
	}

	nationalTotals := make([]float64, len(sourceParties))
	for _, p := range e1.Rows() {
		for j, code := range sourceParties {
			nationalTotals[j] += float64(p.Votes[code])
		}
	}
	flows := transfer.Flows(result.M, nationalTotals)
	exported := transfer.ExportFlows(flows, float64(cfg.TransferMinFlowThreshold))

	return SolveResult{
		Pairs:         pairs,
		SourceColumns: sourceParties,
		TargetColumns: targetParties,
		Result:        result,
		Flows:         flows,
		ExportedFlows: exported,
	}, nil
}

func toFloatMatrix(data [][]int64) [][]float64 {
	out := make([][]float64, len(data))
	for i, row := range data {
		fr := make([]float64, len(row))
		for j, v := range row {
			fr[j] = float64(v)
		}
		out[i] = fr
	}
	return out
}

// nationalTurnout sums eligible/voted across a full (unmatched) election
// table, the national fallback abstain.Column needs when a precinct's own
// eligible total is missing.
func nationalTurnout(rows []ballot.Precinct) (eligible, voted float64) {
	for _, p := range rows {
		eligible += float64(p.Eligible)
		voted += float64(p.Voted)
	}
	return eligible, voted
}
