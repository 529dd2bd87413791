// File: simulate.go
// Role: the ForwardSimulator stage, converting ballot.Precinct rows into
// simulate.PrecinctInput and back into report-friendly synthetic totals.
package pipeline

import (
	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/simulate"
)

// SimulateResult pairs a source precinct id with its synthesized output.
type SimulateResult struct {
	Id     ballot.PrecinctId
	Output simulate.PrecinctOutput
}

// RunSimulation forward-simulates a synthetic election from a source
// ballot table under cfg, logging the scenario under run.
func RunSimulation(log *Logger, source *ballot.BallotTable, cfg simulate.Config) ([]SimulateResult, error) {
	rows := source.Rows()
	inputs := make([]simulate.PrecinctInput, len(rows))
	for i, p := range rows {
		votes := make(map[string]int, len(p.Votes))
		for code, v := range p.Votes {
			votes[string(code)] = v
		}
		inputs[i] = simulate.PrecinctInput{Votes: votes, Invalid: p.Invalid, Eligible: p.Eligible}
	}

	outputs, err := simulate.Simulate(inputs, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("simulation complete", "precincts", len(outputs), "alpha", cfg.Alpha, "seed", cfg.Seed)

	results := make([]SimulateResult, len(outputs))
	for i, out := range outputs {
		results[i] = SimulateResult{Id: rows[i].Id, Output: out}
	}
	return results, nil
}
