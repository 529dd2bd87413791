// File: aggregate.go
// Role: the MetricsAggregator stage, converting ballot.Precinct rows
// (with canon-normalized settlement names) into metrics.Settlement
// records, and computing the cross-election comparison statistics
// (Pedersen volatility, turnout change, HHI concentration).
package pipeline

import (
	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/canon"
	"github.com/harelcain/electiontransfer/catalog"
	"github.com/harelcain/electiontransfer/metrics"
)

// Comparison bundles the cross-election statistics between two
// elections. Pedersen and turnout change cover settlements present in
// both; each HHI covers every settlement of its own election.
type Comparison struct {
	PerSettlementPedersen map[string]float64
	AveragePedersen       float64
	TurnoutDiff           map[string]float64
	HHISource             metrics.HHIResult
	HHITarget             metrics.HHIResult
}

// AggregateElection reduces one ballot table to settlement-level
// summaries, canon-normalizing each precinct's settlement name before
// grouping so that spelling variants of the same settlement merge into
// one record.
func AggregateElection(log *Logger, table *ballot.BallotTable, columns []catalog.PartyCode) map[string]*metrics.Settlement {
	rows := table.Rows()
	inputs := make([]metrics.PrecinctInput, len(rows))
	colStrings := make([]string, len(columns))
	for i, c := range columns {
		colStrings[i] = string(c)
	}
	for i, p := range rows {
		votes := make(map[string]int, len(p.Votes))
		for code, v := range p.Votes {
			votes[string(code)] = v
		}
		inputs[i] = metrics.PrecinctInput{
			Settlement: canon.Canon(p.SettlementName),
			Votes:      votes, Valid: p.Valid, Voted: p.Voted, Eligible: p.Eligible,
		}
	}

	settlements := metrics.AggregateSettlements(inputs, colStrings)
	log.Info("settlement aggregation complete", "settlements", len(settlements), "election", string(table.Election))
	return settlements
}

// Compare derives per-settlement Pedersen volatility, turnout change, and
// one party's HHI concentration between two already-aggregated elections.
// Pedersen is computed once per settlement present in both elections,
// each call merging that settlement's party proportions by
// catalog family before taking the L1 distance; LongitudinalAverage then
// reduces the per-settlement values to a single national figure.
func Compare(hhiParty string, e1, e2 map[string]*metrics.Settlement, e1Id, e2Id catalog.ElectionId, cat *catalog.Catalog) Comparison {
	perSettlement := make(map[string]float64, len(e1))
	var values []float64
	for name, s1 := range e1 {
		s2, ok := e2[name]
		if !ok {
			continue
		}
		v := metrics.Pedersen(s1.Proportions, s2.Proportions, e1Id, e2Id, cat)
		perSettlement[name] = v
		values = append(values, v)
	}

	settlementsOf := func(m map[string]*metrics.Settlement) []*metrics.Settlement {
		out := make([]*metrics.Settlement, 0, len(m))
		for _, s := range m {
			out = append(out, s)
		}
		return out
	}

	return Comparison{
		PerSettlementPedersen: perSettlement,
		AveragePedersen:       metrics.LongitudinalAverage(values),
		TurnoutDiff:           metrics.TurnoutDelta(e1, e2),
		HHISource:             metrics.HHI(hhiParty, settlementsOf(e1)),
		HHITarget:             metrics.HHI(hhiParty, settlementsOf(e2)),
	}
}
