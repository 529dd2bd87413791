package metrics_test

import (
	"fmt"

	"github.com/harelcain/electiontransfer/metrics"
)

func ExampleAggregateSettlements() {
	precincts := []metrics.PrecinctInput{
		{Settlement: "Town", Votes: map[string]int{"A": 60, "B": 40}, Valid: 100, Voted: 100, Eligible: 200},
	}
	settlements := metrics.AggregateSettlements(precincts, []string{"A", "B"})

	town := settlements["Town"]
	fmt.Println(town.Voters, town.Eligible, town.Proportions["A"], town.Proportions["B"], town.WinningParty, town.Turnout)
	// Output:
	// 100 200 60 40 A 50
}

func ExampleTurnoutDelta() {
	e1 := map[string]*metrics.Settlement{"Town": {Turnout: 50}}
	e2 := map[string]*metrics.Settlement{"Town": {Turnout: 62.5}}
	delta := metrics.TurnoutDelta(e1, e2)
	fmt.Println(delta["Town"])
	// Output:
	// 12.5
}
