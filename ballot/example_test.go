package ballot_test

import (
	"fmt"

	"github.com/harelcain/electiontransfer/ballot"
)

func ExampleLoad() {
	rows := []ballot.RawRow{
		{SettlementCode: 1, SettlementName: "Town", PrecinctNumber: "1", Eligible: 500, Voted: 400, Valid: 400, Votes: map[ballot.PartyCode]int{"A": 240, "B": 160}},
		{SettlementCode: 1, SettlementName: "Town", PrecinctNumber: "1", Eligible: 500, Voted: 400, Valid: 400, Votes: map[ballot.PartyCode]int{"A": 240, "B": 160}},
		{SettlementCode: 9999, SettlementName: "External", PrecinctNumber: "1", Eligible: 10, Voted: 10, Valid: 10, Votes: map[ballot.PartyCode]int{"A": 10}},
		{SettlementCode: 2, SettlementName: "Village", PrecinctNumber: "2", Eligible: 300, Voted: 300, Valid: 250, Invalid: 40, Votes: map[ballot.PartyCode]int{"A": 100, "B": 150}},
	}

	table := ballot.Load(rows, "knesset24", 0, nil)
	fmt.Println(table.Len())
	fmt.Println(table.Duplicates)

	diags := table.Validate()
	fmt.Println(len(diags))
	fmt.Println(diags[0].Kind)
	// Output:
	// 2
	// 1
	// 1
	// valid_invalid_mismatch
}
