package transfer_test

import (
	"fmt"

	"github.com/harelcain/electiontransfer/transfer"
)

func ExampleFlows() {
	M := [][]float64{
		{0.8, 0.2},
		{0.1, 0.9},
	}
	totalSourceVotes := []float64{10000, 2000}

	flows := transfer.Flows(M, totalSourceVotes)
	fmt.Println(flows)

	exported := transfer.ExportFlows(flows, transfer.DefaultMinFlowThreshold)
	fmt.Println(exported)
	// Output:
	// [{0 0 8000} {0 1 2000} {1 0 200} {1 1 1800}]
	// [{0 0 8000}]
}
