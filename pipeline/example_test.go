package pipeline_test

import (
	"fmt"

	"github.com/harelcain/electiontransfer/pipeline"
)

func ExampleRunID() {
	a := pipeline.RunID()
	b := pipeline.RunID()
	fmt.Println(len(a), len(b), a != b)
	// Output:
	// 36 36 true
}
