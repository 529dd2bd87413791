package collab_test

import (
	"context"
	"fmt"

	"github.com/harelcain/electiontransfer/collab"
)

// staticVerifier is a trivial in-memory VerifierCollaborator fake, the
// kind of stand-in this package's interfaces are meant to be satisfied
// by in tests.
type staticVerifier struct {
	corrected map[string]bool
}

func (v staticVerifier) WasCorrected(_ context.Context, _ string, settlementCode int, precinctNumber string) (bool, string, error) {
	key := fmt.Sprintf("%d·%s", settlementCode, precinctNumber)
	return v.corrected[key], "", nil
}

func ExampleVerifierCollaborator() {
	var verifier collab.VerifierCollaborator = staticVerifier{corrected: map[string]bool{"1·1": true}}

	corrected, _, _ := verifier.WasCorrected(context.Background(), "knesset25", 1, "1")
	fmt.Println(corrected)

	corrected, _, _ = verifier.WasCorrected(context.Background(), "knesset25", 2, "1")
	fmt.Println(corrected)
	// Output:
	// true
	// false
}
