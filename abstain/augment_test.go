package abstain_test

import (
	"testing"

	"github.com/harelcain/electiontransfer/abstain"
	"github.com/stretchr/testify/require"
)

func TestColumn_DirectEligible(t *testing.T) {
	rows := []abstain.PrecinctTurnout{{Eligible: 200, Voted: 150}}
	counts, warnings := abstain.Column(rows, 0, 0)
	require.Empty(t, warnings)
	require.Equal(t, []float64{50}, counts)
}

func TestColumn_NeverNegative(t *testing.T) {
	rows := []abstain.PrecinctTurnout{{Eligible: 100, Voted: 120}}
	counts, _ := abstain.Column(rows, 0, 0)
	require.Equal(t, []float64{0.0}, counts)
}

func TestColumn_NationalFallback(t *testing.T) {
	rows := []abstain.PrecinctTurnout{{Eligible: 0, Voted: 50}}
	counts, warnings := abstain.Column(rows, 1_000_000, 500_000)
	require.Empty(t, warnings)
	// estimatedEligible = round(50/500000*1000000) = 100; abstain = 50
	require.Equal(t, []float64{50}, counts)
}

func TestColumn_MissingEligibleAndNational_Warns(t *testing.T) {
	rows := []abstain.PrecinctTurnout{{Eligible: 0, Voted: 50}}
	counts, warnings := abstain.Column(rows, 0, 0)
	require.Len(t, warnings, 1)
	require.ErrorIs(t, warnings[0], abstain.ErrMissingEligible)
	require.Equal(t, []float64{0}, counts)
}

// S3: abstention absorbs a party.
func TestAugment_S3AbstentionAbsorbsParty(t *testing.T) {
	// E1: eligible=200, voted=150, A=100, B=50.
	// E2 same precinct: eligible=200, voted=100, A=100 (B's voters abstained).
	x := [][]float64{{100, 50}}
	y := [][]float64{{100, 0}}

	xAbstain, _ := abstain.Column([]abstain.PrecinctTurnout{{Eligible: 200, Voted: 150}}, 0, 0)
	yAbstain, _ := abstain.Column([]abstain.PrecinctTurnout{{Eligible: 200, Voted: 100}}, 0, 0)

	augX, augY := abstain.Augment(x, y, xAbstain, yAbstain)
	require.Equal(t, [][]float64{{100, 50, 50}}, augX)
	require.Equal(t, [][]float64{{100, 0, 100}}, augY)
}
