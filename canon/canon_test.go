package canon_test

import (
	"testing"

	"github.com/harelcain/electiontransfer/canon"
	"github.com/stretchr/testify/require"
)

// Property 5: canon("מעלות-תרשיחא") == canon("מעלות תרשיחא").
func TestCanon_DashEquivalence(t *testing.T) {
	require.Equal(t, canon.Canon("מעלות תרשיחא"), canon.Canon("מעלות-תרשיחא"))
}

func TestCanon_Idempotent(t *testing.T) {
	inputs := []string{
		"מעלות-תרשיחא",
		`ג'וליס`,
		"קריית גת",
		"(שם בסוגריים)",
		"גולס",
		"ייייי", // pathological multi-yod run
		"",
		"   רווחים   מרובים   ",
	}
	for _, in := range inputs {
		once := canon.Canon(in)
		twice := canon.Canon(once)
		require.Equal(t, once, twice, "not idempotent for input %q", in)
	}
}

// Deleting the apostrophe from "ג'וליס" yields "גוליס", which is itself a
// known override key that maps back to "ג'וליס": so the round trip
// lands back on the apostrophe form, not the bare one.
func TestCanon_GereshDeletionRoundTripsThroughOverride(t *testing.T) {
	require.Equal(t, "ג'וליס", canon.Canon("ג'וליס"))
}

func TestCanon_DoubleYodContraction(t *testing.T) {
	require.Equal(t, "קרית גת", canon.Canon("קריית גת"))
}

func TestCanon_OverrideTableApplied(t *testing.T) {
	require.Equal(t, "ג'וליס", canon.Canon("גולס"))
	require.Equal(t, "ג'וליס", canon.Canon("גוליס"))
}

func TestCanon_WhitespaceCollapseAndTrim(t *testing.T) {
	require.Equal(t, "תל אביב", canon.Canon("  תל    אביב  "))
}

func TestCanon_EmptyInput(t *testing.T) {
	require.Equal(t, "", canon.Canon(""))
}
