package irregularity_test

import (
	"testing"

	"github.com/harelcain/electiontransfer/irregularity"
	"github.com/stretchr/testify/require"
)

func normalPrecinct(id string) irregularity.Precinct {
	return irregularity.Precinct{
		Id:       id,
		Votes:    map[string]int{"A": 600, "A+": 0, "B": 400},
		Valid:    1000,
		Invalid:  0,
		Voted:    1000,
		Eligible: 1500,
	}
}

// S4: a precinct with major party A collapsing to zero while the
// adjacent, nationally negligible column A+ spikes must report a
// shift_error anomaly.
func TestScore_S4ShiftErrorAnomaly(t *testing.T) {
	columns := []string{"A", "A+", "B"}
	var precincts []irregularity.Precinct
	for i := 0; i < 100; i++ {
		precincts = append(precincts, normalPrecinct("normal"))
	}
	precincts = append(precincts, irregularity.Precinct{
		Id:       "ANOM",
		Votes:    map[string]int{"A": 0, "A+": 600, "B": 400},
		Valid:    1000,
		Invalid:  0,
		Voted:    1000,
		Eligible: 1500,
	})

	opts := irregularity.DefaultOptions(columns)
	out, err := irregularity.Score(precincts, opts)
	require.NoError(t, err)

	var found *irregularity.Anomaly
	for i := range out {
		if out[i].PrecinctId == "ANOM" {
			found = &out[i]
		}
	}
	require.NotNil(t, found, "expected ANOM to clear the ranking gate")

	var hasShift bool
	for _, f := range found.Findings {
		if f.Kind == irregularity.KindShiftError {
			hasShift = true
			require.Equal(t, irregularity.SeverityHigh, f.Severity)
			// A sits at column index 0, A+ at index 1: the anomalous mass
			// moved from A into its higher-indexed neighbor, a "right" shift.
			directions, ok := f.Details["directions"].([]string)
			require.True(t, ok, "expected directions in shift_error Details")
			require.Equal(t, []string{"right"}, directions)
		}
	}
	require.True(t, hasShift, "expected a shift_error finding")
}

// S5: a precinct whose 6 nonzero party counts are all round multiples of
// 10 trips only the medium-severity round_numbers detector, so it must
// not appear in the ranked output.
func TestDetectRoundNumbers_S5(t *testing.T) {
	votes := map[string]int{"A": 200, "B": 150, "C": 100, "D": 100, "E": 50, "F": 200}

	// The detector is unexported, so it is exercised through Score with
	// min_score lowered; only the ranking gate's outcome is observable.
	out, err := irregularity.Score([]irregularity.Precinct{
		{Id: "ROUND", Votes: votes, Valid: 800, Voted: 800, Eligible: 1000},
	}, irregularity.Options{
		Columns: []string{"A", "B", "C", "D", "E", "F"}, MinValid: 50, MinScore: 0.01, TopN: 100, Seed: 42,
	})
	require.NoError(t, err)
	// Medium-only score never clears the high-severity gate regardless
	// of min_score, so the precinct should not appear in the ranked list.
	require.Empty(t, out)
}

// Property 8: every emitted anomaly has score >= min_score and at least
// one high-severity finding.
func TestScore_Property8RankingGate(t *testing.T) {
	columns := []string{"A", "A+", "B"}
	var precincts []irregularity.Precinct
	for i := 0; i < 150; i++ {
		precincts = append(precincts, normalPrecinct("normal"))
	}
	precincts = append(precincts,
		irregularity.Precinct{Id: "ANOM1", Votes: map[string]int{"A": 0, "A+": 600, "B": 400}, Valid: 1000, Voted: 1000, Eligible: 1500},
		irregularity.Precinct{Id: "ANOM2", Votes: map[string]int{"A": 10, "A+": 590, "B": 400}, Valid: 1000, Voted: 1000, Eligible: 1500},
	)

	opts := irregularity.DefaultOptions(columns)
	out, err := irregularity.Score(precincts, opts)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	for _, a := range out {
		require.GreaterOrEqual(t, a.Score, opts.MinScore)
		var hasHigh bool
		for _, f := range a.Findings {
			if f.Severity == irregularity.SeverityHigh {
				hasHigh = true
			}
		}
		require.True(t, hasHigh, "anomaly %s must have >=1 high-severity finding", a.PrecinctId)
	}
}

func TestScore_EmptyInput(t *testing.T) {
	_, err := irregularity.Score(nil, irregularity.DefaultOptions([]string{"A"}))
	require.ErrorIs(t, err, irregularity.ErrNoPrecincts)
}

func TestExplain_FormatsSummary(t *testing.T) {
	a := irregularity.Anomaly{
		PrecinctId: "P1",
		Score:      12.5,
		Findings:   []irregularity.Finding{{Kind: irregularity.KindShiftError, Severity: irregularity.SeverityHigh, Score: 10}},
	}
	s := irregularity.Explain(a)
	require.Contains(t, s, "P1")
	require.Contains(t, s, "shift_error")
}
