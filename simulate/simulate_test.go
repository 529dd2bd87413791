package simulate_test

import (
	"testing"

	"github.com/harelcain/electiontransfer/simulate"
	"github.com/stretchr/testify/require"
)

func baseConfig(seed int64) simulate.Config {
	cfg := simulate.DefaultConfig(seed)
	cfg.SourcePartyFamily = map[string]string{"A": "A", "B": "B"}
	cfg.DominantFamily = "A"
	cfg.SourceFamilyShare = map[string]map[string]float64{
		"A": {"A2": 0.8, "B2": 0.2},
		"B": {"A2": 0.1, "B2": 0.9},
	}
	cfg.TargetColumns = []string{"A2", "B2"}
	cfg.Alpha = 80
	return cfg
}

// Property 3: integer closure: sum of output votes equals the
// computed effective total T exactly, a non-negative integer.
func TestSimulate_IntegerClosure(t *testing.T) {
	inputs := []simulate.PrecinctInput{
		{Votes: map[string]int{"A": 113, "B": 47}, Invalid: 3, Eligible: 300},
	}
	outs, err := simulate.Simulate(inputs, baseConfig(42))
	require.NoError(t, err)

	sum := 0
	for _, v := range outs[0].Votes {
		require.GreaterOrEqual(t, v, 0)
		sum += v
	}
	require.Equal(t, outs[0].Total, sum)
	require.GreaterOrEqual(t, outs[0].Total, 0)
}

// Property 4: determinism: identical seed/input produces bit-identical
// output.
func TestSimulate_Determinism(t *testing.T) {
	inputs := []simulate.PrecinctInput{
		{Votes: map[string]int{"A": 113, "B": 47}, Invalid: 3, Eligible: 300},
	}
	out1, err := simulate.Simulate(inputs, baseConfig(42))
	require.NoError(t, err)
	out2, err := simulate.Simulate(inputs, baseConfig(42))
	require.NoError(t, err)
	require.Equal(t, out1, out2)
}

func TestSimulate_DifferingSeedsKeepSameTotal(t *testing.T) {
	inputs := []simulate.PrecinctInput{
		{Votes: map[string]int{"A": 500, "B": 500}, Invalid: 0, Eligible: 2000},
	}
	out1, err := simulate.Simulate(inputs, baseConfig(1))
	require.NoError(t, err)
	out2, err := simulate.Simulate(inputs, baseConfig(2))
	require.NoError(t, err)
	require.Equal(t, out1[0].Total, out2[0].Total)
}

// S6: simulator mass: national totals over many precincts match the
// deterministic expectation within 0.3% at alpha=80.
func TestSimulate_S6NationalMassWithinTolerance(t *testing.T) {
	cfg := baseConfig(42)
	const n = 5000
	inputs := make([]simulate.PrecinctInput, n)
	for i := range inputs {
		inputs[i] = simulate.PrecinctInput{Votes: map[string]int{"A": 700, "B": 300}, Invalid: 10, Eligible: 1200}
	}

	outs, err := simulate.Simulate(inputs, cfg)
	require.NoError(t, err)

	var gotA2, gotB2 float64
	for _, o := range outs {
		gotA2 += float64(o.Votes["A2"])
		gotB2 += float64(o.Votes["B2"])
	}

	// Expected national total: per precinct e[A2] = 700*0.8 + 300*0.1 = 590,
	// e[B2] = 700*0.2 + 300*0.9 = 410, scaled by n.
	expectedA2 := 590.0 * n
	expectedB2 := 410.0 * n

	require.InEpsilon(t, expectedA2, gotA2, 0.003)
	require.InEpsilon(t, expectedB2, gotB2, 0.003)
}

func TestSimulate_NoTargetColumns(t *testing.T) {
	cfg := simulate.DefaultConfig(1)
	_, err := simulate.Simulate([]simulate.PrecinctInput{{}}, cfg)
	require.ErrorIs(t, err, simulate.ErrNoTargetColumns)
}

func TestSimulate_ShareNotNormalized(t *testing.T) {
	cfg := baseConfig(1)
	cfg.SourceFamilyShare["A"] = map[string]float64{"A2": 0.5}
	_, err := simulate.Simulate([]simulate.PrecinctInput{{Votes: map[string]int{"A": 10}}}, cfg)
	require.ErrorIs(t, err, simulate.ErrShareNotNormalized)
}

// FromScenario seeds a fresh Config from a named share table; the
// scenario's FamilyShare carries through untouched while every other
// field still comes from DefaultConfig.
func TestFromScenario_PopulatesSourceFamilyShare(t *testing.T) {
	scenario := simulate.Scenario{
		Name:        "high turnout",
		Description: "uniform swing toward the incumbent bloc",
		FamilyShare: map[string]map[string]float64{
			"A": {"A2": 0.8, "B2": 0.2},
			"B": {"A2": 0.1, "B2": 0.9},
		},
		SourceCitation: "high_turnout.csv",
	}

	cfg := simulate.FromScenario(scenario, 7)
	require.Equal(t, scenario.FamilyShare, cfg.SourceFamilyShare)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 55.0, cfg.Alpha)

	cfg.SourcePartyFamily = map[string]string{"A": "A", "B": "B"}
	cfg.DominantFamily = "A"
	cfg.TargetColumns = []string{"A2", "B2"}

	outs, err := simulate.Simulate([]simulate.PrecinctInput{
		{Votes: map[string]int{"A": 113, "B": 47}, Invalid: 3, Eligible: 300},
	}, cfg)
	require.NoError(t, err)
	require.Equal(t, outs[0].Total, outs[0].Votes["A2"]+outs[0].Votes["B2"])
}
