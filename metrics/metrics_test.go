package metrics_test

import (
	"testing"

	"github.com/harelcain/electiontransfer/catalog"
	"github.com/harelcain/electiontransfer/metrics"
	"github.com/stretchr/testify/require"
)

func TestAggregateSettlements(t *testing.T) {
	precincts := []metrics.PrecinctInput{
		{Settlement: "Haifa", Votes: map[string]int{"A": 60, "B": 40}, Valid: 100, Voted: 110, Eligible: 200},
		{Settlement: "Haifa", Votes: map[string]int{"A": 30, "B": 70}, Valid: 100, Voted: 105, Eligible: 150},
	}
	out := metrics.AggregateSettlements(precincts, []string{"A", "B"})
	haifa := out["Haifa"]
	require.NotNil(t, haifa)
	require.Equal(t, 215, haifa.Voters)
	require.Equal(t, 350, haifa.Eligible)

	require.InDelta(t, 61.4, haifa.Turnout, 0.1)
	// weighted proportion for A, in percentage points:
	// 100 * (0.6*110 + 0.3*105) / 215 = 45.3
	require.InDelta(t, 45.3, haifa.Proportions["A"], 0.1)
	require.Equal(t, "B", haifa.WinningParty)
}

type fakeCatalog struct {
	families map[string]catalog.FamilyId
}

func (f fakeCatalog) FamilyOf(code catalog.PartyCode, election catalog.ElectionId) (catalog.FamilyId, bool) {
	fam, ok := f.families[string(election)+"/"+string(code)]
	return fam, ok
}

// Property 6: Pedersen bounds: V in [0,100] and V=0 iff merged
// proportions are identical.
func TestPedersen_PropertyBounds(t *testing.T) {
	cat := fakeCatalog{families: map[string]catalog.FamilyId{
		"e1/A": "fam-likud", "e2/A2": "fam-likud",
		"e1/B": "fam-yeshatid", "e2/B": "fam-yeshatid",
	}}

	e1 := map[string]float64{"A": 60, "B": 40}
	e2 := map[string]float64{"A2": 55, "B": 45}
	v := metrics.Pedersen(e1, e2, "e1", "e2", cat)
	require.GreaterOrEqual(t, v, 0.0)
	require.LessOrEqual(t, v, 100.0)
	require.InDelta(t, 5.0, v, 1e-9) // |55-60|/2 + |45-40|/2 = 2.5+2.5

	identical := metrics.Pedersen(e1, e1, "e1", "e1", cat)
	require.InDelta(t, 0.0, identical, 1e-9)
}

func TestPedersen_UnlinkedCodesTreatedAsDistinct(t *testing.T) {
	cat := fakeCatalog{families: map[string]catalog.FamilyId{}}
	e1 := map[string]float64{"A": 100}
	e2 := map[string]float64{"A": 100}
	// Same code string, no declared family link: treated as two distinct
	// singleton groups (A vanishes, A reappears), not a zero-change match.
	v := metrics.Pedersen(e1, e2, "e1", "e2", cat)
	require.InDelta(t, 100.0, v, 1e-9)
}

// Property 7: HHI bounds: HHI in (0,1], with HHI=1 iff all votes come
// from one settlement.
func TestHHI_PropertyBounds(t *testing.T) {
	settlements := []*metrics.Settlement{
		{Name: "A", Voters: 1000, Proportions: map[string]float64{"X": 50}},
		{Name: "B", Voters: 1000, Proportions: map[string]float64{"X": 50}},
	}
	r := metrics.HHI("X", settlements)
	require.Greater(t, r.HHI, 0.0)
	require.LessOrEqual(t, r.HHI, 1.0)
	require.Equal(t, 2, r.EffectiveSettlements)

	concentrated := []*metrics.Settlement{
		{Name: "Solo", Voters: 1000, Proportions: map[string]float64{"X": 50}},
	}
	r2 := metrics.HHI("X", concentrated)
	require.InDelta(t, 1.0, r2.HHI, 1e-9)
	require.Equal(t, 1, r2.EffectiveSettlements)
}

func TestHHI_PartyAbsentEverywhere(t *testing.T) {
	settlements := []*metrics.Settlement{
		{Name: "A", Voters: 1000, Proportions: map[string]float64{"X": 0}},
	}
	r := metrics.HHI("Y", settlements)
	require.Equal(t, metrics.HHIResult{}, r)
}

func TestTurnoutDelta(t *testing.T) {
	e1 := map[string]*metrics.Settlement{"Haifa": {Name: "Haifa", Turnout: 70}}
	e2 := map[string]*metrics.Settlement{"Haifa": {Name: "Haifa", Turnout: 65}, "Eilat": {Name: "Eilat", Turnout: 50}}
	delta := metrics.TurnoutDelta(e1, e2)
	require.InDelta(t, -5.0, delta["Haifa"], 1e-9)
	require.NotContains(t, delta, "Eilat")
}

func TestCosineAndPearson(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{2, 4, 6}
	require.InDelta(t, 1.0, metrics.CosineSimilarity(a, b), 1e-9)
	require.InDelta(t, 1.0, metrics.PearsonCorrelation(a, b), 1e-9)
}
