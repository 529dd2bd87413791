package metrics

import (
	"math"

	"github.com/harelcain/electiontransfer/catalog"
)

// Pedersen computes the Pedersen volatility index between two
// elections' settlement-level proportions vectors, applying the
// catalog's family-merge declarations for the (e1, e2) transition
// first: codes linked to the same family are summed into one merged
// key before the L1 distance is taken and halved. Codes
// with no declared family link in either election are treated as
// distinct, election-scoped singleton groups, consistent with the
// catalog's policy that a bare code never implies cross-election
// identity without an explicit FamilyLink.
func Pedersen(e1Props, e2Props map[string]float64, e1, e2 catalog.ElectionId, cat catalogView) float64 {
	merged1 := mergeByFamily(e1Props, e1, cat, "e1")
	merged2 := mergeByFamily(e2Props, e2, cat, "e2")

	keys := make(map[string]struct{}, len(merged1)+len(merged2))
	for k := range merged1 {
		keys[k] = struct{}{}
	}
	for k := range merged2 {
		keys[k] = struct{}{}
	}

	v := 0.0
	for k := range keys {
		v += math.Abs(merged2[k] - merged1[k])
	}
	return v / 2
}

func mergeByFamily(props map[string]float64, election catalog.ElectionId, cat catalogView, sideTag string) map[string]float64 {
	out := make(map[string]float64, len(props))
	for code, share := range props {
		key := sideTag + ":" + code
		if fam, ok := cat.FamilyOf(catalog.PartyCode(code), election); ok {
			key = "fam:" + string(fam)
		}
		out[key] += share
	}
	return out
}

// LongitudinalAverage is the mean of a settlement's per-transition
// Pedersen values, reported only for settlements whose transitions
// slice is complete and whose most recent election has nonzero voters
// (the reporting gate itself is the caller's responsibility since it
// depends on data outside this function's signature).
func LongitudinalAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
