package metrics

import (
	"math"
	"sort"
)

// HHI computes the Herfindahl-Hirschman concentration of one party's
// vote across settlements within a single election.
// settlements with zero absolute votes for the party contribute a zero
// share and are otherwise ignored; a party absent everywhere yields a
// zero-value HHIResult.
func HHI(partyCode string, settlements []*Settlement) HHIResult {
	type weighted struct {
		name  string
		votes float64
	}
	var rows []weighted
	total := 0.0
	for _, s := range settlements {
		v := s.Proportions[partyCode] * float64(s.Voters)
		rows = append(rows, weighted{name: s.Name, votes: v})
		total += v
	}
	if total <= 0 {
		return HHIResult{}
	}

	hhi := 0.0
	for _, r := range rows {
		share := r.votes / total
		hhi += share * share
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].votes > rows[j].votes })
	var t ConcentrationThresholds
	cum := 0.0
	for i, r := range rows {
		cum += r.votes / total
		n := i + 1
		if t.S50 == 0 && cum >= 0.50 {
			t.S50 = n
		}
		if t.S75 == 0 && cum >= 0.75 {
			t.S75 = n
		}
		if t.S90 == 0 && cum >= 0.90 {
			t.S90 = n
		}
		if t.S98 == 0 && cum >= 0.98 {
			t.S98 = n
		}
	}

	return HHIResult{
		HHI:                  hhi,
		EffectiveSettlements: int(math.Round(1 / hhi)),
		Thresholds:           t,
	}
}

// AverageFamilyHHI averages HHI, EffectiveSettlements, and each
// concentration threshold across every election in which a party-family
// is declared present: per party-family, all HHI quantities are
// averaged across the elections in which the family is declared
// present.
func AverageFamilyHHI(perElection map[string]HHIResult) HHIResult {
	n := len(perElection)
	if n == 0 {
		return HHIResult{}
	}
	var sumHHI, sumEff float64
	var sum50, sum75, sum90, sum98 float64
	for _, r := range perElection {
		sumHHI += r.HHI
		sumEff += float64(r.EffectiveSettlements)
		sum50 += float64(r.Thresholds.S50)
		sum75 += float64(r.Thresholds.S75)
		sum90 += float64(r.Thresholds.S90)
		sum98 += float64(r.Thresholds.S98)
	}
	f := float64(n)
	return HHIResult{
		HHI:                  sumHHI / f,
		EffectiveSettlements: int(math.Round(sumEff / f)),
		Thresholds: ConcentrationThresholds{
			S50: int(math.Round(sum50 / f)),
			S75: int(math.Round(sum75 / f)),
			S90: int(math.Round(sum90 / f)),
			S98: int(math.Round(sum98 / f)),
		},
	}
}
