package metrics

// AggregateSettlements implements the per-settlement rollup: voters and
// eligible sum across precincts, proportions are the voted-weighted
// average of each precinct's valid-vote share, and winning_party/turnout
// are derived from the result.
func AggregateSettlements(precincts []PrecinctInput, columns []string) map[string]*Settlement {
	out := make(map[string]*Settlement)
	weighted := make(map[string]map[string]float64)

	for _, p := range precincts {
		s, ok := out[p.Settlement]
		if !ok {
			s = &Settlement{Name: p.Settlement, Proportions: make(map[string]float64)}
			out[p.Settlement] = s
			weighted[p.Settlement] = make(map[string]float64)
		}
		s.Voters += p.Voted
		s.Eligible += p.Eligible

		if p.Valid <= 0 {
			continue
		}
		for _, c := range columns {
			share := float64(p.Votes[c]) / float64(p.Valid)
			weighted[p.Settlement][c] += share * float64(p.Voted)
		}
	}

	for name, s := range out {
		if s.Voters > 0 {
			for c, w := range weighted[name] {
				// Stored as percentage points (0-100), matching the
				// original site data's convention and giving Pedersen
				// volatility its documented [0,100] range.
				s.Proportions[c] = 100 * w / float64(s.Voters)
			}
		}
		s.WinningParty = argmaxProportions(s.Proportions)
		if s.Eligible > 0 {
			s.Turnout = 100 * float64(s.Voters) / float64(s.Eligible)
		}
	}
	return out
}

func argmaxProportions(props map[string]float64) string {
	best, bestShare := "", -1.0
	for c, v := range props {
		if v > bestShare {
			best, bestShare = c, v
		}
	}
	return best
}

// TurnoutDelta returns, for every settlement present in both e1 and e2,
// the percentage-point change in turnout between them. Settlements only
// present in one election are omitted.
func TurnoutDelta(e1, e2 map[string]*Settlement) map[string]float64 {
	out := make(map[string]float64)
	for name, s1 := range e1 {
		s2, ok := e2[name]
		if !ok {
			continue
		}
		out[name] = s2.Turnout - s1.Turnout
	}
	return out
}
