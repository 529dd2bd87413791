package irregularity

import "math"

// detectShiftError implements the column-shift detector: a major party
// collapsing to near-zero in one precinct while an adjacent column that
// is nationally negligible spikes up is the signature of a fat-fingered
// column shift in manual tabulation.
func detectShiftError(p []float64, columns []string, pi map[string]float64) *Finding {
	count := 0
	var directions []string
	for m, col := range columns {
		if !isMajor(pi, col) || p[m] >= 0.01 {
			continue
		}
		for _, n := range []int{m - 1, m + 1} {
			if n < 0 || n >= len(columns) {
				continue
			}
			nc := columns[n]
			if isMajor(pi, nc) {
				continue
			}
			if pi[nc] < 0.01 && p[n] > 0.05 {
				count++
				if n < m {
					directions = append(directions, "left")
				} else {
					directions = append(directions, "right")
				}
			}
		}
	}
	if count == 0 {
		return nil
	}
	return &Finding{
		Kind:     KindShiftError,
		Severity: SeverityHigh,
		Score:    10 * float64(count),
		Details:  map[string]any{"anomalies": count, "directions": directions},
	}
}

// detectRoundNumbers implements detector 2: an implausible concentration
// of vote counts that are round multiples of 10/50/100 suggests
// fabricated or estimated tallies rather than counted ballots.
func detectRoundNumbers(votes map[string]int) *Finding {
	var nz []int
	for _, v := range votes {
		if v != 0 {
			nz = append(nz, v)
		}
	}
	if len(nz) < 5 {
		return nil
	}

	// A column counts once if it clears any of the three round
	// thresholds; since 50 and 100 are multiples of 10, this reduces to
	// "divisible by 10" exactly.
	count := 0
	for _, v := range nz {
		if v >= 10 && v%10 == 0 {
			count++
		}
	}
	if count < 4 || float64(count)/float64(len(nz)) <= 0.6 {
		return nil
	}
	return &Finding{
		Kind:     KindRoundNumbers,
		Severity: SeverityMedium,
		Score:    2 * float64(count),
		Details:  map[string]any{"round_count": count, "nonzero_count": len(nz)},
	}
}

// detectTurnoutImpossible implements detector 3: the three ways a
// precinct's reported counts can be internally inconsistent regardless
// of party breakdown.
func detectTurnoutImpossible(p Precinct) *Finding {
	subflags := 0
	details := map[string]any{}
	if p.Eligible > 0 && p.Voted > p.Eligible {
		subflags++
		details["voted_exceeds_eligible"] = true
	}
	if diff := p.Voted - (p.Valid + p.Invalid); diff > 1 || diff < -1 {
		subflags++
		details["voted_valid_invalid_mismatch"] = true
	}
	if p.Eligible > 100 && p.Voted == p.Eligible {
		subflags++
		details["turnout_exactly_100pct"] = true
	}
	if subflags == 0 {
		return nil
	}
	details["subflags"] = subflags
	return &Finding{
		Kind:     KindTurnoutImpossible,
		Severity: SeverityHigh,
		Score:    15 * float64(subflags),
		Details:  details,
	}
}

// detectStatisticalOutlier implements detector 4: how far a precinct's
// standardized party-share profile sits from the nearest cluster of
// precincts with a similar profile.
func detectStatisticalOutlier(standardizedRow []float64, model clusterModel) *Finding {
	d := model.nearestDistance(standardizedRow)
	if d <= 15 {
		return nil
	}
	return &Finding{
		Kind:     KindStatisticalOutlier,
		Severity: SeverityMedium,
		Score:    0.5 * d,
		Details:  map[string]any{"distance": d},
	}
}

// detectDominance implements detector 5: either a minor party winning
// implausibly big a share (small_party_dominance) or a major party
// sweeping the precinct almost entirely (extreme_dominance).
func detectDominance(p []float64, columns []string, pi map[string]float64) *Finding {
	m := argmax(p)
	col := columns[m]
	switch {
	case !isMajor(pi, col) && p[m] > 0.3:
		return &Finding{
			Kind:     KindSmallPartyDominance,
			Severity: SeverityHigh,
			Score:    5 * p[m],
			Details:  map[string]any{"column": col, "share": p[m]},
		}
	case isMajor(pi, col) && p[m] > 0.95:
		return &Finding{
			Kind:     KindExtremeDominance,
			Severity: SeverityLow,
			Score:    p[m],
			Details:  map[string]any{"column": col, "share": p[m]},
		}
	default:
		return nil
	}
}

// detectSmallPartySpike implements detector 6: a party that is
// nationally negligible but locally surging far past its national share.
func detectSmallPartySpike(p []float64, votes map[string]int, columns []string, pi map[string]float64) *Finding {
	count := 0
	var columnsHit []string
	for c, col := range columns {
		if pi[col] >= 0.005 || p[c] <= 0.05 || votes[col] < 5 {
			continue
		}
		ratio := p[c] / math.Max(pi[col], 0.001)
		if ratio > 20 && !math.IsInf(ratio, 0) {
			count++
			columnsHit = append(columnsHit, col)
		}
	}
	if count == 0 {
		return nil
	}
	return &Finding{
		Kind:     KindSmallPartySpike,
		Severity: SeverityHigh,
		Score:    8 * float64(count),
		Details:  map[string]any{"anomalies": count, "columns": columnsHit},
	}
}

func argmax(p []float64) int {
	best := 0
	for i, v := range p {
		if v > p[best] {
			best = i
		}
	}
	return best
}
