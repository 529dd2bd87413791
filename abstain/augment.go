package abstain

// Column computes the per-precinct abstain count: max(0, eligible-voted).
// When eligible is absent/zero for a precinct, it falls back to
// round(voted / totalVoted * nationalEligible) using the supplied
// national totals; when neither is available (nationalEligible or
// totalVoted is zero), the column is zero for that precinct and a
// warning is recorded.
func Column(rows []PrecinctTurnout, nationalEligible, totalVoted float64) (counts []float64, warnings []error) {
	counts = make([]float64, len(rows))

	for i, r := range rows {
		if r.Eligible > 0 {
			c := float64(r.Eligible - r.Voted)
			if c < 0 {
				c = 0
			}
			counts[i] = c
			continue
		}

		if nationalEligible <= 0 || totalVoted <= 0 {
			warnings = append(warnings, ErrMissingEligible)
			continue
		}

		estimatedEligible := roundHalfAwayFromZero(float64(r.Voted) / totalVoted * nationalEligible)
		c := estimatedEligible - float64(r.Voted)
		if c < 0 {
			c = 0
		}
		counts[i] = c
	}

	return counts, warnings
}

func roundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x - 0.5))
}

// Augment appends the abstain column to both a source-election matrix X
// and a target-election matrix Y, producing matrices with exactly one
// extra column each.
func Augment(X, Y [][]float64, sourceAbstain, targetAbstain []float64) (augX, augY [][]float64) {
	augX = appendColumn(X, sourceAbstain)
	augY = appendColumn(Y, targetAbstain)
	return augX, augY
}

func appendColumn(m [][]float64, col []float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		newRow := make([]float64, len(row)+1)
		copy(newRow, row)
		if i < len(col) {
			newRow[len(row)] = col[i]
		}
		out[i] = newRow
	}
	return out
}
