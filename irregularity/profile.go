package irregularity

import "gonum.org/v1/gonum/stat"

// majorThreshold is the π[c] cutoff separating a "major" party column
// from a "minor" one, used by detectors 1 and 5.
const majorThreshold = 0.05

// nationalProfile computes π[c] = total_votes[c] / Σ total_votes across
// every supplied precinct, before the min_valid filter is applied: the
// national denominator reflects the whole election, not just the subset
// large enough to cluster.
func nationalProfile(precincts []Precinct, columns []string) map[string]float64 {
	totals := make(map[string]float64, len(columns))
	grand := 0.0
	for _, p := range precincts {
		for c, v := range p.Votes {
			totals[c] += float64(v)
			grand += float64(v)
		}
	}
	pi := make(map[string]float64, len(columns))
	if grand <= 0 {
		return pi
	}
	for c, t := range totals {
		pi[c] = t / grand
	}
	return pi
}

// isMajor reports whether column c is a major party under π.
func isMajor(pi map[string]float64, c string) bool {
	return pi[c] > majorThreshold
}

// proportionsOf builds p[c] = votes[c] / valid for one precinct, in
// column order. A precinct with valid == 0 has no well-defined
// proportions vector and is the caller's responsibility to exclude.
func proportionsOf(p Precinct, columns []string) []float64 {
	out := make([]float64, len(columns))
	if p.Valid <= 0 {
		return out
	}
	for i, c := range columns {
		out[i] = float64(p.Votes[c]) / float64(p.Valid)
	}
	return out
}

// standardize z-scores each column of rows in place-equivalent fashion,
// returning a new matrix plus the per-column mean/stddev used, so the
// same transform can be replayed on out-of-sample vectors (e.g. none
// here, since detectors reuse the already-standardized rows).
func standardize(rows [][]float64) (standardized [][]float64, mean, std []float64) {
	if len(rows) == 0 {
		return nil, nil, nil
	}
	cols := len(rows[0])
	mean = make([]float64, cols)
	std = make([]float64, cols)
	column := make([]float64, len(rows))
	for j := 0; j < cols; j++ {
		for i, r := range rows {
			column[i] = r[j]
		}
		m, s := stat.PopMeanStdDev(column, nil)
		mean[j] = m
		if s == 0 {
			s = 1
		}
		std[j] = s
	}

	standardized = make([][]float64, len(rows))
	for i, r := range rows {
		out := make([]float64, cols)
		for j, v := range r {
			out[j] = (v - mean[j]) / std[j]
		}
		standardized[i] = out
	}
	return standardized, mean, std
}
