package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CosineSimilarity computes cosine similarity between two parties'
// settlement-level absolute-vote vectors, computed only for
// the most recent election by convention of the caller that builds the
// vectors.
func CosineSimilarity(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// PearsonCorrelation computes the Pearson correlation coefficient
// between two parties' precinct-level proportion vectors.
func PearsonCorrelation(a, b []float64) float64 {
	if len(a) < 2 {
		return 0
	}
	return stat.Correlation(a, b, nil)
}
