// File: closedform.go
// Role: Tikhonov-regularized pseudo-inverse least squares via the SVD
// of X: M = V * diag(s_i/(s_i^2+lambda)) * U^T * Y, the standard
// SVD form of ridge regression. Retained for comparison only: entries
// may be negative or exceed 1, and rows are not constrained to sum to 1.
package transfer

import "gonum.org/v1/gonum/mat"

func solveClosedForm(X, Y *mat.Dense, lambda float64) [][]float64 {
	_, nSources := X.Dims()
	_, nTargets := Y.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		// X cannot be decomposed: fall back to the uniform matrix rather
		// than propagate NaNs downstream.
		return uniformMatrix(nSources, nTargets)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	var uty mat.Dense
	uty.Mul(u.T(), Y)

	k := len(values)
	scaled := mat.NewDense(k, nTargets, nil)
	for i := 0; i < k; i++ {
		s := values[i]
		factor := s / (s*s + lambda)
		for j := 0; j < nTargets; j++ {
			scaled.Set(i, j, factor*uty.At(i, j))
		}
	}

	var m mat.Dense
	m.Mul(&v, scaled)

	out := make([][]float64, nSources)
	for i := 0; i < nSources; i++ {
		out[i] = make([]float64, nTargets)
		for j := 0; j < nTargets; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func uniformMatrix(nSources, nTargets int) [][]float64 {
	out := make([][]float64, nSources)
	for i := range out {
		out[i] = make([]float64, nTargets)
		for j := range out[i] {
			out[i][j] = 1.0 / float64(nTargets)
		}
	}
	return out
}
