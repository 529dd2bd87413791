// File: convex.go
// Role: projected-gradient solver over the row simplex, solving
// minimize ||XM - Y||_F s.t. M>=0, M<=1, rows of M sum to 1.
//
// Algorithm:
//  1. Gradient of f(M) = ||XM-Y||_F^2 is G = 2 X^T (XM - Y).
//  2. M <- M - lr*G (vanilla gradient step; lr chosen <= 1/L via the
//     Frobenius-norm Lipschitz bound, which keeps the quadratic objective
//     non-increasing).
//  3. Each row of M is re-projected onto the probability simplex
//     (Euclidean projection: Duchi et al. 2008's sort-and-threshold
//     method), which enforces M>=0, rows sum to 1, and as a consequence
//     M<=1, in one O(k log k) step per row of width k=nTargets.
//
// Convergence is checked by the Frobenius norm of the per-iteration M
// delta against a fixed tolerance; hitting MaxIterations first returns
// the best iterate with StatusIterationLimit, a warning, never an abort.
package transfer

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const convexTolerance = 1e-7

func solveConvex(X, Y *mat.Dense, opts Options) ([][]float64, int, Status) {
	_, nSources := X.Dims()
	_, nTargets := Y.Dims()

	M := mat.NewDense(nSources, nTargets, nil)
	for i := 0; i < nSources; i++ {
		for j := 0; j < nTargets; j++ {
			M.Set(i, j, 1.0/float64(nTargets))
		}
	}

	lr := opts.LearningRate
	if lr <= 0 {
		lr = 1.0 / (2*frobeniusNormSquared(X) + 1e-9)
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = 20000
	}

	var resid, grad mat.Dense
	status := StatusIterationLimit
	iter := 0
	for ; iter < maxIter; iter++ {
		resid.Mul(X, M)         // XM
		resid.Sub(&resid, Y)    // XM - Y
		grad.Mul(X.T(), &resid) // X^T (XM - Y)
		grad.Scale(2*lr, &grad)

		delta := 0.0
		for i := 0; i < nSources; i++ {
			row := make([]float64, nTargets)
			for j := 0; j < nTargets; j++ {
				row[j] = M.At(i, j) - grad.At(i, j)
			}
			projected := projectSimplex(row)
			for j := 0; j < nTargets; j++ {
				d := projected[j] - M.At(i, j)
				delta += d * d
				M.Set(i, j, projected[j])
			}
		}

		if math.Sqrt(delta) < convexTolerance {
			status = StatusOptimal
			iter++
			break
		}
	}

	out := make([][]float64, nSources)
	for i := range out {
		out[i] = make([]float64, nTargets)
		for j := 0; j < nTargets; j++ {
			out[i][j] = M.At(i, j)
		}
	}
	return out, iter, status
}

func frobeniusNormSquared(m *mat.Dense) float64 {
	r, c := m.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			sum += v * v
		}
	}
	return sum
}

// projectSimplex returns the Euclidean projection of v onto
// {x : x>=0, sum(x)=1}, via Duchi et al.'s sort-and-threshold method.
func projectSimplex(v []float64) []float64 {
	n := len(v)
	u := make([]float64, n)
	copy(u, v)
	sort.Sort(sort.Reverse(sort.Float64Slice(u)))

	cumsum := 0.0
	rho := -1
	rhoCumsum := 0.0
	for i, ui := range u {
		cumsum += ui
		t := (cumsum - 1) / float64(i+1)
		if ui-t > 0 {
			rho = i
			rhoCumsum = cumsum
		}
	}
	if rho < 0 {
		// All entries were <= their running average; fall back to the
		// uniform distribution, which is always feasible.
		out := make([]float64, n)
		for i := range out {
			out[i] = 1.0 / float64(n)
		}
		return out
	}

	theta := (rhoCumsum - 1) / float64(rho+1)
	out := make([]float64, n)
	for i, vi := range v {
		out[i] = math.Max(vi-theta, 0)
	}
	return out
}
