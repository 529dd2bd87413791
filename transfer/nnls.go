// File: nnls.go
// Role: non-negative least squares per target column, Lawson-Hanson
// active-set method, followed by row renormalization to restore the
// row-stochastic law exactly.
package transfer

import "gonum.org/v1/gonum/mat"

const nnlsMaxIter = 500
const nnlsTolerance = 1e-10

func solveNNLS(X, Y *mat.Dense) [][]float64 {
	nPrecincts, nSources := X.Dims()
	_, nTargets := Y.Dims()

	M := make([][]float64, nSources)
	for i := range M {
		M[i] = make([]float64, nTargets)
	}

	yCol := mat.NewVecDense(nPrecincts, nil)
	for j := 0; j < nTargets; j++ {
		for r := 0; r < nPrecincts; r++ {
			yCol.SetVec(r, Y.At(r, j))
		}
		w := nnlsColumn(X, yCol)
		for i := 0; i < nSources; i++ {
			M[i][j] = w[i]
		}
	}

	for i := 0; i < nSources; i++ {
		sum := 0.0
		for j := 0; j < nTargets; j++ {
			sum += M[i][j]
		}
		if sum <= 0 {
			for j := 0; j < nTargets; j++ {
				M[i][j] = 1.0 / float64(nTargets)
			}
			continue
		}
		for j := 0; j < nTargets; j++ {
			M[i][j] /= sum
		}
	}

	return M
}

// nnlsColumn solves min ||X w - y||_2 s.t. w >= 0 via the Lawson-Hanson
// active-set algorithm.
func nnlsColumn(X *mat.Dense, y *mat.VecDense) []float64 {
	_, n := X.Dims()
	w := make([]float64, n)
	active := make([]bool, n) // true = in the passive (unconstrained) set

	var resid mat.VecDense
	for iter := 0; iter < nnlsMaxIter; iter++ {
		resid.MulVec(X, vecFrom(w))
		resid.SubVec(y, &resid)

		var grad mat.VecDense
		grad.MulVec(X.T(), &resid)

		// Find the most-violating inactive variable.
		best := -1
		bestVal := nnlsTolerance
		for i := 0; i < n; i++ {
			if active[i] {
				continue
			}
			if g := grad.AtVec(i); g > bestVal {
				bestVal = g
				best = i
			}
		}
		if best < 0 {
			break
		}
		active[best] = true

		for inner := 0; inner < nnlsMaxIter; inner++ {
			wp := solvePassive(X, y, active)

			violated := false
			alpha := 1.0
			for i := 0; i < n; i++ {
				if active[i] && wp[i] < 0 {
					violated = true
					denom := w[i] - wp[i]
					if denom > 0 {
						if a := w[i] / denom; a < alpha {
							alpha = a
						}
					}
				}
			}
			if !violated {
				w = wp
				break
			}

			for i := 0; i < n; i++ {
				w[i] = w[i] + alpha*(wp[i]-w[i])
				if active[i] && w[i] <= nnlsTolerance {
					active[i] = false
					w[i] = 0
				}
			}
		}
	}
	return w
}

// solvePassive least-squares-solves X_passive w = y for the variables
// marked active, leaving all others at zero.
func solvePassive(X *mat.Dense, y *mat.VecDense, active []bool) []float64 {
	m, n := X.Dims()
	var cols []int
	for i, a := range active {
		if a {
			cols = append(cols, i)
		}
	}
	out := make([]float64, n)
	if len(cols) == 0 {
		return out
	}

	sub := mat.NewDense(m, len(cols), nil)
	for c, orig := range cols {
		for r := 0; r < m; r++ {
			sub.Set(r, c, X.At(r, orig))
		}
	}

	var qr mat.QR
	qr.Factorize(sub)
	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, mat.NewDense(m, 1, yValues(y))); err != nil {
		return out
	}
	for c, orig := range cols {
		out[orig] = sol.At(c, 0)
	}
	return out
}

func vecFrom(w []float64) *mat.VecDense {
	return mat.NewVecDense(len(w), w)
}

func yValues(y *mat.VecDense) []float64 {
	n := y.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = y.AtVec(i)
	}
	return out
}
