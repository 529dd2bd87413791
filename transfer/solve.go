package transfer

import (
	"gonum.org/v1/gonum/mat"
)

// Solve estimates a transfer matrix M minimizing ||XM - Y||_F, where X is
// precincts-by-sources and Y is precincts-by-targets (both non-negative,
// same row count, the matched-precinct rows). No column-sum or row-sum
// preconditioning is applied.
func Solve(X, Y [][]float64, opts Options) (Result, error) {
	if len(X) == 0 || len(Y) == 0 {
		return Result{}, ErrInputEmpty
	}
	if len(X) != len(Y) {
		return Result{}, ErrDimensionMismatch
	}

	xd := denseFrom(X)
	yd := denseFrom(Y)

	var M [][]float64
	status := StatusOptimal
	iterations := 0

	switch opts.Method {
	case MethodNNLS:
		M = solveNNLS(xd, yd)
	case MethodClosedForm:
		lambda := opts.RidgeLambda
		if lambda <= 0 {
			lambda = 1e-6
		}
		M = solveClosedForm(xd, yd, lambda)
	default:
		M, iterations, status = solveConvex(xd, yd, opts)
	}

	r2 := rSquared(xd, yd, M)
	return Result{M: M, RSquared: r2, Status: status, Iterations: iterations}, nil
}

// rSquared computes R^2 = 1 - ||Y-XM||^2_F / ||Y-mean(Y)||^2_F, reported
// for monitoring only (not used to gate acceptance of M).
func rSquared(X, Y *mat.Dense, M [][]float64) float64 {
	nSources, nTargets := len(M), 0
	if nSources > 0 {
		nTargets = len(M[0])
	}
	md := mat.NewDense(nSources, nTargets, nil)
	for i := 0; i < nSources; i++ {
		for j := 0; j < nTargets; j++ {
			md.Set(i, j, M[i][j])
		}
	}

	var pred mat.Dense
	pred.Mul(X, md)

	rows, cols := Y.Dims()
	residSS := 0.0
	colMeans := make([]float64, cols)
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += Y.At(i, j)
		}
		colMeans[j] = sum / float64(rows)
	}

	totalSS := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := Y.At(i, j) - pred.At(i, j)
			residSS += d * d
			dm := Y.At(i, j) - colMeans[j]
			totalSS += dm * dm
		}
	}

	if totalSS == 0 {
		return 1
	}
	return 1 - residSS/totalSS
}

func denseFrom(m [][]float64) *mat.Dense {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	d := mat.NewDense(rows, cols, nil)
	for i, row := range m {
		for j, v := range row {
			d.Set(i, j, v)
		}
	}
	return d
}
