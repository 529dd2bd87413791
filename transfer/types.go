// Package transfer estimates a row-stochastic transfer matrix M relating
// per-precinct vote counts across two elections, minimizing the Frobenius
// residual ||XM - Y|| subject to M >= 0, M <= 1, each row of M summing to
// 1.
//
// Three methods are offered (Options.Method): convex (a projected-gradient
// simplex solver), nnls (per-target non-negative least squares followed by
// row renormalization), and closed_form (an SVD pseudo-inverse least
// squares, which may produce negative entries and is retained only for
// comparison).
//
// Errors:
//
//	ErrInputEmpty     - X/Y have zero rows (no matched precincts).
//	ErrDimensionMismatch - X and Y do not share a row count.
package transfer

import "errors"

// ErrInputEmpty indicates an empty matched-pair list was passed to Solve,
// fatal to the current operation.
var ErrInputEmpty = errors.New("transfer: input has zero rows")

// ErrDimensionMismatch indicates X and Y do not share the same row count.
var ErrDimensionMismatch = errors.New("transfer: X and Y row counts differ")

// Method selects the solving strategy.
type Method int

const (
	// MethodConvex is the default: a constrained projected-gradient solver
	// over the row simplex.
	MethodConvex Method = iota
	// MethodNNLS solves each target column independently via non-negative
	// least squares, then renormalizes each row to sum to 1.
	MethodNNLS
	// MethodClosedForm uses an SVD pseudo-inverse; rows are not
	// constrained and may contain negative or >1 entries.
	MethodClosedForm
)

// Options configures Solve.
type Options struct {
	Method         Method
	MaxIterations  int     // iteration ceiling for MethodConvex; default 20000
	LearningRate   float64 // gradient step size for MethodConvex; default computed from ||X||
	RidgeLambda    float64 // Tikhonov regularization for MethodClosedForm; default 1e-6
	IncludeAbstain bool    // informational only; abstain columns are appended by the caller (abstain package)
}

// DefaultOptions returns the solver's default parameters.
func DefaultOptions() Options {
	return Options{
		Method:        MethodConvex,
		MaxIterations: 20000,
		RidgeLambda:   1e-6,
	}
}

// Option is a functional option for Options, following the same
// functional-options idiom used throughout this codebase.
type Option func(*Options)

// WithMethod selects the solving method.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

// WithMaxIterations caps MethodConvex's iteration count.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithLearningRate overrides MethodConvex's gradient step size.
func WithLearningRate(lr float64) Option { return func(o *Options) { o.LearningRate = lr } }

// WithRidgeLambda overrides MethodClosedForm's Tikhonov regularization.
func WithRidgeLambda(lambda float64) Option { return func(o *Options) { o.RidgeLambda = lambda } }

// Resolve applies opts over DefaultOptions.
func Resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Status reports the solver's termination condition.
type Status int

const (
	// StatusOptimal: the solver converged within MaxIterations.
	StatusOptimal Status = iota
	// StatusIterationLimit: MethodConvex hit MaxIterations before the
	// convergence tolerance was reached; the best iterate is returned
	// as a warning, never an abort.
	StatusIterationLimit
)

// Result is Solve's output: the transfer matrix, goodness of fit, and
// solver diagnostics.
type Result struct {
	M          [][]float64 // row-stochastic, shape (nSources, nTargets)
	RSquared   float64
	Status     Status
	Iterations int
}
