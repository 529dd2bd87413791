// File: doc.go
// Role: package-level documentation for pipeline.
//
// Errors: each stage returns the error of whichever underlying package
// call failed. SolveTransfer prefixes the ballot and transfer errors
// with "pipeline:" and returns a config error as is; ScoreIrregularities
// and RunSimulation return their errors unwrapped. pipeline introduces
// no new sentinel errors of its own.
package pipeline
