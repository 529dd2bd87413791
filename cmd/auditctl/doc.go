// Command auditctl is the CLI front end for the election-transfer
// pipeline: solve, simulate, score, and aggregate, each a thin wrapper
// over the corresponding pipeline stage.
package main
