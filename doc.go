// Package electiontransfer reconstructs vote-transfer dynamics between
// two consecutive elections, forward-simulates synthetic ballots under a
// hypothesized transfer scenario, and scores precincts for statistical
// irregularity.
//
// The module is organized as a pipeline of independent packages, each
// corresponding to one stage of that reconstruction:
//
//	catalog/     : party metadata and longitudinal family grouping
//	ballot/      : per-election precinct tables, ids, and cross-election pairing
//	transfer/    : the transfer-matrix solver (convex, NNLS, closed-form)
//	abstain/     : synthetic "did not vote" column augmentation
//	simulate/    : forward simulation of a synthetic target election
//	irregularity/: six-detector precinct anomaly scoring
//	metrics/     : settlement aggregation, Pedersen volatility, HHI, similarity
//	canon/       : settlement-name canonicalization
//	geoindex/    : precinct/settlement coordinate lookup
//	config/      : enumerated pipeline options, functional options + YAML
//	collab/      : external collaborator interfaces (no production implementation)
//	pipeline/    : orchestration, structured logging, metrics export, run ids
//	cmd/auditctl/: the CLI wiring the above into runnable commands
//
// Each package is independently usable: the core packages (catalog
// through geoindex) have no dependency on logging, metrics, or the CLI,
// and can be imported directly by a caller that wants only, say, the
// transfer solver.
package electiontransfer
