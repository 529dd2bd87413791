// File: metrics.go
// Role: run-level Prometheus instrumentation.
//
// client_golang offers two layers: api/prometheus/v1 wraps the *query*
// API for reading metrics back out of a running Prometheus server, while
// github.com/prometheus/client_golang/prometheus is the instrumentation
// layer for exposing counters and gauges. A pipeline run needs the
// latter, so this file builds on that layer directly, registering a
// dedicated Registry per Collector rather than touching the process
// global one, the way a library embedded in someone else's binary
// should.
package pipeline

import "github.com/prometheus/client_golang/prometheus"

// Collector holds one run's Prometheus instrumentation.
type Collector struct {
	Registry *prometheus.Registry

	MatchedPrecincts prometheus.Gauge
	SolverRSquared   prometheus.Gauge
	SolverIterations prometheus.Gauge
	AnomaliesFound   prometheus.Gauge
	RunsTotal        prometheus.Counter
	StageErrors      *prometheus.CounterVec
}

// NewCollector builds a Collector with its own private Registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		Registry: reg,
		MatchedPrecincts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "electiontransfer",
			Name:      "matched_precincts",
			Help:      "Number of precincts paired between source and target elections in the last run.",
		}),
		SolverRSquared: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "electiontransfer",
			Name:      "solver_r_squared",
			Help:      "Goodness of fit of the last transfer-matrix solve.",
		}),
		SolverIterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "electiontransfer",
			Name:      "solver_iterations",
			Help:      "Iterations consumed by the last transfer-matrix solve.",
		}),
		AnomaliesFound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "electiontransfer",
			Name:      "anomalies_found",
			Help:      "Anomalies surviving the ranking gate in the last irregularity scoring pass.",
		}),
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "electiontransfer",
			Name:      "runs_total",
			Help:      "Total pipeline runs started, including failed ones.",
		}),
		StageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "electiontransfer",
			Name:      "stage_errors_total",
			Help:      "Fatal errors encountered per pipeline stage.",
		}, []string{"stage"}),
	}

	reg.MustRegister(c.MatchedPrecincts, c.SolverRSquared, c.SolverIterations,
		c.AnomaliesFound, c.RunsTotal, c.StageErrors)
	return c
}
