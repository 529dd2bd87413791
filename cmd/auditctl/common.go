package main

import (
	"os"

	"github.com/harelcain/electiontransfer/config"
	"github.com/harelcain/electiontransfer/pipeline"
)

// resolveConfig loads config.Config from --config when set, falling back
// to the built-in defaults.
func resolveConfig() (config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadYAML(cfgFile)
}

// newCLILogger builds the run-level Logger, honoring --verbose.
func newCLILogger() *pipeline.Logger {
	level := pipeline.LogLevelInfo
	if verbose {
		level = pipeline.LogLevelDebug
	}
	return pipeline.NewLogger(pipeline.LoggerConfig{Level: level, Format: pipeline.LogFormatText, Output: os.Stdout})
}

// collector is the process-wide Prometheus instrumentation: one CLI
// invocation is one run, so a single Collector built at startup is
// enough to track this process's run/error counts and the last run's
// gauges.
var collector = pipeline.NewCollector()

// runStage wraps one subcommand's RunE body with run/error accounting:
// RunsTotal is incremented once per invocation, StageErrors[stage] once
// per failed invocation.
func runStage(stage string, fn func() error) error {
	collector.RunsTotal.Inc()
	if err := fn(); err != nil {
		collector.StageErrors.WithLabelValues(stage).Inc()
		return err
	}
	return nil
}
