// Package config holds the pipeline-wide enumerated options, loadable
// from YAML and overridable via functional options, generalizing the
// per-component Option pattern used throughout this module to the whole
// pipeline.
package config

import (
	"errors"
	"fmt"

	"github.com/harelcain/electiontransfer/transfer"
)

// ErrUnknownTransferMethod indicates transfer.method named something
// other than convex, nnls, or closed_form.
var ErrUnknownTransferMethod = errors.New("config: unknown transfer.method")

// Config bundles every enumerated pipeline option.
type Config struct {
	TransferMethod            string  `yaml:"transfer_method"`             // "convex" (default), "nnls", "closed_form"
	TransferMinFlowThreshold  int     `yaml:"transfer_min_flow_threshold"` // default 5000
	TransferIncludeAbstention bool    `yaml:"transfer_include_abstention"` // default false
	TransferMaxIterations     int     `yaml:"transfer_max_iterations"`     // default 20000
	IrregularityMinValid      int     `yaml:"irregularity_min_valid"`      // default 50
	IrregularityMinScore      float64 `yaml:"irregularity_min_score"`      // default 8.0
	IrregularityTopN          int     `yaml:"irregularity_top_n"`          // default 100
	SimulatorAlpha            float64 `yaml:"simulator_alpha"`             // default 55
	SimulatorSeed             int64   `yaml:"simulator_seed"`
	AggregationNameOverrides  map[string]string `yaml:"aggregation_name_overrides"`
}

// Option is a functional option over Config.
type Option func(*Config)

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		TransferMethod:            "convex",
		TransferMinFlowThreshold:  5000,
		TransferIncludeAbstention: false,
		TransferMaxIterations:     20000,
		IrregularityMinValid:      50,
		IrregularityMinScore:      8.0,
		IrregularityTopN:          100,
		SimulatorAlpha:            55,
		AggregationNameOverrides:  map[string]string{},
	}
}

// Resolve applies opts over Default.
func Resolve(opts ...Option) Config {
	c := Default()
	for _, apply := range opts {
		apply(&c)
	}
	return c
}

// WithTransferMethod overrides transfer.method.
func WithTransferMethod(method string) Option {
	return func(c *Config) { c.TransferMethod = method }
}

// WithSimulatorSeed overrides simulator.seed.
func WithSimulatorSeed(seed int64) Option {
	return func(c *Config) { c.SimulatorSeed = seed }
}

// WithNameOverride records one settlement-name correction in
// AggregationNameOverrides. The map is only stored: canon.Canon and
// pipeline.AggregateElection do not read it, so settlement names are
// normalized with canon's built-in override table alone.
func WithNameOverride(from, to string) Option {
	return func(c *Config) {
		if c.AggregationNameOverrides == nil {
			c.AggregationNameOverrides = map[string]string{}
		}
		c.AggregationNameOverrides[from] = to
	}
}

// ToTransferOptions translates the enumerated transfer.* options into a
// transfer.Options value.
func (c Config) ToTransferOptions() (transfer.Options, error) {
	opts := transfer.DefaultOptions()
	opts.MaxIterations = c.TransferMaxIterations
	opts.IncludeAbstain = c.TransferIncludeAbstention
	switch c.TransferMethod {
	case "convex", "":
		opts.Method = transfer.MethodConvex
	case "nnls":
		opts.Method = transfer.MethodNNLS
	case "closed_form":
		opts.Method = transfer.MethodClosedForm
	default:
		return transfer.Options{}, fmt.Errorf("%w: %q", ErrUnknownTransferMethod, c.TransferMethod)
	}
	return opts, nil
}
