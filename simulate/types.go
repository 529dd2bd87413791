// Package simulate produces a synthetic target-election ballot table from
// a source table, a hypothesized transfer configuration, and a Dirichlet
// noise parameter, preserving each precinct's integer total via
// largest-remainder rounding.
//
// Votes are aggregated into caller-declared "family" buckets before the
// per-target expectation is computed; any source party code the caller
// has not assigned to a bucket folds into a designated dominant family.
package simulate

import "errors"

// ErrNoTargetColumns indicates Config.TargetColumns is empty; there is
// nothing to simulate into.
var ErrNoTargetColumns = errors.New("simulate: no target columns declared")

// ErrShareNotNormalized indicates a source family's destination shares do
// not sum to (approximately) 1.
var ErrShareNotNormalized = errors.New("simulate: source_family_share row does not sum to 1")

const shareTolerance = 1e-6

// PrecinctInput is one source-election precinct as ForwardSimulator
// consumes it: party-keyed vote counts plus the fields carried through
// unchanged (invalid, eligible).
type PrecinctInput struct {
	Votes    map[string]int // source PartyCode (as string) -> count
	Invalid  int
	Eligible int
}

// PrecinctOutput is one synthesized target-election precinct.
type PrecinctOutput struct {
	Votes    map[string]int // target column -> count, sums exactly to Total
	Total    int            // T: the effective new ballot total
	Valid    int
	Voted    int
	Invalid  int
	Eligible int
}

// Config bundles the simulator's per-run parameters.
type Config struct {
	// SourcePartyFamily maps a source PartyCode to the family bucket used
	// to look up shares and turnout. Codes absent from this map fold into
	// DominantFamily.
	SourcePartyFamily map[string]string
	// DominantFamily receives the votes of any source code not present in
	// SourcePartyFamily.
	DominantFamily string
	// SourceFamilyShare[srcFamily][dstColumn] is the fraction of
	// srcFamily's (turnout-adjusted) votes expected to land in dstColumn;
	// each inner map must sum to 1.
	SourceFamilyShare map[string]map[string]float64
	// Turnout[srcFamily] is tau, default 1 when absent.
	Turnout map[string]float64
	// TargetColumns is the declared, ordered list of output columns
	// (column order is never alphabetical or hash-driven).
	TargetColumns []string
	// Alpha is the Dirichlet concentration; higher alpha means tighter
	// (less noisy) draws. Default 55.
	Alpha float64
	// Seed drives the deterministic RNG.
	Seed int64
}

// Option is a functional option over Config, matching the functional-
// options idiom used throughout this codebase.
type Option func(*Config)

// DefaultConfig returns the simulator's default parameters with empty maps ready to fill.
func DefaultConfig(seed int64) Config {
	return Config{
		SourcePartyFamily: map[string]string{},
		SourceFamilyShare: map[string]map[string]float64{},
		Turnout:           map[string]float64{},
		Alpha:             55,
		Seed:              seed,
	}
}

// WithAlpha overrides the Dirichlet concentration.
func WithAlpha(alpha float64) Option { return func(c *Config) { c.Alpha = alpha } }

// WithTargetColumns sets the declared output column order.
func WithTargetColumns(cols ...string) Option {
	return func(c *Config) { c.TargetColumns = append([]string(nil), cols...) }
}

// WithDominantFamily sets the fallback bucket for unmapped source codes.
func WithDominantFamily(family string) Option { return func(c *Config) { c.DominantFamily = family } }

// tau returns the turnout factor for a family, defaulting to 1.
func (c Config) tau(family string) float64 {
	if t, ok := c.Turnout[family]; ok {
		return t
	}
	return 1
}

// validateShares checks every declared row of SourceFamilyShare sums to 1.
func (c Config) validateShares() error {
	for _, row := range c.SourceFamilyShare {
		sum := 0.0
		for _, frac := range row {
			sum += frac
		}
		if sum < 1-shareTolerance || sum > 1+shareTolerance {
			return ErrShareNotNormalized
		}
	}
	return nil
}

// Scenario names a reusable SourceFamilyShare table with an attribution,
// matching named what-if scenarios such as "status quo" or "high
// turnout". Construction is pure data; it has no effect on the
// simulation algorithm itself.
type Scenario struct {
	Name           string
	Description    string
	FamilyShare    map[string]map[string]float64
	SourceCitation string
}

// FromScenario builds a Config seeded for a named scenario: every other
// field starts at DefaultConfig(seed) and SourceFamilyShare is replaced
// wholesale by the scenario's table. Callers still set
// SourcePartyFamily, DominantFamily, and TargetColumns afterward, since
// those describe the source ballot table rather than the scenario
// itself.
func FromScenario(s Scenario, seed int64) Config {
	cfg := DefaultConfig(seed)
	cfg.SourceFamilyShare = s.FamilyShare
	return cfg
}
