package simulate_test

import (
	"fmt"

	"github.com/harelcain/electiontransfer/simulate"
)

func ExampleDefaultConfig() {
	cfg := simulate.DefaultConfig(42)
	cfg = applyOptions(cfg, simulate.WithAlpha(70), simulate.WithDominantFamily("other"), simulate.WithTargetColumns("A2", "B", "C"))

	fmt.Println(cfg.Alpha, cfg.DominantFamily, cfg.TargetColumns, cfg.Seed)
	// Output:
	// 70 other [A2 B C] 42
}

func applyOptions(cfg simulate.Config, opts ...simulate.Option) simulate.Config {
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func ExampleFromScenario() {
	statusQuo := simulate.Scenario{
		Name:        "status quo",
		Description: "last cycle's source-family split carried forward unchanged",
		FamilyShare: map[string]map[string]float64{
			"A": {"A2": 0.9, "B2": 0.1},
			"B": {"A2": 0.05, "B2": 0.95},
		},
		SourceCitation: "status_quo.csv",
	}

	cfg := simulate.FromScenario(statusQuo, 42)
	cfg = applyOptions(cfg, simulate.WithDominantFamily("A"), simulate.WithTargetColumns("A2", "B2"))

	fmt.Println(cfg.SourceFamilyShare["A"], cfg.TargetColumns)
	// Output:
	// map[A2:0.9 B2:0.1] [A2 B2]
}
