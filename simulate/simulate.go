package simulate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate runs the forward ballot simulator over a set of source
// precincts, producing one synthetic output precinct per input, in the
// same order. Given identical cfg.Seed and inputs, the output is
// bit-identical across runs; the shared RNG is consumed precinct by
// precinct in input order (one Gamma draw per target column), so
// reordering inputs changes the draw each precinct receives.
func Simulate(inputs []PrecinctInput, cfg Config) ([]PrecinctOutput, error) {
	if len(cfg.TargetColumns) == 0 {
		return nil, ErrNoTargetColumns
	}
	if err := cfg.validateShares(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	out := make([]PrecinctOutput, len(inputs))
	for i, in := range inputs {
		out[i] = simulateOne(in, cfg, rng)
	}
	return out, nil
}

func simulateOne(in PrecinctInput, cfg Config, rng *rand.Rand) PrecinctOutput {
	familyVotes := aggregateFamilies(in.Votes, cfg)

	nCols := len(cfg.TargetColumns)
	expected := make([]float64, nCols)
	colIndex := make(map[string]int, nCols)
	for j, col := range cfg.TargetColumns {
		colIndex[col] = j
	}

	turnoutWeightedTotal := 0.0
	for fam, votes := range familyVotes {
		tau := cfg.tau(fam)
		weighted := votes * tau
		turnoutWeightedTotal += weighted
		shares, ok := cfg.SourceFamilyShare[fam]
		if !ok {
			continue
		}
		for dst, frac := range shares {
			if j, ok := colIndex[dst]; ok {
				expected[j] += weighted * frac
			}
		}
	}

	total := int(math.Round(turnoutWeightedTotal))
	if total < 1 {
		total = 1
	}

	p := proportions(expected)
	q := dirichletDraw(p, cfg.Alpha, rng)

	scaled := make([]float64, nCols)
	for j, qi := range q {
		scaled[j] = qi * float64(total)
	}
	counts := largestRemainder(scaled, total)

	votes := make(map[string]int, nCols)
	for j, col := range cfg.TargetColumns {
		votes[col] = counts[j]
	}

	return PrecinctOutput{
		Votes:    votes,
		Total:    total,
		Valid:    total,
		Voted:    total + in.Invalid,
		Invalid:  in.Invalid,
		Eligible: in.Eligible,
	}
}

func aggregateFamilies(votes map[string]int, cfg Config) map[string]float64 {
	out := make(map[string]float64)
	for code, v := range votes {
		fam, ok := cfg.SourcePartyFamily[code]
		if !ok {
			fam = cfg.DominantFamily
		}
		out[fam] += float64(v)
	}
	return out
}

// proportions normalizes e to sum to 1, falling back to the uniform
// distribution when the sum is zero.
func proportions(e []float64) []float64 {
	sum := 0.0
	for _, v := range e {
		sum += v
	}
	p := make([]float64, len(e))
	if sum <= 0 {
		for i := range p {
			p[i] = 1.0 / float64(len(e))
		}
		return p
	}
	for i, v := range e {
		p[i] = v / sum
	}
	return p
}

// dirichletDraw samples q ~ Dirichlet(max(alpha*p, 0.01)) by drawing
// independent Gamma(shape=concentration_i, scale=1) variates and
// normalizing them to sum to 1: the standard construction of a
// Dirichlet draw from independent Gammas, used here because no
// ready-made Dirichlet sampler exists in gonum/stat/distuv.
func dirichletDraw(p []float64, alpha float64, rng *rand.Rand) []float64 {
	n := len(p)
	gammas := make([]float64, n)
	sum := 0.0
	for i, pi := range p {
		conc := math.Max(alpha*pi, 0.01)
		g := distuv.Gamma{Alpha: conc, Beta: 1, Src: rng}
		gammas[i] = g.Rand()
		sum += gammas[i]
	}
	if sum <= 0 {
		return proportions(make([]float64, n))
	}
	for i := range gammas {
		gammas[i] /= sum
	}
	return gammas
}
