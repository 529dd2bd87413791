package irregularity

import (
	"context"
	"sort"

	"github.com/harelcain/electiontransfer/collab"
)

// Score runs the precinct-level anomaly scorer over one election's
// precincts: it builds the shared preparation (national profile,
// filtered proportions matrix, standardized rows, cluster model), scores
// every eligible precinct against the six detectors, then ranks and
// filters the result.
func Score(precincts []Precinct, opts Options) ([]Anomaly, error) {
	if len(precincts) == 0 {
		return nil, ErrNoPrecincts
	}
	if opts.MinScore <= 0 {
		opts.MinScore = 8.0
	}
	if opts.TopN <= 0 {
		opts.TopN = 100
	}
	if opts.MinValid <= 0 {
		opts.MinValid = 50
	}

	pi := nationalProfile(precincts, opts.Columns)

	var eligible []Precinct
	var rawRows [][]float64
	for _, p := range precincts {
		if p.Valid < opts.MinValid {
			continue
		}
		eligible = append(eligible, p)
		rawRows = append(rawRows, proportionsOf(p, opts.Columns))
	}
	if len(eligible) == 0 {
		return nil, nil
	}

	standardized, _, _ := standardize(rawRows)
	model := fitClusters(standardized, opts.Seed, 10)

	var out []Anomaly
	for i, p := range eligible {
		findings := scoreOne(p, rawRows[i], standardized[i], opts.Columns, pi, model)
		total, hasHigh := 0.0, false
		for _, f := range findings {
			total += f.Score
			if f.Severity == SeverityHigh {
				hasHigh = true
			}
		}
		if total < opts.MinScore || !hasHigh {
			continue
		}
		out = append(out, Anomaly{PrecinctId: p.Id, Score: total, Findings: findings})
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if len(out) > opts.TopN {
		out = out[:opts.TopN]
	}
	return out, nil
}

// scoreOne runs all six detectors for a single precinct and collects
// the findings that fired.
func scoreOne(p Precinct, proportions, standardizedRow []float64, columns []string, pi map[string]float64, model clusterModel) []Finding {
	var findings []Finding
	checks := []*Finding{
		detectShiftError(proportions, columns, pi),
		detectRoundNumbers(p.Votes),
		detectTurnoutImpossible(p),
		detectStatisticalOutlier(standardizedRow, model),
		detectDominance(proportions, columns, pi),
		detectSmallPartySpike(proportions, p.Votes, columns, pi),
	}
	for _, f := range checks {
		if f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

// FilterCorrected asks verifier whether each candidate anomaly's
// precinct has since been corrected in the authoritative record.
// Corrected precincts are dropped from the returned slice unless
// keepFixed is true, in which case they are retained with
// Status = "fixed"; all surviving uncorrected candidates get
// Status = "active".
func FilterCorrected(ctx context.Context, candidates []Anomaly, election string, settlementOf func(precinctId string) (settlementCode int, precinctNumber string), verifier collab.VerifierCollaborator, keepFixed bool) ([]Anomaly, error) {
	out := make([]Anomaly, 0, len(candidates))
	for _, a := range candidates {
		settlementCode, precinctNumber := settlementOf(a.PrecinctId)
		corrected, _, err := verifier.WasCorrected(ctx, election, settlementCode, precinctNumber)
		if err != nil {
			return nil, err
		}
		if corrected {
			if keepFixed {
				a.Status = "fixed"
				out = append(out, a)
			}
			continue
		}
		a.Status = "active"
		out = append(out, a)
	}
	return out, nil
}
