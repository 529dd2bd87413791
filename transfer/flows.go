// File: flows.go
// Role: post-processing of a solved M into reported per-cell vote flows,
// and the export-time suppression of small flows: suppression never
// affects metrics computed on M directly, only the exported flow list.
package transfer

// Flow is one estimated source->target vote movement.
type Flow struct {
	SourceIndex int
	TargetIndex int
	Votes       float64
}

// DefaultMinFlowThreshold is the default export suppression threshold.
const DefaultMinFlowThreshold = 5000

// Flows computes F[i,j] = M[i,j] * totalSourceVotes[i] for every cell,
// using national per-source totals across all precincts of the source
// election (not only the matched subset used to fit M).
func Flows(M [][]float64, totalSourceVotes []float64) []Flow {
	var out []Flow
	for i, row := range M {
		total := 0.0
		if i < len(totalSourceVotes) {
			total = totalSourceVotes[i]
		}
		for j, m := range row {
			out = append(out, Flow{SourceIndex: i, TargetIndex: j, Votes: m * total})
		}
	}
	return out
}

// ExportFlows filters flows below minThreshold, for the export stage
// only; any metric computed directly from M/Flows should use the
// unsuppressed list.
func ExportFlows(flows []Flow, minThreshold float64) []Flow {
	out := make([]Flow, 0, len(flows))
	for _, f := range flows {
		if f.Votes >= minThreshold {
			out = append(out, f)
		}
	}
	return out
}
