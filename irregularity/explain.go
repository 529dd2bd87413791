package irregularity

import "fmt"

// Explain renders a one-line human-readable summary of an anomaly,
// listing its highest-scoring finding first. This addition has no
// counterpart in a six-detector scorer that only ever emits structured
// data; it exists so a CLI or report can print something readable
// without re-deriving the detector semantics.
func Explain(a Anomaly) string {
	if len(a.Findings) == 0 {
		return fmt.Sprintf("precinct %s: score %.1f, no findings", a.PrecinctId, a.Score)
	}
	top := a.Findings[0]
	for _, f := range a.Findings[1:] {
		if f.Score > top.Score {
			top = f
		}
	}
	return fmt.Sprintf("precinct %s: score %.1f (%s, %d finding(s), top=%s/%s)",
		a.PrecinctId, a.Score, statusOrPending(a.Status), len(a.Findings), top.Kind, top.Severity)
}

func statusOrPending(status string) string {
	if status == "" {
		return "unverified"
	}
	return status
}
