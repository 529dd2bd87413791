package ballot

// BallotTable is an ordered, immutable collection of Precinct rows
// together with the set of party columns present in the raw feed it was
// built from. BallotTable exclusively owns its Precincts.
type BallotTable struct {
	Election  ElectionId
	Divisor   int // precinct_number_divisor declared for this election; 0/1 = none
	rows      []Precinct
	index     map[PrecinctId]int // PrecinctId -> index into rows
	Parties   map[PartyCode]struct{}
	Warnings  []string
	Duplicates int // count of duplicate canonical ids dropped (first wins)
}

// Load builds a BallotTable from raw rows for one election. It never
// fails: settlement 9999 is dropped, duplicate canonical ids reduce to
// the first occurrence (with the count recorded in Duplicates), and
// declared party columns absent from the overall row set are recorded as
// warnings rather than rejected.
//
// declaredParties, if non-nil, is the full set of party codes this
// election is expected to carry; codes in declaredParties seen in no row
// produce a MissingColumn warning and are still included (all-zero) in
// the table's Parties set.
func Load(rawRows []RawRow, election ElectionId, divisor int, declaredParties []PartyCode) *BallotTable {
	t := &BallotTable{
		Election: election,
		Divisor:  divisor,
		index:    make(map[PrecinctId]int),
		Parties:  make(map[PartyCode]struct{}),
	}

	seen := make(map[PartyCode]bool, len(declaredParties))

	for _, raw := range rawRows {
		if raw.SettlementCode == excludedSettlement {
			continue
		}

		id := PrecinctId{Settlement: raw.SettlementCode, Number: canonicalNumber(raw.PrecinctNumber, divisor)}
		if _, dup := t.index[id]; dup {
			t.Duplicates++
			continue
		}

		votes := make(map[PartyCode]int, len(raw.Votes))
		for code, v := range raw.Votes {
			votes[code] = v
			t.Parties[code] = struct{}{}
			seen[code] = true
		}

		t.index[id] = len(t.rows)
		t.rows = append(t.rows, Precinct{
			Id:             id,
			SettlementName: raw.SettlementName,
			Eligible:       raw.Eligible,
			Voted:          raw.Voted,
			Valid:          raw.Valid,
			Invalid:        raw.Invalid,
			Votes:          votes,
		})
	}

	for _, code := range declaredParties {
		t.Parties[code] = struct{}{}
		if !seen[code] {
			t.Warnings = append(t.Warnings, "missing_column: "+string(code))
		}
	}

	return t
}

// Rows returns the table's Precincts in insertion order. The returned
// slice is the table's own backing array; callers must not mutate it.
func (t *BallotTable) Rows() []Precinct { return t.rows }

// Len returns the number of precinct rows.
func (t *BallotTable) Len() int { return len(t.rows) }

// Lookup returns the Precinct for id, if present.
func (t *BallotTable) Lookup(id PrecinctId) (Precinct, bool) {
	i, ok := t.index[id]
	if !ok {
		return Precinct{}, false
	}
	return t.rows[i], true
}

// Has reports whether id is present in the table.
func (t *BallotTable) Has(id PrecinctId) bool {
	_, ok := t.index[id]
	return ok
}

// Validate reports non-fatal per-precinct invariant violations: they
// are signals for the ambient logger, never a rejection of the row.
func (t *BallotTable) Validate() []Diagnostic {
	var diags []Diagnostic
	for _, p := range t.rows {
		if p.Valid > 0 || p.Invalid > 0 {
			if diff := p.Valid + p.Invalid - p.Voted; diff > 1 || diff < -1 {
				diags = append(diags, Diagnostic{Id: p.Id, Kind: DiagValidInvalidMismatch,
					Message: "valid+invalid differs from voted by more than 1"})
			}
		}
		if p.Eligible > 0 && p.Voted > p.Eligible {
			diags = append(diags, Diagnostic{Id: p.Id, Kind: DiagVotedExceedsEligible,
				Message: "voted exceeds eligible"})
		}
		if p.Valid > 0 {
			sum := 0
			for _, v := range p.Votes {
				sum += v
			}
			if sum != p.Valid {
				diags = append(diags, Diagnostic{Id: p.Id, Kind: DiagVoteSumMismatch,
					Message: "sum(votes) does not equal valid"})
			}
		}
	}
	return diags
}
