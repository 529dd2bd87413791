package ballot

// Match produces the ordered list of paired precincts consumed by the
// transfer solver. Rules, applied in order, per E2 precinct:
//
//  1. Exact canonical match between e1 and e2: paired.
//  2. If the E2 id's canonical number carries exactly a ".1" suffix, let
//     base be the number with that suffix stripped. If e2 contains no
//     canonical id equal to base (i.e. no ".0" sibling survived
//     canonicalization) and e1 contains base, pair (base in e1, this id
//     in e2).
//  3. Otherwise the E2 precinct is left unmatched.
//
// This is the stricter rule: subdivision suffixes other than ".1" are
// never paired, even when a corresponding unsubdivided E1 precinct
// exists.
//
// Postcondition: no E2 precinct appears in more than one pair, since
// Match iterates e2's rows once and emits at most one pair per row.
func Match(e1, e2 *BallotTable) []PrecinctPair {
	pairs := make([]PrecinctPair, 0, e2.Len())

	for _, p2 := range e2.rows {
		id2 := p2.Id

		if e1.Has(PrecinctId{Settlement: id2.Settlement, Number: id2.Number}) {
			pairs = append(pairs, PrecinctPair{
				Source: PrecinctId{Settlement: id2.Settlement, Number: id2.Number},
				Target: id2,
			})
			continue
		}

		base, ok := hasSuffix1(id2.Number)
		if !ok {
			continue
		}
		baseId := PrecinctId{Settlement: id2.Settlement, Number: base}
		if e2.Has(baseId) {
			// A ".0" sibling (canonicalized to base) exists in E2: rule 2
			// does not apply, this precinct stays unmatched.
			continue
		}
		if e1.Has(baseId) {
			pairs = append(pairs, PrecinctPair{Source: baseId, Target: id2})
		}
	}

	return pairs
}
