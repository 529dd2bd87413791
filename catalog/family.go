package catalog

// familyUnion is a disjoint-set-union (union-find) over two kinds of keys:
// party members (election, code) and family labels. It lets FamilyLink
// calls compose correctly when a lineage chains through more than one
// FamilyId across several elections (a later link can union two
// previously-separate family labels together). Union by rank keeps every
// path O(log n) long; construction compresses paths, lookups do not. The
// structure is the one a Kruskal MST implementation uses for
// edge-acceptance tests, adapted here from spanning-tree cycle detection
// to party-family equivalence classing.
type familyUnion struct {
	parent map[string]string
	rank   map[string]int
	// famOf remembers, for every root that is itself a family-typed node,
	// which FamilyId it denotes. Member-typed roots have no entry.
	famOf map[string]FamilyId
}

func newFamilyUnion() *familyUnion {
	return &familyUnion{
		parent: make(map[string]string),
		rank:   make(map[string]int),
		famOf:  make(map[string]FamilyId),
	}
}

func memberKey(m familyMember) string { return "m\x00" + string(m.election) + "\x00" + string(m.code) }
func familyKey(f FamilyId) string     { return "f\x00" + string(f) }

func (u *familyUnion) ensure(key string) {
	if _, ok := u.parent[key]; !ok {
		u.parent[key] = key
		u.rank[key] = 0
	}
}

// root finds the representative of key's set, with path compression.
func (u *familyUnion) root(key string) string {
	u.ensure(key)
	if u.parent[key] != key {
		u.parent[key] = u.root(u.parent[key])
	}
	return u.parent[key]
}

// union merges member's set with family's set. When both sets already
// carry a (possibly different) resolved FamilyId, the family passed in
// this call wins as the merged set's FamilyId, so that a later,
// more-specific link can re-home an earlier chain.
func (u *familyUnion) union(m familyMember, f FamilyId) {
	mk, fk := memberKey(m), familyKey(f)
	u.ensure(fk)
	u.famOf[u.root(fk)] = f

	rm, rf := u.root(mk), u.root(fk)
	if rm == rf {
		u.famOf[rf] = f
		return
	}

	// Union by rank, but always keep a family-bearing root on top so Find
	// never has to search sideways for the label.
	if u.rank[rm] > u.rank[rf] {
		rm, rf = rf, rm
	}
	u.parent[rm] = rf
	if u.rank[rm] == u.rank[rf] {
		u.rank[rf]++
	}
	u.famOf[rf] = f
}

// find returns the FamilyId for member, if it was ever linked.
func (u *familyUnion) find(m familyMember) (FamilyId, bool) {
	mk := memberKey(m)
	if _, ok := u.parent[mk]; !ok {
		return "", false
	}
	// Walk to the root without path compression, so a lookup never
	// writes to the maps and concurrent FamilyOf calls stay safe.
	r := mk
	for u.parent[r] != r {
		r = u.parent[r]
	}
	fam, ok := u.famOf[r]
	return fam, ok
}
