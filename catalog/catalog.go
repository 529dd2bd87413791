package catalog

import "fmt"

// Catalog is a process-wide, read-only party metadata and family table.
//
// Concurrency: Catalog is immutable after NewCatalog returns; all lookup
// methods are safe for concurrent use without locking.
type Catalog struct {
	base      map[PartyCode]baseRecord
	overrides map[overrideKey]baseRecord
	families  *familyUnion
}

// BaseEntry seeds the catalog's non-election-scoped record for a code.
type BaseEntry struct {
	Code        PartyCode
	DisplayName string
	Color       string
	Leader      string
}

// OverrideEntry overlays a base record for one specific election.
type OverrideEntry struct {
	Election    ElectionId
	Code        PartyCode
	DisplayName string
	Color       string
	Leader      string
}

// FamilyLink declares that (election, code) belongs to family id. A family
// may be declared many-to-one in either direction: the same code can link
// to a family that also claims a different code in another election
// (merge), and two codes within one election can both link to the same
// family as a different code did in a prior election (split), so long as
// FamilyId itself stays stable across the calls that describe one lineage.
type FamilyLink struct {
	Election ElectionId
	Code     PartyCode
	Family   FamilyId
}

// NewCatalog builds a read-only Catalog from base entries, per-election
// overrides, and family links. All three slices may be empty.
func NewCatalog(bases []BaseEntry, overrides []OverrideEntry, links []FamilyLink) *Catalog {
	base := make(map[PartyCode]baseRecord, len(bases))
	for _, b := range bases {
		base[b.Code] = baseRecord{DisplayName: b.DisplayName, Color: b.Color, Leader: b.Leader}
	}

	ov := make(map[overrideKey]baseRecord, len(overrides))
	for _, o := range overrides {
		ov[overrideKey{election: o.Election, code: o.Code}] = baseRecord{
			DisplayName: o.DisplayName, Color: o.Color, Leader: o.Leader,
		}
	}

	fu := newFamilyUnion()
	for _, l := range links {
		fu.union(familyMember{election: l.Election, code: l.Code}, l.Family)
	}

	return &Catalog{base: base, overrides: ov, families: fu}
}

// Info resolves (code, election) to a PartyInfo record. Resolution order:
//  1. per-election override, if present, overlaid on the base record;
//  2. base record keyed by code alone;
//  3. a synthesized default record carrying the code as its display name.
//
// Info never errors: every code, known or not, resolves to a record (the
// unknown-party case is the Synthesized=true case).
func (c *Catalog) Info(code PartyCode, election ElectionId) PartyInfo {
	rec, ok := c.overrides[overrideKey{election: election, code: code}]
	base, hasBase := c.base[code]
	if ok {
		rec = overlay(rec, base)
	} else {
		rec, ok = base, hasBase
	}
	if !ok {
		return PartyInfo{
			Code:        code,
			Election:    election,
			DisplayName: string(code),
			Color:       defaultColor,
			Synthesized: true,
		}
	}

	info := PartyInfo{Code: code, Election: election, DisplayName: rec.DisplayName, Color: rec.Color, Leader: rec.Leader}
	if info.Color == "" {
		info.Color = defaultColor
	}
	if info.DisplayName == "" {
		info.DisplayName = string(code)
	}
	return info
}

// overlay fills any blank field of an override record from the base
// record for the same code, so a partial override inherits whatever
// it doesn't itself specify.
func overlay(override, base baseRecord) baseRecord {
	if override.DisplayName == "" {
		override.DisplayName = base.DisplayName
	}
	if override.Color == "" {
		override.Color = base.Color
	}
	if override.Leader == "" {
		override.Leader = base.Leader
	}
	return override
}

// defaultColor is used when a resolved record carries no color, and for
// fully synthesized (unknown) records.
const defaultColor = "#6b7280"

// FamilyOf returns the family identifier for (code, election) if the code
// participates in a declared longitudinal family, and false otherwise.
func (c *Catalog) FamilyOf(code PartyCode, election ElectionId) (FamilyId, bool) {
	return c.families.find(familyMember{election: election, code: code})
}

// String renders a PartyInfo for diagnostics.
func (p PartyInfo) String() string {
	tag := ""
	if p.Synthesized {
		tag = " (synthesized)"
	}
	return fmt.Sprintf("%s/%s=%q%s", p.Election, p.Code, p.DisplayName, tag)
}
