// File: io.go
// Role: minimal JSON-file I/O for the CLI. This is deliberately NOT a
// collab.BallotParser implementation: CSV parsing, encoding discovery,
// and HTTP scraping remain out-of-scope external collaborators. These
// helpers only let auditctl exercise the core packages end-to-end
// against a simple, already-structured JSON rendering of the same
// rows, the shape a real collaborator would ultimately hand back.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/catalog"
)

// ballotRowJSON mirrors ballot.RawRow for JSON decoding.
type ballotRowJSON struct {
	SettlementCode int            `json:"settlement_code"`
	SettlementName string         `json:"settlement_name"`
	PrecinctNumber string         `json:"precinct_number"`
	Eligible       int            `json:"eligible"`
	Voted          int            `json:"voted"`
	Invalid        int            `json:"invalid"`
	Valid          int            `json:"valid"`
	Votes          map[string]int `json:"votes"`
}

func loadBallotRows(path string) ([]ballot.RawRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw []ballotRowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rows := make([]ballot.RawRow, len(raw))
	for i, r := range raw {
		votes := make(map[catalog.PartyCode]int, len(r.Votes))
		for code, v := range r.Votes {
			votes[catalog.PartyCode(code)] = v
		}
		rows[i] = ballot.RawRow{
			SettlementCode: r.SettlementCode,
			SettlementName: r.SettlementName,
			PrecinctNumber: r.PrecinctNumber,
			Eligible:       r.Eligible,
			Voted:          r.Voted,
			Invalid:        r.Invalid,
			Valid:          r.Valid,
			Votes:          votes,
		}
	}
	return rows, nil
}

// catalogFileJSON mirrors the three NewCatalog input slices for a single
// JSON config file.
type catalogFileJSON struct {
	Bases []struct {
		Code        string `json:"code"`
		DisplayName string `json:"display_name"`
		Color       string `json:"color"`
		Leader      string `json:"leader"`
	} `json:"bases"`
	Overrides []struct {
		Election    string `json:"election"`
		Code        string `json:"code"`
		DisplayName string `json:"display_name"`
		Color       string `json:"color"`
		Leader      string `json:"leader"`
	} `json:"overrides"`
	Links []struct {
		Election string `json:"election"`
		Code     string `json:"code"`
		Family   string `json:"family"`
	} `json:"family_links"`
}

// loadCatalog builds a Catalog from path, or returns an empty Catalog
// when path is empty (no family-merge declarations available).
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.NewCatalog(nil, nil, nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cf catalogFileJSON
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	bases := make([]catalog.BaseEntry, len(cf.Bases))
	for i, b := range cf.Bases {
		bases[i] = catalog.BaseEntry{Code: catalog.PartyCode(b.Code), DisplayName: b.DisplayName, Color: b.Color, Leader: b.Leader}
	}
	overrides := make([]catalog.OverrideEntry, len(cf.Overrides))
	for i, o := range cf.Overrides {
		overrides[i] = catalog.OverrideEntry{
			Election: catalog.ElectionId(o.Election), Code: catalog.PartyCode(o.Code),
			DisplayName: o.DisplayName, Color: o.Color, Leader: o.Leader,
		}
	}
	links := make([]catalog.FamilyLink, len(cf.Links))
	for i, l := range cf.Links {
		links[i] = catalog.FamilyLink{Election: catalog.ElectionId(l.Election), Code: catalog.PartyCode(l.Code), Family: catalog.FamilyId(l.Family)}
	}

	return catalog.NewCatalog(bases, overrides, links), nil
}

func splitColumns(s string) []catalog.PartyCode {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]catalog.PartyCode, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, catalog.PartyCode(p))
		}
	}
	return out
}
