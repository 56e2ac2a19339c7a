// Package coverage validates the threat catalog for structural completeness
// and STRIDE-taxonomy coverage.
package coverage

import (
	"fmt"

	"github.com/TechIfat/mlsecops-threat-model/internal/catalog"
)

// StrideCategories is the fixed six-category STRIDE taxonomy every threat
// model is expected to cover.
var StrideCategories = []string{
	"Spoofing",
	"Tampering",
	"Repudiation",
	"Information Disclosure",
	"Denial of Service",
	"Elevation of Privilege",
}

// requiredFields are the threat attributes that must be present (non-empty)
// for a catalog entry to be considered documented.
var requiredFields = []struct {
	name  string
	value func(catalog.Threat) string
}{
	{"id", func(t catalog.Threat) string { return t.ID }},
	{"name", func(t catalog.Threat) string { return t.Name }},
	{"likelihood", func(t catalog.Threat) string { return t.Likelihood }},
	{"impact", func(t catalog.Threat) string { return t.Impact }},
	{"business_impact", func(t catalog.Threat) string { return t.BusinessImpact }},
}

// Gap is a single validation finding. Field gaps carry ThreatID and
// MissingFields; the aggregate STRIDE gap carries Type and MissingCategories.
type Gap struct {
	ThreatID          string   `json:"threat_id,omitempty"`
	MissingFields     []string `json:"missing_fields,omitempty"`
	Type              string   `json:"type,omitempty"`
	MissingCategories []string `json:"missing_categories,omitempty"`
}

// Result holds the coverage analysis for one threat catalog.
type Result struct {
	TotalThreats       int      `json:"total_threats"`
	CoveredCategories  []string `json:"covered_stride_categories"`
	CoveragePercentage float64  `json:"coverage_percentage"`
	Gaps               []Gap    `json:"gaps"`
}

// Passed reports whether validation found no gaps. A single threat with a
// missing field, or one uncovered STRIDE category, fails the whole catalog;
// there is no partial credit.
func (r *Result) Passed() bool {
	return len(r.Gaps) == 0
}

// Status renders the pass/fail verdict for reports.
func (r *Result) Status() string {
	if r.Passed() {
		return "PASSED"
	}
	return "FAILED"
}

// Analyze checks every threat for the required field set and the catalog as a
// whole for STRIDE coverage. Unrecognized stride_category labels do not count
// toward coverage.
func Analyze(threats []catalog.Threat) *Result {
	res := &Result{
		TotalThreats:      len(threats),
		CoveredCategories: []string{},
		Gaps:              []Gap{},
	}

	valid := make(map[string]bool, len(StrideCategories))
	for _, c := range StrideCategories {
		valid[c] = true
	}

	covered := make(map[string]bool)
	for _, t := range threats {
		if valid[t.StrideCategory] {
			covered[t.StrideCategory] = true
		}

		var missing []string
		for _, f := range requiredFields {
			if f.value(t) == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			id := t.ID
			if id == "" {
				id = "Unknown"
			}
			res.Gaps = append(res.Gaps, Gap{ThreatID: id, MissingFields: missing})
		}
	}

	var uncovered []string
	for _, c := range StrideCategories {
		if covered[c] {
			res.CoveredCategories = append(res.CoveredCategories, c)
		} else {
			uncovered = append(uncovered, c)
		}
	}
	if len(uncovered) > 0 {
		res.Gaps = append(res.Gaps, Gap{
			Type:              "STRIDE Coverage Gap",
			MissingCategories: uncovered,
		})
	}

	res.CoveragePercentage = float64(len(covered)) / float64(len(StrideCategories)) * 100

	return res
}

// Recommendations derives the short advice list shown in the validation
// report from the analysis outcome and the high-risk threat count.
func Recommendations(res *Result, highRiskCount int) []string {
	var recs []string
	if !res.Passed() {
		recs = append(recs, "Address identified gaps in threat coverage and documentation")
	}
	if highRiskCount > 0 {
		recs = append(recs, fmt.Sprintf("Prioritize implementation of controls for %d high-risk threats", highRiskCount))
	}
	if res.CoveragePercentage < 100 {
		recs = append(recs, "Expand threat model to cover all STRIDE categories")
	}
	return recs
}
