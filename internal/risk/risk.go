// Package risk buckets threats into risk tiers and computes the descriptive
// statistics used by the reports. All functions are pure over the loaded
// catalog contents.
package risk

import (
	"go.uber.org/zap"

	"github.com/TechIfat/mlsecops-threat-model/internal/catalog"
	"github.com/TechIfat/mlsecops-threat-model/internal/finance"
)

// Tier thresholds on the 0-10 risk score. A score of exactly 7 is high.
const (
	HighThreshold   = 7
	MediumThreshold = 4
)

// Tally holds the per-tier partition of a threat list.
type Tally struct {
	High   []catalog.Threat
	Medium []catalog.Threat
	Low    []catalog.Threat
}

// ByTier partitions threats into high (score >= 7), medium (4 <= score < 7)
// and low (score < 4) tiers.
func ByTier(threats []catalog.Threat) Tally {
	var t Tally
	for _, th := range threats {
		switch {
		case th.RiskScore >= HighThreshold:
			t.High = append(t.High, th)
		case th.RiskScore >= MediumThreshold:
			t.Medium = append(t.Medium, th)
		default:
			t.Low = append(t.Low, th)
		}
	}
	return t
}

// MeanRiskScore returns the arithmetic mean of risk scores, or nil for an
// empty list. nil serializes as JSON null, which is this tool's documented
// policy for the mean of an empty set.
func MeanRiskScore(threats []catalog.Threat) *float64 {
	if len(threats) == 0 {
		return nil
	}
	var sum float64
	for _, t := range threats {
		sum += t.RiskScore
	}
	m := sum / float64(len(threats))
	return &m
}

// MeanEffectiveness returns the mean control effectiveness score, or nil for
// an empty list.
func MeanEffectiveness(controls []catalog.Control) *float64 {
	if len(controls) == 0 {
		return nil
	}
	var sum float64
	for _, c := range controls {
		sum += c.EffectivenessScore
	}
	m := sum / float64(len(controls))
	return &m
}

// TotalThreatCost sums the parseable "$<n>K" estimated_cost strings across
// threats, in dollars.
func TotalThreatCost(threats []catalog.Threat, log *zap.Logger) int64 {
	values := make([]string, len(threats))
	for i, t := range threats {
		values[i] = t.EstimatedCost
	}
	total, _ := finance.SumCostsK(values, log)
	return total
}

// TotalControlInvestment sums the parseable "$<n>K" estimated_cost strings
// across controls, in dollars.
func TotalControlInvestment(controls []catalog.Control, log *zap.Logger) int64 {
	values := make([]string, len(controls))
	for i, c := range controls {
		values[i] = c.EstimatedCost
	}
	total, _ := finance.SumCostsK(values, log)
	return total
}

// TotalBusinessExposure sums the parseable "$<n>M" business_impact figures
// across threats, in dollars.
func TotalBusinessExposure(threats []catalog.Threat, log *zap.Logger) int64 {
	values := make([]string, len(threats))
	for i, t := range threats {
		values[i] = t.BusinessImpact
	}
	total, _ := finance.SumImpactsM(values, log)
	return total
}

// CountByCategory tallies threats per category label.
func CountByCategory(threats []catalog.Threat) map[string]int {
	counts := make(map[string]int)
	for _, t := range threats {
		counts[t.Category]++
	}
	return counts
}

// CountByStride tallies threats per stride_category label, recognized or not.
func CountByStride(threats []catalog.Threat) map[string]int {
	counts := make(map[string]int)
	for _, t := range threats {
		counts[t.StrideCategory]++
	}
	return counts
}

// CountControlsByCategory tallies controls per category label.
func CountControlsByCategory(controls []catalog.Control) map[string]int {
	counts := make(map[string]int)
	for _, c := range controls {
		counts[c.Category]++
	}
	return counts
}

// CountControlsByStatus tallies controls per implementation status.
func CountControlsByStatus(controls []catalog.Control) map[string]int {
	counts := make(map[string]int)
	for _, c := range controls {
		counts[c.ImplementationStatus]++
	}
	return counts
}
