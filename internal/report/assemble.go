package report

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/TechIfat/mlsecops-threat-model/internal/catalog"
	"github.com/TechIfat/mlsecops-threat-model/internal/coverage"
	"github.com/TechIfat/mlsecops-threat-model/internal/finance"
	"github.com/TechIfat/mlsecops-threat-model/internal/risk"
)

// BuildExecutiveSummary composes the business-facing summary from the
// catalogs. Dollar exposure comes from the "$<n>M" business-impact figures,
// investment from the controls' "$<n>K" cost strings; everything else is
// fixed narrative copy.
func BuildExecutiveSummary(threats *catalog.ThreatCatalog, controls *catalog.ControlCatalog, now time.Time, log *zap.Logger) *ExecutiveSummary {
	tally := risk.ByTier(threats.Threats)
	exposure := risk.TotalBusinessExposure(threats.Threats, log)
	investment := risk.TotalControlInvestment(controls.Controls, log)

	return &ExecutiveSummary{
		ReportDate: now.Format("2006-01-02"),
		Summary: ExecutiveDetails{
			SystemOverview: "ML-based fraud detection system processing real-time credit card transactions",
			ThreatLandscape: ThreatLandscape{
				TotalThreatsIdentified: len(threats.Threats),
				HighRiskThreats:        len(tally.High),
				CriticalAttackVectors:  criticalAttackVectors,
			},
			BusinessImpact: BusinessImpact{
				TotalRiskExposure:          finance.FormatUSD(exposure),
				AnnualFraudLossesPotential: "$10M+",
				RegulatoryFineRisk:         "$50M+",
				ReputationalDamage:         "High",
			},
			InvestmentRecommendation: InvestmentRec{
				TotalSecurityInvestment: finance.FormatUSD(investment),
				ROICalculation:          fmt.Sprintf("%s protected value", finance.FormatUSD(exposure-investment)),
				PaybackPeriod:           "6-12 months",
				Recommendation:          "APPROVE - Critical security investment with positive ROI",
			},
			ComplianceStatus: complianceStatus,
		},
		KeyRecommendations: keyRecommendations,
		NextSteps:          nextSteps,
	}
}

// BuildTechnicalReport composes the engineering-facing report: computed
// tallies and per-record breakdowns, the controls catalog's compliance
// mapping passed through verbatim, and the static trend/gap sections.
func BuildTechnicalReport(threats *catalog.ThreatCatalog, controls *catalog.ControlCatalog, now time.Time, runID string, log *zap.Logger) *TechnicalReport {
	tally := risk.ByTier(threats.Threats)

	matrix := make([]RiskMatrixRow, 0, len(threats.Threats))
	for _, t := range threats.Threats {
		matrix = append(matrix, RiskMatrixRow{
			ID:         t.ID,
			Name:       t.Name,
			Likelihood: t.Likelihood,
			Impact:     t.Impact,
			RiskScore:  t.RiskScore,
			Category:   t.Category,
		})
	}

	scenarios := []AttackScenario{}
	for _, t := range threats.Threats {
		if len(t.AttackScenarios) == 0 {
			continue
		}
		scenarios = append(scenarios, AttackScenario{
			ThreatID:       t.ID,
			ThreatName:     t.Name,
			Scenarios:      t.AttackScenarios,
			BusinessImpact: t.BusinessImpact,
			Likelihood:     t.Likelihood,
		})
	}

	roadmap := make([]RoadmapEntry, 0, len(controls.Controls))
	for _, c := range controls.Controls {
		priority := "Medium"
		if c.EffectivenessScore >= 7 {
			priority = "High"
		}
		deps := c.Dependencies
		if deps == nil {
			deps = []string{}
		}
		roadmap = append(roadmap, RoadmapEntry{
			ControlID:            c.ID,
			Name:                 c.Name,
			Priority:             priority,
			ImplementationEffort: orUnknown(c.ImplementationEffort),
			EstimatedCost:        orUnknown(c.EstimatedCost),
			Dependencies:         deps,
			Timeline:             orUnknown(c.ImplementationEffort),
		})
	}

	mapping := controls.ComplianceMapping
	if mapping == nil {
		mapping = map[string]any{}
	}

	return &TechnicalReport{
		Metadata: ReportMetadata{
			GeneratedDate:  now.Format(time.RFC3339),
			ReportVersion:  "1.0",
			RunID:          runID,
			Methodology:    "STRIDE with ML-specific extensions",
			FrameworksUsed: []string{"OWASP Top 10 ML", "MITRE ATT&CK", "NIST AI RMF"},
		},
		ThreatAnalysis: ThreatAnalysis{
			ThreatSummary: ThreatSummary{
				TotalThreats: len(threats.Threats),
				ByCategory:   risk.CountByCategory(threats.Threats),
				ByRiskLevel: RiskLevelCount{
					High:   len(tally.High),
					Medium: len(tally.Medium),
					Low:    len(tally.Low),
				},
				ByStride:         risk.CountByStride(threats.Threats),
				AverageRiskScore: risk.MeanRiskScore(threats.Threats),
			},
			RiskMatrix:      matrix,
			AttackScenarios: scenarios,
			ThreatTrends:    threatTrends,
		},
		ControlAnalysis: ControlAnalysis{
			ControlSummary: ControlSummary{
				TotalControls:        len(controls.Controls),
				ByCategory:           risk.CountControlsByCategory(controls.Controls),
				ByStatus:             risk.CountControlsByStatus(controls.Controls),
				TotalInvestment:      finance.FormatUSD(risk.TotalControlInvestment(controls.Controls, log)),
				AverageEffectiveness: risk.MeanEffectiveness(controls.Controls),
			},
			ImplementationRoadmap: roadmap,
			EffectivenessAnalysis: effectivenessAnalysis,
			GapAnalysis:           gapAnalysis,
		},
		ComplianceMapping: mapping,
		Recommendations:   technicalRecommendations,
	}
}

// BuildValidationReport runs the coverage analyzer and risk aggregator over
// the threat catalog and composes the validation verdict.
func BuildValidationReport(threats *catalog.ThreatCatalog, now time.Time, log *zap.Logger) *ValidationReport {
	cov := coverage.Analyze(threats.Threats)
	tally := risk.ByTier(threats.Threats)

	high := make([]HighPriorityThreat, 0, len(tally.High))
	for _, t := range tally.High {
		high = append(high, HighPriorityThreat{
			ID:            t.ID,
			Name:          t.Name,
			RiskScore:     t.RiskScore,
			EstimatedCost: t.EstimatedCost,
		})
	}

	recs := coverage.Recommendations(cov, len(tally.High))
	if recs == nil {
		recs = []string{}
	}

	return &ValidationReport{
		Timestamp: now.Format(time.RFC3339),
		ThreatCoverage: ThreatCoverage{
			TotalThreats: cov.TotalThreats,
			CoverageAnalysis: CoverageAnalysis{
				CoveredStrideCategories: cov.CoveredCategories,
				CoveragePercentage:      cov.CoveragePercentage,
			},
			Gaps: cov.Gaps,
		},
		RiskStatistics: RiskStatistics{
			HighRiskCount:      len(tally.High),
			MediumRiskCount:    len(tally.Medium),
			LowRiskCount:       len(tally.Low),
			TotalEstimatedCost: finance.FormatUSD(risk.TotalThreatCost(threats.Threats, log)),
			AverageRiskScore:   risk.MeanRiskScore(threats.Threats),
		},
		HighPriorityThreats: high,
		ValidationStatus:    cov.Status(),
		Recommendations:     recs,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
