package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/TechIfat/mlsecops-threat-model/internal/catalog"
)

var fixedTime = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func sampleCatalogs() (*catalog.ThreatCatalog, *catalog.ControlCatalog) {
	threats := &catalog.ThreatCatalog{
		Threats: []catalog.Threat{
			{
				ID: "T-001", Name: "Training Data Poisoning",
				Category: "Data Integrity", StrideCategory: "Tampering",
				Likelihood: "Medium", Impact: "High", RiskScore: 8.5,
				BusinessImpact: "$10M+ annual fraud losses",
				EstimatedCost:  "$500K",
				AttackScenarios: []string{
					"Attacker injects mislabeled transactions",
				},
			},
			{
				ID: "T-003", Name: "Model Extraction",
				Category: "Confidentiality", StrideCategory: "Information Disclosure",
				Likelihood: "Medium", Impact: "Medium", RiskScore: 6.5,
				BusinessImpact: "$2M competitive cost",
				EstimatedCost:  "$150K",
			},
		},
	}
	controls := &catalog.ControlCatalog{
		Controls: []catalog.Control{
			{
				ID: "SC-001", Name: "Data Validation Pipeline",
				Category: "Preventive", ImplementationStatus: "Partial",
				EffectivenessScore: 8.0, EstimatedCost: "$250K",
				ImplementationEffort: "3 months",
			},
			{
				ID: "SC-003", Name: "Enhanced API Monitoring",
				Category: "Detective", ImplementationStatus: "Planned",
				EffectivenessScore: 6.5, EstimatedCost: "$120K",
			},
		},
		ComplianceMapping: map[string]any{
			"gdpr": "Art. 32",
		},
	}
	return threats, controls
}

func TestBuildExecutiveSummary(t *testing.T) {
	threats, controls := sampleCatalogs()

	sum := BuildExecutiveSummary(threats, controls, fixedTime, zap.NewNop())

	if sum.ReportDate != "2026-08-29" {
		t.Errorf("report_date = %q", sum.ReportDate)
	}
	if sum.Summary.ThreatLandscape.TotalThreatsIdentified != 2 {
		t.Errorf("total threats = %d, want 2", sum.Summary.ThreatLandscape.TotalThreatsIdentified)
	}
	if sum.Summary.ThreatLandscape.HighRiskThreats != 1 {
		t.Errorf("high risk = %d, want 1", sum.Summary.ThreatLandscape.HighRiskThreats)
	}
	// $10M + $2M exposure.
	if sum.Summary.BusinessImpact.TotalRiskExposure != "$12,000,000" {
		t.Errorf("exposure = %q, want $12,000,000", sum.Summary.BusinessImpact.TotalRiskExposure)
	}
	// $250K + $120K investment.
	if sum.Summary.InvestmentRecommendation.TotalSecurityInvestment != "$370,000" {
		t.Errorf("investment = %q, want $370,000", sum.Summary.InvestmentRecommendation.TotalSecurityInvestment)
	}
	if sum.Summary.InvestmentRecommendation.ROICalculation != "$11,630,000 protected value" {
		t.Errorf("roi = %q", sum.Summary.InvestmentRecommendation.ROICalculation)
	}
}

func TestBuildTechnicalReport(t *testing.T) {
	threats, controls := sampleCatalogs()

	rep := BuildTechnicalReport(threats, controls, fixedTime, "run-1", zap.NewNop())

	ts := rep.ThreatAnalysis.ThreatSummary
	if ts.TotalThreats != 2 {
		t.Errorf("total_threats = %d, want 2", ts.TotalThreats)
	}
	if ts.ByRiskLevel.High != 1 || ts.ByRiskLevel.Medium != 1 || ts.ByRiskLevel.Low != 0 {
		t.Errorf("by_risk_level = %+v", ts.ByRiskLevel)
	}
	if ts.ByStride["Tampering"] != 1 {
		t.Errorf("by_stride = %v", ts.ByStride)
	}
	if ts.AverageRiskScore == nil || *ts.AverageRiskScore != 7.5 {
		t.Errorf("average_risk_score = %v, want 7.5", ts.AverageRiskScore)
	}

	if len(rep.ThreatAnalysis.RiskMatrix) != 2 {
		t.Errorf("risk matrix rows = %d, want 2", len(rep.ThreatAnalysis.RiskMatrix))
	}

	// Only T-001 has attack scenarios.
	if len(rep.ThreatAnalysis.AttackScenarios) != 1 {
		t.Fatalf("attack scenarios = %d, want 1", len(rep.ThreatAnalysis.AttackScenarios))
	}
	if rep.ThreatAnalysis.AttackScenarios[0].ThreatID != "T-001" {
		t.Errorf("scenario threat = %q", rep.ThreatAnalysis.AttackScenarios[0].ThreatID)
	}

	cs := rep.ControlAnalysis.ControlSummary
	if cs.TotalControls != 2 {
		t.Errorf("total_controls = %d, want 2", cs.TotalControls)
	}
	if cs.TotalInvestment != "$370,000" {
		t.Errorf("total_investment = %q", cs.TotalInvestment)
	}
	if cs.AverageEffectiveness == nil || *cs.AverageEffectiveness != 7.25 {
		t.Errorf("average_effectiveness = %v, want 7.25", cs.AverageEffectiveness)
	}

	roadmap := rep.ControlAnalysis.ImplementationRoadmap
	if len(roadmap) != 2 {
		t.Fatalf("roadmap entries = %d, want 2", len(roadmap))
	}
	if roadmap[0].Priority != "High" { // effectiveness 8.0 >= 7
		t.Errorf("SC-001 priority = %q, want High", roadmap[0].Priority)
	}
	if roadmap[1].Priority != "Medium" { // effectiveness 6.5 < 7
		t.Errorf("SC-003 priority = %q, want Medium", roadmap[1].Priority)
	}
	if roadmap[1].ImplementationEffort != "Unknown" {
		t.Errorf("missing effort should render Unknown, got %q", roadmap[1].ImplementationEffort)
	}

	if rep.ComplianceMapping["gdpr"] != "Art. 32" {
		t.Errorf("compliance_mapping = %v", rep.ComplianceMapping)
	}
}

func TestBuildValidationReport_SingleSpoofingThreat(t *testing.T) {
	threats := &catalog.ThreatCatalog{
		Threats: []catalog.Threat{
			{
				ID: "T1", Name: "X",
				Likelihood: "High", Impact: "High",
				BusinessImpact: "$10M+", RiskScore: 9,
				StrideCategory: "Spoofing",
				EstimatedCost:  "$500K",
			},
		},
	}

	rep := BuildValidationReport(threats, fixedTime, zap.NewNop())

	if rep.ThreatCoverage.TotalThreats != 1 {
		t.Errorf("total_threats = %d, want 1", rep.ThreatCoverage.TotalThreats)
	}
	if rep.RiskStatistics.HighRiskCount != 1 {
		t.Errorf("high_risk_count = %d, want 1", rep.RiskStatistics.HighRiskCount)
	}

	want := 100.0 / 6.0
	got := rep.ThreatCoverage.CoverageAnalysis.CoveragePercentage
	if diff := got - want; diff > 0.001 || diff < -0.001 {
		t.Errorf("coverage = %v, want %v", got, want)
	}

	// Only 1 of 6 STRIDE categories covered: FAILED with a category gap.
	if rep.ValidationStatus != "FAILED" {
		t.Errorf("status = %q, want FAILED", rep.ValidationStatus)
	}
	if len(rep.ThreatCoverage.Gaps) != 1 || rep.ThreatCoverage.Gaps[0].Type != "STRIDE Coverage Gap" {
		t.Errorf("gaps = %+v", rep.ThreatCoverage.Gaps)
	}

	if rep.RiskStatistics.TotalEstimatedCost != "$500,000" {
		t.Errorf("total_estimated_cost = %q", rep.RiskStatistics.TotalEstimatedCost)
	}
	if len(rep.HighPriorityThreats) != 1 || rep.HighPriorityThreats[0].ID != "T1" {
		t.Errorf("high_priority_threats = %+v", rep.HighPriorityThreats)
	}
}

func TestBuildValidationReport_EmptyCatalog(t *testing.T) {
	rep := BuildValidationReport(&catalog.ThreatCatalog{}, fixedTime, zap.NewNop())

	if rep.ThreatCoverage.CoverageAnalysis.CoveragePercentage != 0 {
		t.Errorf("coverage = %v, want 0", rep.ThreatCoverage.CoverageAnalysis.CoveragePercentage)
	}
	rs := rep.RiskStatistics
	if rs.HighRiskCount != 0 || rs.MediumRiskCount != 0 || rs.LowRiskCount != 0 {
		t.Errorf("risk counts = %+v, want all 0", rs)
	}
	if rs.AverageRiskScore != nil {
		t.Errorf("average of empty set = %v, want null", *rs.AverageRiskScore)
	}
}

func TestBuildValidationReport_MissingID(t *testing.T) {
	threats := &catalog.ThreatCatalog{
		Threats: []catalog.Threat{
			{
				Name: "No ID", Likelihood: "Low", Impact: "Low",
				BusinessImpact: "$1M", StrideCategory: "Tampering",
			},
		},
	}

	rep := BuildValidationReport(threats, fixedTime, zap.NewNop())

	if rep.ValidationStatus != "FAILED" {
		t.Fatalf("status = %q, want FAILED", rep.ValidationStatus)
	}

	found := false
	for _, g := range rep.ThreatCoverage.Gaps {
		for _, f := range g.MissingFields {
			if f == "id" {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected a gap naming the missing id, got %+v", rep.ThreatCoverage.Gaps)
	}
}

func TestAssemblerDeterminism(t *testing.T) {
	threats, controls := sampleCatalogs()

	marshal := func(v any) []byte {
		t.Helper()
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}

	a := marshal(BuildTechnicalReport(threats, controls, fixedTime, "run-1", zap.NewNop()))
	b := marshal(BuildTechnicalReport(threats, controls, fixedTime, "run-1", zap.NewNop()))
	if !bytes.Equal(a, b) {
		t.Error("technical report is not byte-identical across runs with pinned inputs")
	}

	c := marshal(BuildExecutiveSummary(threats, controls, fixedTime, zap.NewNop()))
	d := marshal(BuildExecutiveSummary(threats, controls, fixedTime, zap.NewNop()))
	if !bytes.Equal(c, d) {
		t.Error("executive summary is not byte-identical across runs with pinned inputs")
	}

	e := marshal(BuildValidationReport(threats, fixedTime, zap.NewNop()))
	f := marshal(BuildValidationReport(threats, fixedTime, zap.NewNop()))
	if !bytes.Equal(e, f) {
		t.Error("validation report is not byte-identical across runs with pinned inputs")
	}
}
