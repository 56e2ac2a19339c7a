// Package report assembles the analyzer and aggregator outputs, plus fixed
// narrative copy, into the executive, technical, and validation report
// shapes. Builders are pure: given the same catalogs, timestamp, and run ID
// they produce identical output; writing to disk is the caller's job.
package report

import "github.com/TechIfat/mlsecops-threat-model/internal/coverage"

// ExecutiveSummary is the business-facing report shape.
type ExecutiveSummary struct {
	ReportDate         string           `json:"report_date"`
	Summary            ExecutiveDetails `json:"executive_summary"`
	KeyRecommendations []string         `json:"key_recommendations"`
	NextSteps          []string         `json:"next_steps"`
}

type ExecutiveDetails struct {
	SystemOverview           string               `json:"system_overview"`
	ThreatLandscape          ThreatLandscape      `json:"threat_landscape"`
	BusinessImpact           BusinessImpact       `json:"business_impact"`
	InvestmentRecommendation InvestmentRec        `json:"investment_recommendation"`
	ComplianceStatus         map[string]string    `json:"compliance_status"`
}

type ThreatLandscape struct {
	TotalThreatsIdentified int      `json:"total_threats_identified"`
	HighRiskThreats        int      `json:"high_risk_threats"`
	CriticalAttackVectors  []string `json:"critical_attack_vectors"`
}

type BusinessImpact struct {
	TotalRiskExposure          string `json:"total_risk_exposure"`
	AnnualFraudLossesPotential string `json:"annual_fraud_losses_potential"`
	RegulatoryFineRisk         string `json:"regulatory_fine_risk"`
	ReputationalDamage         string `json:"reputational_damage"`
}

type InvestmentRec struct {
	TotalSecurityInvestment string `json:"total_security_investment"`
	ROICalculation          string `json:"roi_calculation"`
	PaybackPeriod           string `json:"payback_period"`
	Recommendation          string `json:"recommendation"`
}

// TechnicalReport is the engineering-facing report shape.
type TechnicalReport struct {
	Metadata          ReportMetadata        `json:"report_metadata"`
	ThreatAnalysis    ThreatAnalysis        `json:"threat_analysis"`
	ControlAnalysis   ControlAnalysis       `json:"control_analysis"`
	ComplianceMapping map[string]any        `json:"compliance_mapping"`
	Recommendations   []RecommendationGroup `json:"recommendations"`
}

type ReportMetadata struct {
	GeneratedDate  string   `json:"generated_date"`
	ReportVersion  string   `json:"report_version"`
	RunID          string   `json:"run_id"`
	Methodology    string   `json:"methodology"`
	FrameworksUsed []string `json:"frameworks_used"`
}

type ThreatAnalysis struct {
	ThreatSummary   ThreatSummary    `json:"threat_summary"`
	RiskMatrix      []RiskMatrixRow  `json:"risk_matrix"`
	AttackScenarios []AttackScenario `json:"attack_scenarios"`
	ThreatTrends    ThreatTrends     `json:"threat_trends"`
}

type ThreatSummary struct {
	TotalThreats     int            `json:"total_threats"`
	ByCategory       map[string]int `json:"by_category"`
	ByRiskLevel      RiskLevelCount `json:"by_risk_level"`
	ByStride         map[string]int `json:"by_stride"`
	AverageRiskScore *float64       `json:"average_risk_score"`
}

type RiskLevelCount struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type RiskMatrixRow struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Likelihood string  `json:"likelihood"`
	Impact     string  `json:"impact"`
	RiskScore  float64 `json:"risk_score"`
	Category   string  `json:"category"`
}

type AttackScenario struct {
	ThreatID       string   `json:"threat_id"`
	ThreatName     string   `json:"threat_name"`
	Scenarios      []string `json:"scenarios"`
	BusinessImpact string   `json:"business_impact"`
	Likelihood     string   `json:"likelihood"`
}

type ThreatTrends struct {
	EmergingThreats    []string           `json:"emerging_threats"`
	TrendAnalysis      map[string]string  `json:"trend_analysis"`
	IndustryBenchmarks IndustryBenchmarks `json:"industry_benchmarks"`
}

type IndustryBenchmarks struct {
	AvgMLSecurityMaturity string   `json:"avg_ml_security_maturity"`
	CommonVulnerabilities []string `json:"common_vulnerabilities"`
	RecommendedPractices  []string `json:"recommended_practices"`
}

type ControlAnalysis struct {
	ControlSummary        ControlSummary        `json:"control_summary"`
	ImplementationRoadmap []RoadmapEntry        `json:"implementation_roadmap"`
	EffectivenessAnalysis EffectivenessAnalysis `json:"effectiveness_analysis"`
	GapAnalysis           GapAnalysis           `json:"gap_analysis"`
}

type ControlSummary struct {
	TotalControls        int            `json:"total_controls"`
	ByCategory           map[string]int `json:"by_category"`
	ByStatus             map[string]int `json:"by_status"`
	TotalInvestment      string         `json:"total_investment"`
	AverageEffectiveness *float64       `json:"average_effectiveness"`
}

type RoadmapEntry struct {
	ControlID            string   `json:"control_id"`
	Name                 string   `json:"name"`
	Priority             string   `json:"priority"`
	ImplementationEffort string   `json:"implementation_effort"`
	EstimatedCost        string   `json:"estimated_cost"`
	Dependencies         []string `json:"dependencies"`
	Timeline             string   `json:"timeline"`
}

type EffectivenessAnalysis struct {
	EffectivenessMetrics map[string]int    `json:"effectiveness_metrics"`
	CoverageAnalysis     map[string]int    `json:"coverage_analysis"`
	CostEffectiveness    CostEffectiveness `json:"cost_effectiveness"`
}

type CostEffectiveness struct {
	HighValueControls   []string `json:"high_value_controls"`
	QuickWins           []string `json:"quick_wins"`
	LongTermInvestments []string `json:"long_term_investments"`
}

type GapAnalysis struct {
	SecurityGaps       []string `json:"security_gaps"`
	ProcessGaps        []string `json:"process_gaps"`
	TechnologyGaps     []string `json:"technology_gaps"`
	RecommendedActions []string `json:"recommended_actions"`
}

type RecommendationGroup struct {
	Category        string   `json:"category"`
	Recommendations []string `json:"recommendations"`
	Timeline        string   `json:"timeline"`
	Priority        string   `json:"priority"`
}

// ValidationReport is the shape written by `threatmodel validate`.
type ValidationReport struct {
	Timestamp           string               `json:"timestamp"`
	ThreatCoverage      ThreatCoverage       `json:"threat_coverage"`
	RiskStatistics      RiskStatistics       `json:"risk_statistics"`
	HighPriorityThreats []HighPriorityThreat `json:"high_priority_threats"`
	ValidationStatus    string               `json:"validation_status"`
	Recommendations     []string             `json:"recommendations"`
}

type ThreatCoverage struct {
	TotalThreats     int              `json:"total_threats"`
	CoverageAnalysis CoverageAnalysis `json:"coverage_analysis"`
	Gaps             []coverage.Gap   `json:"gaps"`
}

type CoverageAnalysis struct {
	CoveredStrideCategories []string `json:"covered_stride_categories"`
	CoveragePercentage      float64  `json:"coverage_percentage"`
}

type RiskStatistics struct {
	HighRiskCount      int      `json:"high_risk_count"`
	MediumRiskCount    int      `json:"medium_risk_count"`
	LowRiskCount       int      `json:"low_risk_count"`
	TotalEstimatedCost string   `json:"total_estimated_cost"`
	AverageRiskScore   *float64 `json:"average_risk_score"`
}

type HighPriorityThreat struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RiskScore     float64 `json:"risk_score"`
	EstimatedCost string  `json:"estimated_cost"`
}
