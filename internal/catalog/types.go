package catalog

// Threat is a single entry in the threat catalog. Entries are authored by
// hand in threats.yaml; this tool treats them as read-only input and never
// writes them back.
type Threat struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	Category           string   `yaml:"category"`
	StrideCategory     string   `yaml:"stride_category"`
	Likelihood         string   `yaml:"likelihood"` // "Low", "Medium", "High"
	Impact             string   `yaml:"impact"`
	RiskScore          float64  `yaml:"risk_score"` // 0-10
	BusinessImpact     string   `yaml:"business_impact"`
	EstimatedCost      string   `yaml:"estimated_cost"` // e.g. "$500K"
	CurrentControls    string   `yaml:"current_controls"`
	AttackScenarios    []string `yaml:"attack_scenarios"`
	Description        string   `yaml:"description"`
	AffectedComponents []string `yaml:"affected_components"`
	DetectionMethods   []string `yaml:"detection_methods"`
}

// Control is a single entry in the security controls catalog.
type Control struct {
	ID                   string   `yaml:"id"`
	Name                 string   `yaml:"name"`
	Category             string   `yaml:"category"` // "Preventive", "Detective", ...
	ImplementationStatus string   `yaml:"implementation_status"`
	EffectivenessScore   float64  `yaml:"effectiveness_score"` // 0-10
	EstimatedCost        string   `yaml:"estimated_cost"`
	ImplementationEffort string   `yaml:"implementation_effort"`
	Dependencies         []string `yaml:"dependencies"`
	Description          string   `yaml:"description"`
	CoveredThreats       []string `yaml:"covered_threats"`
}

// ThreatCatalog is the top-level structure of threats.yaml.
type ThreatCatalog struct {
	Metadata map[string]any `yaml:"metadata"`
	Threats  []Threat       `yaml:"threats"`
}

// ControlCatalog is the top-level structure of controls.yaml. The
// compliance_mapping block is free-form and passed through to reports
// verbatim, so it stays untyped.
type ControlCatalog struct {
	Metadata          map[string]any `yaml:"metadata"`
	Controls          []Control      `yaml:"security_controls"`
	ComplianceMapping map[string]any `yaml:"compliance_mapping"`
}

// ControlName returns the catalog name for a control ID, or the ID itself
// when the catalog has no entry for it.
func (c *ControlCatalog) ControlName(id string) string {
	for _, ctrl := range c.Controls {
		if ctrl.ID == id {
			return ctrl.Name
		}
	}
	return id
}
