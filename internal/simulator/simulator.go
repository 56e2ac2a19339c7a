// Package simulator generates pseudo control-effectiveness results from fixed
// uniform distributions.
//
// This is a mock. No model, API, or pipeline is exercised: every detection
// rate, attack success rate, and response time is drawn from a hardcoded
// random range at report time. It stands in for real instrumentation until
// genuine model-querying and attack-execution harnesses replace it, and its
// output must not be read as a measurement of anything.
package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/TechIfat/mlsecops-threat-model/internal/catalog"
)

// Posture labels for the aggregate security score.
const (
	PostureStrong   = "STRONG"
	PostureModerate = "MODERATE"
	PostureWeak     = "WEAK"
)

// ScenarioResult is one simulated test case within a suite.
type ScenarioResult struct {
	Scenario      string  `json:"scenario"`
	Severity      string  `json:"severity,omitempty"`
	DetectionRate float64 `json:"detection_rate,omitempty"`
	FalsePositive float64 `json:"false_positive_rate,omitempty"`
	SuccessRate   float64 `json:"attack_success_rate,omitempty"`
	ModelAccuracy float64 `json:"model_accuracy_under_attack,omitempty"`
	Robustness    float64 `json:"robustness_score,omitempty"`
	ResponseTime  float64 `json:"response_time_seconds,omitempty"`
	Status        string  `json:"status"`
}

// SuiteResult is one control's simulated test suite.
type SuiteResult struct {
	ControlID       string           `json:"control_id"`
	ControlName     string           `json:"control_name"`
	TestTimestamp   string           `json:"test_timestamp"`
	Scenarios       []ScenarioResult `json:"scenarios"`
	OverallScore    float64          `json:"overall_score"`
	Recommendations []string         `json:"recommendations"`
}

// Passed reports whether every scenario in the suite passed. A suite with no
// scenario results is neither passed nor failed; see Summary.UnknownSuites.
func (s *SuiteResult) Passed() bool {
	if len(s.Scenarios) == 0 {
		return false
	}
	for _, sc := range s.Scenarios {
		if sc.Status != "PASSED" {
			return false
		}
	}
	return true
}

// Failed reports whether any scenario in the suite failed.
func (s *SuiteResult) Failed() bool {
	for _, sc := range s.Scenarios {
		if sc.Status == "FAILED" {
			return true
		}
	}
	return false
}

// Summary aggregates the per-suite scores into one posture.
type Summary struct {
	DataValidationEffectiveness float64 `json:"data_validation_effectiveness"`
	AdversarialRobustness       float64 `json:"adversarial_robustness"`
	APIMonitoringAccuracy       float64 `json:"api_monitoring_accuracy"`
	OverallSecurityScore        float64 `json:"overall_security_score"`
	TotalTestsRun               int     `json:"total_tests_run"`
	PassedTests                 int     `json:"passed_tests"`
	FailedTests                 int     `json:"failed_tests"`
	UnknownTests                int     `json:"unknown_tests"`
}

// Results is the full output of one simulator run.
type Results struct {
	TestSuiteTimestamp      string        `json:"test_suite_timestamp"`
	TestResults             []SuiteResult `json:"test_results"`
	Summary                 Summary       `json:"summary"`
	OverallSecurityPosture  string        `json:"overall_security_posture"`
	CriticalRecommendations []string      `json:"critical_recommendations"`
}

// Tester runs the simulated control-effectiveness suites. The random source
// is injected so tests and the --seed flag can pin a deterministic stream.
type Tester struct {
	controls *catalog.ControlCatalog
	rng      *rand.Rand
	log      *zap.Logger
	now      time.Time
}

// New returns a Tester over the given controls catalog.
func New(controls *catalog.ControlCatalog, rng *rand.Rand, now time.Time, log *zap.Logger) *Tester {
	return &Tester{controls: controls, rng: rng, log: log, now: now}
}

func (t *Tester) uniform(lo, hi float64) float64 {
	return lo + t.rng.Float64()*(hi-lo)
}

// TestDataValidation simulates malicious data injection against the data
// validation pipeline (SC-001). Detection rates are drawn from U[0.7,0.95];
// a case passes when its detection rate exceeds 0.8.
func (t *Tester) TestDataValidation() SuiteResult {
	t.log.Info("testing data validation pipeline")

	cases := []struct{ name, severity string }{
		{"statistical_anomaly", "high"},
		{"label_manipulation", "medium"},
		{"feature_poisoning", "high"},
		{"outlier_injection", "low"},
	}

	suite := t.newSuite("SC-001")
	var sum float64
	for _, c := range cases {
		detection := t.uniform(0.7, 0.95)
		falsePositive := t.uniform(0.02, 0.08)

		status := "FAILED"
		if detection > 0.8 {
			status = "PASSED"
		} else {
			suite.Recommendations = append(suite.Recommendations,
				fmt.Sprintf("Improve detection for %s attacks", c.name))
		}

		suite.Scenarios = append(suite.Scenarios, ScenarioResult{
			Scenario:      c.name,
			Severity:      c.severity,
			DetectionRate: detection,
			FalsePositive: falsePositive,
			Status:        status,
		})
		sum += detection
	}
	suite.OverallScore = sum / float64(len(cases))
	return suite
}

// TestAdversarialRobustness simulates gradient-based evasion attacks against
// adversarially trained models (SC-002). An attack with success rate below
// 0.3 counts as withstood.
func (t *Tester) TestAdversarialRobustness() SuiteResult {
	t.log.Info("testing adversarial robustness")

	attacks := []string{"FGSM", "PGD", "C&W", "DeepFool"}

	suite := t.newSuite("SC-002")
	var sum float64
	for _, attack := range attacks {
		success := t.uniform(0.1, 0.4)
		accuracy := t.uniform(0.85, 0.95)
		robustness := 1 - success

		status := "FAILED"
		if success < 0.3 {
			status = "PASSED"
		} else {
			suite.Recommendations = append(suite.Recommendations,
				fmt.Sprintf("Improve robustness against %s attacks", attack))
		}

		suite.Scenarios = append(suite.Scenarios, ScenarioResult{
			Scenario:      attack,
			SuccessRate:   success,
			ModelAccuracy: accuracy,
			Robustness:    robustness,
			Status:        status,
		})
		sum += robustness
	}
	suite.OverallScore = sum / float64(len(attacks))
	return suite
}

// TestAPIMonitoring simulates API abuse scenarios against the monitoring and
// rate-limiting control (SC-003). Detection probability above 0.7 passes.
func (t *Tester) TestAPIMonitoring() SuiteResult {
	t.log.Info("testing API monitoring")

	scenarios := []string{
		"rate_limit_exceeded",
		"systematic_probing",
		"model_extraction",
		"unusual_timing",
	}

	suite := t.newSuite("SC-003")
	var sum float64
	for _, name := range scenarios {
		probability := t.uniform(0.6, 0.9)
		responseTime := t.uniform(0.1, 2.0)

		status := "FAILED"
		if probability > 0.7 {
			status = "PASSED"
		} else {
			suite.Recommendations = append(suite.Recommendations,
				fmt.Sprintf("Improve detection for %s scenarios", name))
		}

		suite.Scenarios = append(suite.Scenarios, ScenarioResult{
			Scenario:      name,
			DetectionRate: probability,
			ResponseTime:  responseTime,
			Status:        status,
		})
		sum += probability
	}
	suite.OverallScore = sum / float64(len(scenarios))
	return suite
}

// RunAll runs every suite and aggregates the posture. A suite counts as
// passed only when all of its scenarios passed, as failed when any failed,
// and as unknown when it produced no scenario results at all.
func (t *Tester) RunAll() *Results {
	t.log.Info("running security control test suites")

	suites := []SuiteResult{
		t.TestDataValidation(),
		t.TestAdversarialRobustness(),
		t.TestAPIMonitoring(),
	}

	var scoreSum float64
	summary := Summary{TotalTestsRun: len(suites)}
	for _, s := range suites {
		scoreSum += s.OverallScore
		switch {
		case s.Failed():
			summary.FailedTests++
		case s.Passed():
			summary.PassedTests++
		default:
			summary.UnknownTests++
		}
	}
	overall := scoreSum / float64(len(suites))

	summary.DataValidationEffectiveness = suites[0].OverallScore
	summary.AdversarialRobustness = suites[1].OverallScore
	summary.APIMonitoringAccuracy = suites[2].OverallScore
	summary.OverallSecurityScore = overall

	posture := PostureWeak
	switch {
	case overall >= 0.8:
		posture = PostureStrong
	case overall >= 0.6:
		posture = PostureModerate
	}

	// Dedup recommendations keeping first-seen order, so identical random
	// streams give identical output.
	seen := make(map[string]bool)
	critical := []string{}
	for _, s := range suites {
		for _, rec := range s.Recommendations {
			if seen[rec] {
				continue
			}
			seen[rec] = true
			critical = append(critical, rec)
		}
	}

	return &Results{
		TestSuiteTimestamp:      t.now.Format(time.RFC3339),
		TestResults:             suites,
		Summary:                 summary,
		OverallSecurityPosture:  posture,
		CriticalRecommendations: critical,
	}
}

func (t *Tester) newSuite(controlID string) SuiteResult {
	return SuiteResult{
		ControlID:       controlID,
		ControlName:     t.controls.ControlName(controlID),
		TestTimestamp:   t.now.Format(time.RFC3339),
		Scenarios:       []ScenarioResult{},
		Recommendations: []string{},
	}
}
