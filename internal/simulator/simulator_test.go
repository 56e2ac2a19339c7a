package simulator

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/TechIfat/mlsecops-threat-model/internal/catalog"
)

var fixedTime = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func newTester(seed int64) *Tester {
	controls := &catalog.ControlCatalog{
		Controls: []catalog.Control{
			{ID: "SC-001", Name: "Data Validation Pipeline"},
			{ID: "SC-002", Name: "Adversarial Training"},
			{ID: "SC-003", Name: "Enhanced API Monitoring"},
		},
	}
	return New(controls, rand.New(rand.NewSource(seed)), fixedTime, zap.NewNop())
}

func TestTestDataValidation(t *testing.T) {
	suite := newTester(1).TestDataValidation()

	if suite.ControlID != "SC-001" {
		t.Errorf("control_id = %q", suite.ControlID)
	}
	if suite.ControlName != "Data Validation Pipeline" {
		t.Errorf("control_name = %q", suite.ControlName)
	}
	if len(suite.Scenarios) != 4 {
		t.Fatalf("scenarios = %d, want 4", len(suite.Scenarios))
	}

	var sum float64
	for _, sc := range suite.Scenarios {
		if sc.DetectionRate < 0.7 || sc.DetectionRate > 0.95 {
			t.Errorf("%s: detection %v outside [0.7,0.95]", sc.Scenario, sc.DetectionRate)
		}
		if sc.FalsePositive < 0.02 || sc.FalsePositive > 0.08 {
			t.Errorf("%s: false positive %v outside [0.02,0.08]", sc.Scenario, sc.FalsePositive)
		}
		wantStatus := "FAILED"
		if sc.DetectionRate > 0.8 {
			wantStatus = "PASSED"
		}
		if sc.Status != wantStatus {
			t.Errorf("%s: status %q for detection %v", sc.Scenario, sc.Status, sc.DetectionRate)
		}
		sum += sc.DetectionRate
	}

	if diff := suite.OverallScore - sum/4; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("overall = %v, want mean detection %v", suite.OverallScore, sum/4)
	}

	// One recommendation per failed scenario.
	failed := 0
	for _, sc := range suite.Scenarios {
		if sc.Status == "FAILED" {
			failed++
		}
	}
	if len(suite.Recommendations) != failed {
		t.Errorf("recommendations = %d, want %d", len(suite.Recommendations), failed)
	}
}

func TestTestAdversarialRobustness(t *testing.T) {
	suite := newTester(2).TestAdversarialRobustness()

	if suite.ControlID != "SC-002" {
		t.Errorf("control_id = %q", suite.ControlID)
	}
	if len(suite.Scenarios) != 4 {
		t.Fatalf("scenarios = %d, want 4", len(suite.Scenarios))
	}

	for _, sc := range suite.Scenarios {
		if sc.SuccessRate < 0.1 || sc.SuccessRate > 0.4 {
			t.Errorf("%s: success rate %v outside [0.1,0.4]", sc.Scenario, sc.SuccessRate)
		}
		if sc.ModelAccuracy < 0.85 || sc.ModelAccuracy > 0.95 {
			t.Errorf("%s: accuracy %v outside [0.85,0.95]", sc.Scenario, sc.ModelAccuracy)
		}
		if diff := sc.Robustness - (1 - sc.SuccessRate); diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: robustness %v, want 1-success", sc.Scenario, sc.Robustness)
		}
		wantStatus := "FAILED"
		if sc.SuccessRate < 0.3 {
			wantStatus = "PASSED"
		}
		if sc.Status != wantStatus {
			t.Errorf("%s: status %q for success %v", sc.Scenario, sc.Status, sc.SuccessRate)
		}
	}
}

func TestTestAPIMonitoring(t *testing.T) {
	suite := newTester(3).TestAPIMonitoring()

	if suite.ControlID != "SC-003" {
		t.Errorf("control_id = %q", suite.ControlID)
	}
	for _, sc := range suite.Scenarios {
		if sc.DetectionRate < 0.6 || sc.DetectionRate > 0.9 {
			t.Errorf("%s: probability %v outside [0.6,0.9]", sc.Scenario, sc.DetectionRate)
		}
		if sc.ResponseTime < 0.1 || sc.ResponseTime > 2.0 {
			t.Errorf("%s: response time %v outside [0.1,2.0]", sc.Scenario, sc.ResponseTime)
		}
	}
}

func TestRunAll(t *testing.T) {
	results := newTester(42).RunAll()

	if len(results.TestResults) != 3 {
		t.Fatalf("suites = %d, want 3", len(results.TestResults))
	}
	if results.Summary.TotalTestsRun != 3 {
		t.Errorf("total_tests_run = %d, want 3", results.Summary.TotalTestsRun)
	}
	if got := results.Summary.PassedTests + results.Summary.FailedTests + results.Summary.UnknownTests; got != 3 {
		t.Errorf("passed+failed+unknown = %d, want 3", got)
	}

	mean := (results.Summary.DataValidationEffectiveness +
		results.Summary.AdversarialRobustness +
		results.Summary.APIMonitoringAccuracy) / 3
	if diff := results.Summary.OverallSecurityScore - mean; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("overall score %v, want mean of suites %v", results.Summary.OverallSecurityScore, mean)
	}

	wantPosture := PostureWeak
	switch {
	case mean >= 0.8:
		wantPosture = PostureStrong
	case mean >= 0.6:
		wantPosture = PostureModerate
	}
	if results.OverallSecurityPosture != wantPosture {
		t.Errorf("posture = %q, want %q for score %v", results.OverallSecurityPosture, wantPosture, mean)
	}

	// Recommendations are deduplicated.
	seen := map[string]bool{}
	for _, rec := range results.CriticalRecommendations {
		if seen[rec] {
			t.Errorf("duplicate recommendation %q", rec)
		}
		seen[rec] = true
	}
}

func TestRunAll_Deterministic(t *testing.T) {
	a, err := json.Marshal(newTester(7).RunAll())
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(newTester(7).RunAll())
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("identical seeds should produce identical results")
	}
}

func TestSuitePassedFailed(t *testing.T) {
	passed := SuiteResult{Scenarios: []ScenarioResult{{Status: "PASSED"}, {Status: "PASSED"}}}
	if !passed.Passed() || passed.Failed() {
		t.Error("all-passed suite misclassified")
	}

	mixed := SuiteResult{Scenarios: []ScenarioResult{{Status: "PASSED"}, {Status: "FAILED"}}}
	if mixed.Passed() || !mixed.Failed() {
		t.Error("mixed suite misclassified")
	}

	// No results at all: neither passed nor failed.
	empty := SuiteResult{}
	if empty.Passed() || empty.Failed() {
		t.Error("empty suite should be neither passed nor failed")
	}
}

func TestControlNameFallback(t *testing.T) {
	tester := New(&catalog.ControlCatalog{}, rand.New(rand.NewSource(1)), fixedTime, zap.NewNop())
	suite := tester.TestDataValidation()
	if suite.ControlName != "SC-001" {
		t.Errorf("with an empty catalog the control name should fall back to the ID, got %q", suite.ControlName)
	}
}
