package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TechIfat/mlsecops-threat-model/internal/catalog"
	"github.com/TechIfat/mlsecops-threat-model/internal/config"
	"github.com/TechIfat/mlsecops-threat-model/internal/logger"
	"github.com/TechIfat/mlsecops-threat-model/internal/report"
)

// ErrValidationFailed is returned when the catalog has gaps, so the process
// exits nonzero for CI pipelines that gate on validation.
var ErrValidationFailed = errors.New("threat model validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the threat catalog for completeness and STRIDE coverage",
	Long: `Check every threat for the required field set (id, name, likelihood,
impact, business_impact) and the catalog as a whole for coverage of the six
STRIDE categories. Writes threat-validation-report.json and exits nonzero
when validation fails.

  threatmodel validate --threats threat-model/threats.yaml`,
	RunE: validateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(threatsPath, controlsPath, outputDir, verbose)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting threat validation")

	threats, err := catalog.LoadThreats(cfg.ThreatsPath, log)
	if err != nil {
		return err
	}

	rep := report.BuildValidationReport(threats, time.Now(), log)

	outPath := filepath.Join(cfg.OutputDir, "threat-validation-report.json")
	if err := report.WriteJSON(outPath, rep); err != nil {
		return err
	}

	log.Info("validation report written",
		zap.String("path", outPath),
		zap.String("status", rep.ValidationStatus),
		zap.Int("total_threats", rep.ThreatCoverage.TotalThreats),
		zap.Int("high_risk", rep.RiskStatistics.HighRiskCount),
		zap.String("total_estimated_cost", rep.RiskStatistics.TotalEstimatedCost))

	for _, rec := range rep.Recommendations {
		log.Info("recommendation", zap.String("text", rec))
	}

	if rep.ValidationStatus != "PASSED" {
		return fmt.Errorf("%w: %d gaps found", ErrValidationFailed, len(rep.ThreatCoverage.Gaps))
	}
	return nil
}
