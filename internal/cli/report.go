package cli

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TechIfat/mlsecops-threat-model/internal/catalog"
	"github.com/TechIfat/mlsecops-threat-model/internal/config"
	"github.com/TechIfat/mlsecops-threat-model/internal/logger"
	"github.com/TechIfat/mlsecops-threat-model/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate executive summary and technical report from the catalogs",
	Long: `Aggregate the threat and controls catalogs into two reports:
executive-summary.json for business stakeholders and technical-report.json
for engineering. Both are overwritten on every run.

  threatmodel report --out reports/`,
	RunE: reportCommand,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func reportCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(threatsPath, controlsPath, outputDir, verbose)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("generating threat model reports")

	threats, err := catalog.LoadThreats(cfg.ThreatsPath, log)
	if err != nil {
		return err
	}
	controls, err := catalog.LoadControls(cfg.ControlsPath, log)
	if err != nil {
		return err
	}

	now := time.Now()
	runID := uuid.NewString()

	summary := report.BuildExecutiveSummary(threats, controls, now, log)
	summaryPath := filepath.Join(cfg.OutputDir, "executive-summary.json")
	if err := report.WriteJSON(summaryPath, summary); err != nil {
		return err
	}

	technical := report.BuildTechnicalReport(threats, controls, now, runID, log)
	technicalPath := filepath.Join(cfg.OutputDir, "technical-report.json")
	if err := report.WriteJSON(technicalPath, technical); err != nil {
		return err
	}

	log.Info("reports generated",
		zap.String("executive_summary", summaryPath),
		zap.String("technical_report", technicalPath),
		zap.String("run_id", runID),
		zap.Int("total_threats", technical.ThreatAnalysis.ThreatSummary.TotalThreats),
		zap.Int("high_risk_threats", technical.ThreatAnalysis.ThreatSummary.ByRiskLevel.High),
		zap.String("total_investment", summary.Summary.InvestmentRecommendation.TotalSecurityInvestment))

	return nil
}
