package cli

import (
	"github.com/spf13/cobra"
)

var (
	threatsPath  string
	controlsPath string
	outputDir    string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "threatmodel",
	Short: "Threat-model reporting for the MLSecOps security program",
	Long: `threatmodel aggregates the YAML threat and controls catalogs into
executive, technical, and validation reports, and runs the simulated
control-effectiveness suite.

All reports are descriptive: they count, sum, and average what the catalog
authors wrote. No command performs real detection or attack execution.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&threatsPath, "threats", "", "Path to threats YAML catalog (default: threat-model/threats.yaml)")
	rootCmd.PersistentFlags().StringVar(&controlsPath, "controls", "", "Path to controls YAML catalog (default: threat-model/controls.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "out", "", "Directory for generated JSON reports (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func Execute() error {
	return rootCmd.Execute()
}
