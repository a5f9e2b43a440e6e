package commands

import (
	"github.com/spf13/cobra"

	"github.com/rfoley/cablecalc/pkg/domain/tables"
)

var (
	standardsFile string
	format        string
	verbose       bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "cablecalc",
	Short: "Low-voltage cable sizing and cost optimization",
	Long: `cablecalc sizes low-voltage power cables against capacity and
voltage-drop constraints and finds cheaper compliant configurations for
runs already on a cable schedule.

Standards values (voltage-drop limits, parallel-run rules, default
derating) are built in and can be overridden with a YAML file via
--standards.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&standardsFile, "standards", "", "Path to a YAML standards file (overrides built-in values)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "Output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
}

// loadStandards resolves the standards values from the --standards flag or
// the built-in defaults
func loadStandards() (tables.Standards, error) {
	if standardsFile == "" {
		return tables.DefaultStandards(), nil
	}
	return tables.LoadStandards(standardsFile)
}
