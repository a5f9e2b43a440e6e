package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfoley/cablecalc/pkg/application/services/optimize"
	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/infrastructure/repositories/csv"
	"github.com/rfoley/cablecalc/pkg/infrastructure/repositories/memory"
	"github.com/rfoley/cablecalc/pkg/interfaces/cli/output"
)

var (
	optimizeScheduleFile string
	optimizeOutputDir    string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find cheaper configurations for a cable schedule",
	Long: `Re-evaluate every run on a cable schedule against the full size and
parallel-count grid, pricing each compliant configuration and ranking it
against the scheduled one.

The schedule is a CSV file with the header:
  tag,from,to,length_m,load_amps,voltage,phase,material,method,size,parallel_count`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOptimize()
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().StringVar(&optimizeScheduleFile, "schedule", "", "Path to schedule CSV file (required)")
	optimizeCmd.Flags().StringVar(&optimizeOutputDir, "output", "", "Output directory for results (optional)")

	_ = optimizeCmd.MarkFlagRequired("schedule")
}

func runOptimize() error {
	std, err := loadStandards()
	if err != nil {
		return fmt.Errorf("failed to load standards: %w", err)
	}

	runs, err := csv.NewLoader().LoadSchedule(optimizeScheduleFile)
	if err != nil {
		return fmt.Errorf("error loading schedule: %w", err)
	}

	if verbose {
		fmt.Printf("📂 Loaded %d cable runs from %s\n\n", len(runs), optimizeScheduleFile)
	}

	repo := memory.NewScheduleRepository(len(runs))
	if err := repo.LoadRuns(runs); err != nil {
		return fmt.Errorf("failed to load runs into repository: %w", err)
	}

	scheduled, err := repo.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to read schedule: %w", err)
	}

	schedule := make([]entities.CableRun, len(scheduled))
	for i, run := range scheduled {
		schedule[i] = *run
	}

	results, err := optimize.NewOptimizer(std).OptimizeSchedule(schedule)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	return output.GenerateOptimization(results, output.Config{
		Format:    format,
		OutputDir: optimizeOutputDir,
		Verbose:   verbose,
	})
}
