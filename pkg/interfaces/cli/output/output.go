package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// GenerateCalculation creates output for a sizing calculation in the
// specified format
func GenerateCalculation(result *entities.CalculationResult, config Config) error {
	switch config.Format {
	case "text":
		return calculationText(result, config)
	case "json":
		return writeJSON(result, config, "calculation.json")
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateOptimization creates output for a schedule optimization in the
// specified format
func GenerateOptimization(results []entities.OptimizationResult, config Config) error {
	switch config.Format {
	case "text":
		return optimizationText(results, config)
	case "json":
		return writeJSON(results, config, "optimization.json")
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func calculationText(result *entities.CalculationResult, config Config) error {
	fmt.Printf("📊 Cable Sizing Result\n")
	fmt.Printf("======================\n\n")

	if result.Size == "" {
		fmt.Printf("No selection was possible for the given inputs.\n\n")
	} else {
		group := result.Size + " mm²"
		if result.ParallelCount > 1 {
			group = fmt.Sprintf("%d x %s mm²", result.ParallelCount, result.Size)
		}
		fmt.Printf("Recommended: %s\n", group)
		fmt.Printf("Per-cable load: %.1f A\n", result.PerCableAmps)
		fmt.Printf("Voltage drop: %s V (%s%%)\n", result.VoltageDrop, result.VoltageDropPct)
		fmt.Printf("Effective impedance: %.4f ohm/km\n\n", result.EffectiveImpedance)

		fmt.Printf("💰 Cost Breakdown:\n")
		fmt.Printf("  Supply:      %12s\n", result.Cost.Supply)
		fmt.Printf("  Install:     %12s\n", result.Cost.Install)
		if !result.Cost.Termination.IsZero() {
			fmt.Printf("  Termination: %12s\n", result.Cost.Termination)
		}
		fmt.Printf("  Total:       %12s\n\n", result.Cost.Total)
	}

	printWarnings(result.Warnings)

	if result.RequiresVerification {
		fmt.Printf("⚠️  This result requires manual verification before use.\n\n")
	}

	if len(result.Alternatives) > 0 {
		fmt.Printf("📋 Alternatives (same parallel count, cheapest first):\n")
		fmt.Printf("%-10s %-8s %-12s %-10s %-12s %-10s\n",
			"Size", "Count", "Total", "Drop %", "Savings", "Savings %")
		fmt.Printf("%-10s %-8s %-12s %-10s %-12s %-10s\n",
			"----------", "--------", "------------", "----------", "------------", "----------")
		for _, alt := range result.Alternatives {
			fmt.Printf("%-10s %-8d %-12s %-10s %-12s %-10s\n",
				alt.Size, alt.ParallelCount, alt.Cost.Total,
				alt.VoltageDropPct, alt.Savings, alt.SavingsPct)
		}
		fmt.Println()
	}

	return nil
}

func optimizationText(results []entities.OptimizationResult, config Config) error {
	fmt.Printf("📊 Schedule Optimization\n")
	fmt.Printf("========================\n\n")

	for _, result := range results {
		fmt.Printf("🔌 %s: %s → %s (%.0f m, %.0f A @ %.0f V)\n",
			result.Tag, result.FromLocation, result.ToLocation,
			result.LengthM, result.LoadAmps, result.Voltage)

		fmt.Printf("%-3s %-10s %-8s %-12s %-10s %-12s %s\n",
			"", "Size", "Count", "Total", "Drop %", "Savings", "Note")
		fmt.Printf("%-3s %-10s %-8s %-12s %-10s %-12s %s\n",
			"", "----------", "--------", "------------", "----------", "------------", "----")
		for _, alt := range result.Alternatives {
			marker := ""
			if alt.IsCurrentConfig {
				marker = "»"
			}
			fmt.Printf("%-3s %-10s %-8d %-12s %-10s %-12s %s\n",
				marker, alt.Size, alt.ParallelCount, alt.Cost.Total,
				alt.VoltageDropPct, alt.Savings, alt.ComplianceNote)
		}
		fmt.Println()
	}

	return nil
}

func printWarnings(warnings []entities.ValidationWarning) {
	if len(warnings) == 0 {
		return
	}

	fmt.Printf("⚠️  Findings:\n")
	for _, w := range warnings {
		if w.Field != "" {
			fmt.Printf("  [%s] %s: %s\n", w.Severity, w.Field, w.Message)
		} else {
			fmt.Printf("  [%s] %s\n", w.Severity, w.Message)
		}
	}
	fmt.Println()
}

func writeJSON(v any, config Config, filename string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	fmt.Println(string(data))

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(config.OutputDir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write results file: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Results saved to: %s\n", path)
		}
	}

	return nil
}
