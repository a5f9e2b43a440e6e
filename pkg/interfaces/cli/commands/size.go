package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfoley/cablecalc/pkg/application/services/sizing"
	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/interfaces/cli/output"
)

var (
	sizeLoad         float64
	sizeVoltage      float64
	sizeLength       float64
	sizeMaterial     string
	sizeMethod       string
	sizePhase        string
	sizeDerating     float64
	sizeSafetyMargin float64
	sizeMaxAmps      float64
	sizePreferred    float64
	sizeDropLimit    float64
	sizeTerminations bool
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a cable for a load",
	Long: `Size a cable for a given load, length, and voltage.

Selects the smallest cable (splitting into parallel runs when the load
exceeds the per-cable ceiling) whose derated rating carries the load,
then escalates until the voltage drop is within the standards limit.
Costed alternatives at the same parallel count are listed alongside the
recommendation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSize()
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().Float64Var(&sizeLoad, "load", 0, "Design load current, amps (required)")
	sizeCmd.Flags().Float64Var(&sizeVoltage, "voltage", 400, "System voltage, volts")
	sizeCmd.Flags().Float64Var(&sizeLength, "length", 0, "Run length, metres (required)")
	sizeCmd.Flags().StringVar(&sizeMaterial, "material", "copper", "Conductor material: copper, aluminium")
	sizeCmd.Flags().StringVar(&sizeMethod, "method", "air", "Installation method: air, duct, ground")
	sizeCmd.Flags().StringVar(&sizePhase, "phase", "three", "Supply arrangement: three, single")
	sizeCmd.Flags().Float64Var(&sizeDerating, "derating", 0, "Derating factor (0 = standards default)")
	sizeCmd.Flags().Float64Var(&sizeSafetyMargin, "safety-margin", 0, "Load multiplier >= 1.0 (0 = none)")
	sizeCmd.Flags().Float64Var(&sizeMaxAmps, "max-amps", 0, "Max amps per single cable (0 = standards default)")
	sizeCmd.Flags().Float64Var(&sizePreferred, "preferred-amps", 0, "Target amps per cable when splitting (0 = standards default)")
	sizeCmd.Flags().Float64Var(&sizeDropLimit, "drop-limit", 0, "Voltage-drop limit percent (0 = standards default)")
	sizeCmd.Flags().BoolVar(&sizeTerminations, "terminations", false, "Include per-end termination costs")

	_ = sizeCmd.MarkFlagRequired("load")
	_ = sizeCmd.MarkFlagRequired("length")
}

func runSize() error {
	material, err := entities.ParseMaterial(sizeMaterial)
	if err != nil {
		return err
	}
	method, err := entities.ParseInstallMethod(sizeMethod)
	if err != nil {
		return err
	}
	phase, err := entities.ParsePhase(sizePhase)
	if err != nil {
		return err
	}

	std, err := loadStandards()
	if err != nil {
		return fmt.Errorf("failed to load standards: %w", err)
	}

	req := entities.CalculationRequest{
		LoadAmps:           sizeLoad,
		Voltage:            sizeVoltage,
		LengthM:            sizeLength,
		Material:           material,
		Method:             method,
		Phase:              phase,
		Derating:           sizeDerating,
		SafetyMargin:       sizeSafetyMargin,
		MaxAmpsPerCable:    sizeMaxAmps,
		PreferredAmps:      sizePreferred,
		DropLimitPct:       sizeDropLimit,
		IncludeTermination: sizeTerminations,
	}

	result, err := sizing.NewSelector(std).Select(req)
	if err != nil {
		return fmt.Errorf("sizing failed: %w", err)
	}

	return output.GenerateCalculation(result, output.Config{
		Format:  format,
		Verbose: verbose,
	})
}
