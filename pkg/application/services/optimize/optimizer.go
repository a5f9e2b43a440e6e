// Package optimize re-evaluates existing cable runs against the full
// (size × parallel count) configuration grid and ranks the compliant
// configurations by cost against what is currently scheduled.
package optimize

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rfoley/cablecalc/pkg/application/services/sizing"
	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/domain/money"
	"github.com/rfoley/cablecalc/pkg/domain/services"
	"github.com/rfoley/cablecalc/pkg/domain/tables"
)

// Optimizer explores alternative configurations for scheduled cable runs.
// Each run is optimized in isolation; there are no cross-run constraints.
type Optimizer struct {
	std tables.Standards
}

// NewOptimizer creates an optimizer bound to the given standards values
func NewOptimizer(std tables.Standards) *Optimizer {
	return &Optimizer{std: std}
}

// OptimizeSchedule produces one OptimizationResult per cable run, each
// independently consumable
func (o *Optimizer) OptimizeSchedule(runs []entities.CableRun) ([]entities.OptimizationResult, error) {
	results := make([]entities.OptimizationResult, 0, len(runs))
	for _, run := range runs {
		result, err := o.OptimizeRun(run)
		if err != nil {
			return nil, fmt.Errorf("failed to optimize run %s: %w", run.Tag, err)
		}
		results = append(results, *result)
	}
	return results, nil
}

// OptimizeRun prices the run's current configuration, enumerates every
// compliant alternative on the configuration grid, and ranks them by total
// cost with savings relative to the current configuration.
func (o *Optimizer) OptimizeRun(run entities.CableRun) (*entities.OptimizationResult, error) {
	rows, err := tables.Rows(run.Material)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rating table: %w", err)
	}

	currentRow, err := tables.RowBySize(run.Material, run.Size)
	if err != nil {
		return nil, fmt.Errorf("scheduled size is not in the rating table: %w", err)
	}

	req := o.std.Apply(entities.CalculationRequest{
		LoadAmps: run.LoadAmps,
		Voltage:  run.Voltage,
		LengthM:  run.LengthM,
		Material: run.Material,
		Method:   run.Method,
		Phase:    run.Phase,
	})

	current, err := o.priceCurrent(req, run, currentRow, rows)
	if err != nil {
		return nil, err
	}

	alternatives, err := o.enumerate(req, run, rows)
	if err != nil {
		return nil, err
	}
	alternatives = append(alternatives, current)

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Cost.Total.LessThan(alternatives[j].Cost.Total)
	})

	for i := range alternatives {
		savings := money.Variance(current.Cost.Total, alternatives[i].Cost.Total)
		alternatives[i].Savings = money.Round(savings)
		if !current.Cost.Total.IsZero() {
			pct, err := money.PercentOf(savings, current.Cost.Total)
			if err != nil {
				return nil, err
			}
			alternatives[i].SavingsPct = money.RoundTo(pct, 2)
		}
	}

	return &entities.OptimizationResult{
		Tag:          run.Tag,
		FromLocation: run.FromLocation,
		ToLocation:   run.ToLocation,
		LengthM:      run.LengthM,
		LoadAmps:     run.LoadAmps,
		Voltage:      run.Voltage,
		Current:      current,
		Alternatives: alternatives,
	}, nil
}

// priceCurrent prices the run's scheduled configuration and annotates it
// when it fails the validator's checks; the current configuration always
// appears in the ranked list even when non-compliant.
func (o *Optimizer) priceCurrent(req entities.CalculationRequest, run entities.CableRun, row entities.CableRatingRow, rows []entities.CableRatingRow) (entities.AlternativeConfig, error) {
	perCable := run.LoadAmps / float64(run.ParallelCount)

	_, dropPct, err := sizing.VoltageDrop(row, run.Phase, perCable, run.LengthM, run.Voltage)
	if err != nil {
		return entities.AlternativeConfig{}, fmt.Errorf("failed to compute voltage drop for %s: %w", run.Tag, err)
	}

	current := entities.AlternativeConfig{
		Size:            run.Size,
		ParallelCount:   run.ParallelCount,
		Cost:            sizing.PriceConfiguration(row, run.LengthM, run.ParallelCount, false),
		VoltageDropPct:  money.RoundTo(dropPct, 2),
		IsCurrentConfig: true,
	}

	outcome := services.ValidateCalculation(req, row, run.ParallelCount, dropPct, rows, o.std)
	for _, w := range outcome.Warnings {
		if w.Severity == entities.SeverityError {
			current.ComplianceNote = w.Message
			break
		}
	}

	return current, nil
}

// enumerate walks the full configuration grid, discarding configurations
// that fail the capacity or voltage-drop checks for this run
func (o *Optimizer) enumerate(req entities.CalculationRequest, run entities.CableRun, rows []entities.CableRatingRow) ([]entities.AlternativeConfig, error) {
	limit := decimal.NewFromFloat(req.DropLimitPct)

	var alts []entities.AlternativeConfig
	for _, row := range rows {
		for n := 1; n <= o.std.MaxParallelRuns; n++ {
			if row.Size == run.Size && n == run.ParallelCount {
				continue // the current configuration is appended separately
			}

			perCable := run.LoadAmps / float64(n)
			if row.Rating(req.Method)*req.Derating < perCable {
				continue
			}

			_, dropPct, err := sizing.VoltageDrop(row, run.Phase, perCable, run.LengthM, run.Voltage)
			if err != nil {
				return nil, fmt.Errorf("failed to compute voltage drop for %s: %w", run.Tag, err)
			}
			if dropPct.GreaterThan(limit) {
				continue
			}

			alts = append(alts, entities.AlternativeConfig{
				Size:           row.Size,
				ParallelCount:  n,
				Cost:           sizing.PriceConfiguration(row, run.LengthM, n, false),
				VoltageDropPct: money.RoundTo(dropPct, 2),
			})
		}
	}

	return alts, nil
}
