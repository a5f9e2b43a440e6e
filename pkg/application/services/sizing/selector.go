// Package sizing selects the smallest compliant cable configuration for a
// load and prices it. Selection is table-driven: the escalation loop walks
// the material's rating rows smallest-first and knows nothing about which
// material it is sizing.
package sizing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/domain/money"
	"github.com/rfoley/cablecalc/pkg/domain/services"
	"github.com/rfoley/cablecalc/pkg/domain/tables"
)

// Selector implements the cable sizing logic against a standards table
type Selector struct {
	std tables.Standards
}

// NewSelector creates a selector bound to the given standards values
func NewSelector(std tables.Standards) *Selector {
	return &Selector{std: std}
}

// Select determines the smallest compliant cable size and parallel count
// for the request, prices the configuration, and attaches validation
// findings. When no table entry satisfies the constraints the result
// carries the verification flag and an error-severity warning; a
// non-compliant recommendation is never returned silently.
func (s *Selector) Select(req entities.CalculationRequest) (*entities.CalculationResult, error) {
	req = s.std.Apply(req)

	rows, err := tables.Rows(req.Material)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rating table: %w", err)
	}

	inputs := services.ValidateInputs(req)
	if hasErrors(inputs.Warnings) {
		// Structurally unusable request: report the findings without a
		// recommendation rather than sizing from garbage.
		return &entities.CalculationResult{
			Warnings:             inputs.Warnings,
			RequiresVerification: true,
		}, nil
	}

	margin := req.SafetyMargin
	if margin < 1 {
		margin = 1
	}
	effectiveLoad := req.LoadAmps * margin

	parallelCount := 1
	if effectiveLoad > req.MaxAmpsPerCable {
		parallelCount = int(math.Ceil(effectiveLoad / req.PreferredAmps))
	}
	perCable := effectiveLoad / float64(parallelCount)

	// Capacity scan: smallest row whose derated rating covers the
	// per-cable load. Rows are sorted ascending, so first hit wins.
	capacityIdx := -1
	for i, row := range rows {
		if row.Rating(req.Method)*req.Derating >= perCable {
			capacityIdx = i
			break
		}
	}

	capacityExhausted := capacityIdx == -1
	if capacityExhausted {
		capacityIdx = len(rows) - 1
	}

	// Voltage-drop escalation: keep the parallel count, upsize until the
	// drop is within the limit or the table runs out.
	idx := capacityIdx
	dropExhausted := false
	dropVolts, dropPct := decimal.Zero, decimal.Zero

	if req.LengthM > 0 {
		limit := decimal.NewFromFloat(req.DropLimitPct)
		for {
			dropVolts, dropPct, err = VoltageDrop(rows[idx], req.Phase, perCable, req.LengthM, req.Voltage)
			if err != nil {
				return nil, fmt.Errorf("failed to compute voltage drop for size %s: %w", rows[idx].Size, err)
			}
			if dropPct.LessThanOrEqual(limit) {
				break
			}
			if idx == len(rows)-1 {
				dropExhausted = true
				break
			}
			idx++
		}
	}

	chosen := rows[idx]

	result := &entities.CalculationResult{
		Size:               chosen.Size,
		ParallelCount:      parallelCount,
		PerCableAmps:       perCable,
		EffectiveImpedance: chosen.ImpedanceAC / float64(parallelCount),
		VoltageDrop:        money.RoundTo(dropVolts, 2),
		VoltageDropPct:     money.RoundTo(dropPct, 2),
		Cost:               PriceConfiguration(chosen, req.LengthM, parallelCount, req.IncludeTermination),
		CapacitySufficient: !capacityExhausted && idx == capacityIdx,
	}

	outcome := services.ValidateCalculation(req, chosen, parallelCount, dropPct, rows, s.std)
	result.Warnings = outcome.Warnings
	result.RequiresVerification = outcome.RequiresVerification

	if capacityExhausted {
		result.Warnings = append(result.Warnings, entities.ValidationWarning{
			Severity: entities.SeverityError,
			Field:    "loadAmps",
			Message: fmt.Sprintf("no %v cable carries %.1fA per cable derated at %v; largest size %s recommended subject to engineering verification",
				req.Material, perCable, req.Method, chosen.Size),
		})
		result.RequiresVerification = true
	}

	if dropExhausted {
		result.Warnings = append(result.Warnings, entities.ValidationWarning{
			Severity: entities.SeverityError,
			Field:    "lengthM",
			Message: fmt.Sprintf("voltage drop of %s%% exceeds the %v%% limit even at the largest %v size; run requires engineering verification",
				dropPct.StringFixed(2), req.DropLimitPct, req.Material),
		})
		result.RequiresVerification = true
	}

	alternatives, err := s.alternatives(req, rows, parallelCount, perCable)
	if err != nil {
		return nil, err
	}
	result.Alternatives = alternatives

	return result, nil
}

// alternatives prices every compliant size at the chosen parallel count and
// ranks them cheapest first, with savings relative to the most expensive
// compliant configuration.
func (s *Selector) alternatives(req entities.CalculationRequest, rows []entities.CableRatingRow, parallelCount int, perCable float64) ([]entities.AlternativeConfig, error) {
	limit := decimal.NewFromFloat(req.DropLimitPct)

	var alts []entities.AlternativeConfig
	for _, row := range rows {
		if row.Rating(req.Method)*req.Derating < perCable {
			continue
		}

		dropPct := decimal.Zero
		if req.LengthM > 0 {
			var err error
			_, dropPct, err = VoltageDrop(row, req.Phase, perCable, req.LengthM, req.Voltage)
			if err != nil {
				return nil, fmt.Errorf("failed to compute voltage drop for size %s: %w", row.Size, err)
			}
			if dropPct.GreaterThan(limit) {
				continue
			}
		}

		alts = append(alts, entities.AlternativeConfig{
			Size:           row.Size,
			ParallelCount:  parallelCount,
			Cost:           PriceConfiguration(row, req.LengthM, parallelCount, req.IncludeTermination),
			VoltageDropPct: money.RoundTo(dropPct, 2),
		})
	}

	sortByTotalCost(alts)
	annotateSavings(alts)
	return alts, nil
}

func hasErrors(warnings []entities.ValidationWarning) bool {
	for _, w := range warnings {
		if w.Severity == entities.SeverityError {
			return true
		}
	}
	return false
}
