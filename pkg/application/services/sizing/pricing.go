package sizing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/domain/money"
)

// PriceConfiguration prices one (size, parallel count) configuration over a
// run length: per-metre supply and install costs times length times count,
// plus an optional termination cost per cable end at both ends. All figures
// chain through the money layer and are rounded once at this boundary.
func PriceConfiguration(row entities.CableRatingRow, lengthM float64, parallelCount int, includeTermination bool) entities.CostBreakdown {
	length := money.FromFloat(lengthM)
	count := money.FromInt(int64(parallelCount))

	supply := money.Round(money.Mul(money.Mul(row.SupplyCost, length), count))
	install := money.Round(money.Mul(money.Mul(row.InstallCost, length), count))

	termination := decimal.Zero
	if includeTermination {
		termination = money.Round(money.Mul(money.Mul(row.TermCost, count), money.FromInt(2)))
	}

	return entities.CostBreakdown{
		Supply:      supply,
		Install:     install,
		Termination: termination,
		Total:       money.Round(money.Sum(supply, install, termination)),
	}
}

// VoltageDrop computes the voltage lost over a run for one cable of the
// parallel group carrying perCableAmps, in absolute volts and as a percent
// of system voltage. The drop factor is in mV per amp metre.
func VoltageDrop(row entities.CableRatingRow, phase entities.Phase, perCableAmps, lengthM, voltage float64) (volts, pct decimal.Decimal, err error) {
	milli := money.Mul(
		money.Mul(money.FromFloat(row.DropFactor(phase)), money.FromFloat(perCableAmps)),
		money.FromFloat(lengthM),
	)

	volts, err = money.Div(milli, money.FromInt(1000))
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	pct, err = money.PercentOf(volts, money.FromFloat(voltage))
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return volts, pct, nil
}

// sortByTotalCost orders alternatives cheapest first; ties keep the smaller
// size (table order) first because the sort is stable over table-ordered
// input.
func sortByTotalCost(alts []entities.AlternativeConfig) {
	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].Cost.Total.LessThan(alts[j].Cost.Total)
	})
}

// annotateSavings fills Savings and SavingsPct relative to the most
// expensive configuration in the ranked list
func annotateSavings(alts []entities.AlternativeConfig) {
	if len(alts) == 0 {
		return
	}

	most := alts[len(alts)-1].Cost.Total
	if most.IsZero() {
		return
	}

	for i := range alts {
		savings := money.Sub(most, alts[i].Cost.Total)
		pct, err := money.PercentOf(savings, most)
		if err != nil {
			continue
		}
		alts[i].Savings = money.Round(savings)
		alts[i].SavingsPct = money.RoundTo(pct, 2)
	}
}
