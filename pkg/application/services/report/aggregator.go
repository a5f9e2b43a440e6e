// Package report rolls priced line items and variations up into category
// and grand totals. Interactive display and document export both consume
// these totals, so every figure chains through the money layer and the two
// paths reconcile exactly.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/domain/money"
)

// Aggregate computes per-category totals and the grand totals from category
// records, line items, and variations. A variation contributes zero to the
// original budget and previous report and its full amount to the
// anticipated final.
func Aggregate(categories []entities.CostCategory, items []entities.CostLineItem, variations []entities.CostVariation) ([]entities.CategoryTotal, entities.GrandTotals) {
	byCategory := make(map[string]*entities.CategoryTotal, len(categories))

	ordered := make([]entities.CostCategory, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})

	totals := make([]entities.CategoryTotal, len(ordered))
	for i, cat := range ordered {
		totals[i] = entities.CategoryTotal{
			CategoryID:       cat.ID,
			Name:             cat.Name,
			OriginalBudget:   decimal.Zero,
			PreviousReport:   decimal.Zero,
			AnticipatedFinal: decimal.Zero,
		}
		byCategory[cat.ID] = &totals[i]
	}

	for _, item := range items {
		total, ok := byCategory[item.CategoryID]
		if !ok {
			continue // line item against an unknown category is dropped, not invented
		}
		total.OriginalBudget = money.Add(total.OriginalBudget, item.OriginalBudget)
		total.PreviousReport = money.Add(total.PreviousReport, item.PreviousReport)
		total.AnticipatedFinal = money.Add(total.AnticipatedFinal, item.AnticipatedFinal)
	}

	for _, variation := range variations {
		total, ok := byCategory[variation.CategoryID]
		if !ok {
			continue
		}
		total.AnticipatedFinal = money.Add(total.AnticipatedFinal, variation.Amount)
	}

	grand := entities.GrandTotals{
		OriginalBudget:   decimal.Zero,
		PreviousReport:   decimal.Zero,
		AnticipatedFinal: decimal.Zero,
	}
	for i := range totals {
		grand.OriginalBudget = money.Add(grand.OriginalBudget, totals[i].OriginalBudget)
		grand.PreviousReport = money.Add(grand.PreviousReport, totals[i].PreviousReport)
		grand.AnticipatedFinal = money.Add(grand.AnticipatedFinal, totals[i].AnticipatedFinal)
	}

	for i := range totals {
		totals[i].Variance = money.Round(money.Variance(totals[i].AnticipatedFinal, totals[i].OriginalBudget))
		if !grand.AnticipatedFinal.IsZero() {
			pct, err := money.PercentOf(totals[i].AnticipatedFinal, grand.AnticipatedFinal)
			if err == nil {
				totals[i].PercentOfTotal = money.RoundTo(pct, 2)
			}
		}
		totals[i].OriginalBudget = money.Round(totals[i].OriginalBudget)
		totals[i].PreviousReport = money.Round(totals[i].PreviousReport)
		totals[i].AnticipatedFinal = money.Round(totals[i].AnticipatedFinal)
	}

	grand.Variance = money.Round(money.Variance(grand.AnticipatedFinal, grand.OriginalBudget))
	grand.OriginalBudget = money.Round(grand.OriginalBudget)
	grand.PreviousReport = money.Round(grand.PreviousReport)
	grand.AnticipatedFinal = money.Round(grand.AnticipatedFinal)

	return totals, grand
}

// CompareGrandTotals checks two independently computed grand totals for
// agreement within the tolerance and returns the names of any fields that
// differ. Interactive and exported reports must reconcile exactly; a
// non-empty return is a defect in one of the pipelines.
func CompareGrandTotals(a, b entities.GrandTotals, tolerance decimal.Decimal) []string {
	var mismatched []string

	fields := []struct {
		name string
		a, b decimal.Decimal
	}{
		{name: "originalBudget", a: a.OriginalBudget, b: b.OriginalBudget},
		{name: "previousReport", a: a.PreviousReport, b: b.PreviousReport},
		{name: "anticipatedFinal", a: a.AnticipatedFinal, b: b.AnticipatedFinal},
		{name: "variance", a: a.Variance, b: b.Variance},
	}

	for _, f := range fields {
		if f.a.Sub(f.b).Abs().GreaterThan(tolerance) {
			mismatched = append(mismatched, f.name)
		}
	}

	return mismatched
}
