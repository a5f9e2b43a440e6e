package entities

import "github.com/shopspring/decimal"

// CostCategory groups cost line items for reporting
type CostCategory struct {
	ID        string
	Name      string
	SortOrder int
}

// CostLineItem is one budgeted line within a category
type CostLineItem struct {
	CategoryID       string
	Description      string
	OriginalBudget   decimal.Decimal
	PreviousReport   decimal.Decimal
	AnticipatedFinal decimal.Decimal
}

// CostVariation is an approved change against a category. A variation has
// no baseline presence: it contributes nothing to the original budget or
// the previous report, and its full amount to the anticipated final.
type CostVariation struct {
	CategoryID string
	Reference  string
	Amount     decimal.Decimal
}

// CategoryTotal holds the aggregated figures for one category
type CategoryTotal struct {
	CategoryID       string
	Name             string
	OriginalBudget   decimal.Decimal
	PreviousReport   decimal.Decimal
	AnticipatedFinal decimal.Decimal
	Variance         decimal.Decimal // anticipated final less original budget
	PercentOfTotal   decimal.Decimal // share of the grand anticipated final
}

// GrandTotals holds the report-wide sums of all category totals
type GrandTotals struct {
	OriginalBudget   decimal.Decimal
	PreviousReport   decimal.Decimal
	AnticipatedFinal decimal.Decimal
	Variance         decimal.Decimal
}
