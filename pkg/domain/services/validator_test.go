package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/domain/tables"
)

func validRequest() entities.CalculationRequest {
	return entities.CalculationRequest{
		LoadAmps: 100,
		Voltage:  400,
		LengthM:  50,
		Derating: 1.0,
	}
}

func findSeverity(warnings []entities.ValidationWarning, severity entities.Severity) []entities.ValidationWarning {
	var found []entities.ValidationWarning
	for _, w := range warnings {
		if w.Severity == severity {
			found = append(found, w)
		}
	}
	return found
}

func TestValidateInputs_Clean(t *testing.T) {
	out := ValidateInputs(validRequest())
	assert.Empty(t, out.Warnings)
	assert.False(t, out.RequiresVerification)
}

func TestValidateInputs_Errors(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*entities.CalculationRequest)
		field string
	}{
		{name: "zero_load", mod: func(r *entities.CalculationRequest) { r.LoadAmps = 0 }, field: "loadAmps"},
		{name: "negative_load", mod: func(r *entities.CalculationRequest) { r.LoadAmps = -10 }, field: "loadAmps"},
		{name: "zero_voltage", mod: func(r *entities.CalculationRequest) { r.Voltage = 0 }, field: "voltage"},
		{name: "negative_length", mod: func(r *entities.CalculationRequest) { r.LengthM = -1 }, field: "lengthM"},
		{name: "derating_above_one", mod: func(r *entities.CalculationRequest) { r.Derating = 1.5 }, field: "derating"},
		{name: "margin_below_one", mod: func(r *entities.CalculationRequest) { r.SafetyMargin = 0.5 }, field: "safetyMargin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mod(&req)

			out := ValidateInputs(req)
			errs := findSeverity(out.Warnings, entities.SeverityError)
			require.NotEmpty(t, errs, "expected an error-severity warning")
			assert.Equal(t, tt.field, errs[0].Field)
			assert.True(t, out.RequiresVerification)
		})
	}
}

func TestValidateInputs_PlausibilityWarnings(t *testing.T) {
	req := validRequest()
	req.LoadAmps = 8000
	req.Voltage = 11000
	req.LengthM = 25000

	out := ValidateInputs(req)
	warns := findSeverity(out.Warnings, entities.SeverityWarning)
	assert.Len(t, warns, 3)
	assert.False(t, out.RequiresVerification, "implausible but valid inputs do not force verification")
}

func TestValidateCalculation_CapacityFailure(t *testing.T) {
	std := tables.DefaultStandards()
	rows, err := tables.Rows(entities.Copper)
	require.NoError(t, err)

	// 6mm² carries 53A in air; asking it to carry 100A is an unsafe
	// override and must surface as an error.
	small, err := tables.RowBySize(entities.Copper, "6")
	require.NoError(t, err)

	out := ValidateCalculation(validRequest(), small, 1, decimal.NewFromFloat(1.0), rows, std)

	errs := findSeverity(out.Warnings, entities.SeverityError)
	require.NotEmpty(t, errs)
	assert.Equal(t, "size", errs[0].Field)
	assert.True(t, out.RequiresVerification)
}

func TestValidateCalculation_CapacityWithParallel(t *testing.T) {
	std := tables.DefaultStandards()
	rows, err := tables.Rows(entities.Copper)
	require.NoError(t, err)

	// The same 100A load split across two 6mm² cables is 50A per cable,
	// inside the 53A rating.
	small, err := tables.RowBySize(entities.Copper, "6")
	require.NoError(t, err)

	out := ValidateCalculation(validRequest(), small, 2, decimal.NewFromFloat(1.0), rows, std)
	assert.Empty(t, findSeverity(out.Warnings, entities.SeverityError))
}

func TestValidateCalculation_DropOverLimit(t *testing.T) {
	std := tables.DefaultStandards()
	rows, err := tables.Rows(entities.Copper)
	require.NoError(t, err)
	row, err := tables.RowBySize(entities.Copper, "35")
	require.NoError(t, err)

	out := ValidateCalculation(validRequest(), row, 1, decimal.NewFromFloat(6.2), rows, std)

	errs := findSeverity(out.Warnings, entities.SeverityError)
	require.NotEmpty(t, errs)
	assert.True(t, out.RequiresVerification)
}

func TestValidateCalculation_DropNearLimit(t *testing.T) {
	std := tables.DefaultStandards()
	rows, err := tables.Rows(entities.Copper)
	require.NoError(t, err)
	row, err := tables.RowBySize(entities.Copper, "35")
	require.NoError(t, err)

	// 4.7% against a 5% limit with a 0.5 point buffer: advisory only
	out := ValidateCalculation(validRequest(), row, 1, decimal.NewFromFloat(4.7), rows, std)

	assert.Empty(t, findSeverity(out.Warnings, entities.SeverityError))
	assert.NotEmpty(t, findSeverity(out.Warnings, entities.SeverityInfo))
	assert.False(t, out.RequiresVerification)
}

func TestValidateCalculation_ImpedanceOrderingViolation(t *testing.T) {
	std := tables.DefaultStandards()
	rows, err := tables.Rows(entities.Copper)
	require.NoError(t, err)

	// Corrupt a copy of the table the way a bad data entry would
	corrupted := make([]entities.CableRatingRow, len(rows))
	copy(corrupted, rows)
	corrupted[3].ImpedanceAC = corrupted[2].ImpedanceAC * 2

	out := ValidateCalculation(validRequest(), corrupted[5], 1, decimal.NewFromFloat(1.0), corrupted, std)

	warns := findSeverity(out.Warnings, entities.SeverityWarning)
	require.NotEmpty(t, warns)
	assert.True(t, out.RequiresVerification, "reference-data errors require verification")
}

func TestValidateCalculation_StandaloneOverride(t *testing.T) {
	// A manually entered oversized cable on a compliant run validates clean.
	std := tables.DefaultStandards()
	rows, err := tables.Rows(entities.Copper)
	require.NoError(t, err)
	row, err := tables.RowBySize(entities.Copper, "300")
	require.NoError(t, err)

	out := ValidateCalculation(validRequest(), row, 1, decimal.NewFromFloat(0.3), rows, std)
	assert.Empty(t, out.Warnings)
	assert.False(t, out.RequiresVerification)
}
