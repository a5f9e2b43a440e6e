package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/domain/tables"
)

// Plausible engineering ranges for low-voltage work. Values outside these
// are not rejected, only flagged for a second look.
const (
	maxPlausibleLoadAmps = 5000
	maxPlausibleVoltage  = 1000
	maxPlausibleLengthM  = 10000
)

// ValidationOutcome contains the findings of a validation pass
type ValidationOutcome struct {
	Warnings []entities.ValidationWarning

	// RequiresVerification is set when a finding needs engineering
	// sign-off before the calculation may be relied on
	RequiresVerification bool
}

func (o *ValidationOutcome) add(severity entities.Severity, field, format string, args ...any) {
	o.Warnings = append(o.Warnings, entities.ValidationWarning{
		Severity: severity,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// ValidateInputs checks the request parameters alone: non-positive load,
// voltage, or length are errors; values outside plausible engineering
// ranges are warnings. Inputs are never clamped.
func ValidateInputs(req entities.CalculationRequest) ValidationOutcome {
	var out ValidationOutcome

	if req.LoadAmps <= 0 {
		out.add(entities.SeverityError, "loadAmps", "load current must be positive, got %v", req.LoadAmps)
	} else if req.LoadAmps > maxPlausibleLoadAmps {
		out.add(entities.SeverityWarning, "loadAmps", "load of %vA is outside the plausible range for a low-voltage feeder", req.LoadAmps)
	}

	if req.Voltage <= 0 {
		out.add(entities.SeverityError, "voltage", "system voltage must be positive, got %v", req.Voltage)
	} else if req.Voltage > maxPlausibleVoltage {
		out.add(entities.SeverityWarning, "voltage", "voltage of %vV is above the low-voltage range", req.Voltage)
	}

	if req.LengthM < 0 {
		out.add(entities.SeverityError, "lengthM", "run length cannot be negative, got %v", req.LengthM)
	} else if req.LengthM > maxPlausibleLengthM {
		out.add(entities.SeverityWarning, "lengthM", "run length of %vm is outside the plausible range", req.LengthM)
	}

	if req.Derating < 0 || req.Derating > 1 {
		out.add(entities.SeverityError, "derating", "derating factor must be in (0,1], got %v", req.Derating)
	}

	if req.SafetyMargin != 0 && req.SafetyMargin < 1 {
		out.add(entities.SeverityError, "safetyMargin", "safety margin must be at least 1.0, got %v", req.SafetyMargin)
	}

	for _, w := range out.Warnings {
		if w.Severity == entities.SeverityError {
			out.RequiresVerification = true
			break
		}
	}

	return out
}

// ValidateCalculation inspects a proposed calculation: the request, a
// candidate cable row, the parallel count it would be installed at, and the
// computed voltage-drop percentage. It is independent of the selector so
// that a manually overridden cable choice validates through the same rules.
func ValidateCalculation(
	req entities.CalculationRequest,
	candidate entities.CableRatingRow,
	parallelCount int,
	dropPct decimal.Decimal,
	rows []entities.CableRatingRow,
	std tables.Standards,
) ValidationOutcome {
	out := ValidateInputs(req)

	if parallelCount < 1 {
		parallelCount = 1
	}

	checkCapacity(&out, req, candidate, parallelCount)
	checkImpedanceOrdering(&out, rows)
	checkVoltageDrop(&out, req, dropPct, std)

	return out
}

// checkCapacity recomputes the derated rating and confirms it covers the
// per-cable share of the load. An undersized recommendation must never pass
// silently.
func checkCapacity(out *ValidationOutcome, req entities.CalculationRequest, candidate entities.CableRatingRow, parallelCount int) {
	if req.LoadAmps <= 0 {
		return
	}

	derating := req.Derating
	if derating <= 0 || derating > 1 {
		derating = 1
	}
	margin := req.SafetyMargin
	if margin < 1 {
		margin = 1
	}

	perCable := req.LoadAmps * margin / float64(parallelCount)
	derated := candidate.Rating(req.Method) * derating

	if derated < perCable {
		out.add(entities.SeverityError, "size",
			"cable %s carries %.1fA derated at %v but must carry %.1fA per cable",
			candidate.Size, derated, req.Method, perCable)
		out.RequiresVerification = true
	}
}

// checkImpedanceOrdering confirms the reference table's impedance strictly
// decreases with size. A violation is a data entry error in the table
// itself, so it is reported regardless of the specific request.
func checkImpedanceOrdering(out *ValidationOutcome, rows []entities.CableRatingRow) {
	for i := 1; i < len(rows); i++ {
		if rows[i].ImpedanceAC >= rows[i-1].ImpedanceAC {
			out.add(entities.SeverityWarning, "",
				"rating table impedance does not decrease from %s to %s; reference data needs review",
				rows[i-1].Size, rows[i].Size)
			out.RequiresVerification = true
		}
	}
}

func checkVoltageDrop(out *ValidationOutcome, req entities.CalculationRequest, dropPct decimal.Decimal, std tables.Standards) {
	if req.LengthM <= 0 || req.Voltage <= 0 {
		return
	}

	limitPct := req.DropLimitPct
	if limitPct == 0 {
		limitPct = std.DropLimitFor(req.Voltage)
	}
	limit := decimal.NewFromFloat(limitPct)
	buffer := decimal.NewFromFloat(std.DropWarningBuffer)

	if dropPct.GreaterThan(limit) {
		out.add(entities.SeverityError, "lengthM",
			"voltage drop of %s%% exceeds the %s%% limit", dropPct.StringFixed(2), limit.String())
		out.RequiresVerification = true
		return
	}

	if dropPct.GreaterThanOrEqual(limit.Sub(buffer)) {
		out.add(entities.SeverityInfo, "lengthM",
			"voltage drop of %s%% is within %s%% of the %s%% limit",
			dropPct.StringFixed(2), buffer.String(), limit.String())
	}
}
