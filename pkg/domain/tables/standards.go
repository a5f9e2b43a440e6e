package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
)

// DropLimit maps a voltage class to its regulatory voltage-drop limit.
// MaxVoltage of zero marks the catch-all entry.
type DropLimit struct {
	MaxVoltage float64 `yaml:"max_voltage"`
	LimitPct   float64 `yaml:"limit_pct"`
}

// Standards holds the regulatory thresholds and engine defaults the sizing
// logic operates against. The values are data, not algorithm: projects with
// different regulatory regimes supply their own standards file and the
// engine code is unchanged.
type Standards struct {
	DropLimits        []DropLimit `yaml:"voltage_drop_limits"`
	DropWarningBuffer float64     `yaml:"voltage_drop_warning_buffer"`

	MaxAmpsPerCable       float64 `yaml:"max_amps_per_cable"`
	PreferredAmpsPerCable float64 `yaml:"preferred_amps_per_cable"`
	DefaultDerating       float64 `yaml:"default_derating"`
	MaxParallelRuns       int     `yaml:"max_parallel_runs"`
}

// DefaultStandards returns the compiled-in standards values used when no
// standards file is supplied
func DefaultStandards() Standards {
	return Standards{
		DropLimits: []DropLimit{
			{MaxVoltage: 0, LimitPct: 5.0},
		},
		DropWarningBuffer:     0.5,
		MaxAmpsPerCable:       400,
		PreferredAmpsPerCable: 300,
		DefaultDerating:       1.0,
		MaxParallelRuns:       4,
	}
}

// LoadStandards reads a standards table from a YAML file. Fields absent
// from the file keep their compiled-in defaults.
func LoadStandards(path string) (Standards, error) {
	std := DefaultStandards()

	data, err := os.ReadFile(path)
	if err != nil {
		return Standards{}, fmt.Errorf("failed to open standards file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &std); err != nil {
		return Standards{}, fmt.Errorf("failed to parse standards file %s: %w", path, err)
	}

	if err := std.validate(); err != nil {
		return Standards{}, fmt.Errorf("invalid standards file %s: %w", path, err)
	}

	return std, nil
}

func (s Standards) validate() error {
	if len(s.DropLimits) == 0 {
		return fmt.Errorf("at least one voltage drop limit is required")
	}
	for _, l := range s.DropLimits {
		if l.LimitPct <= 0 {
			return fmt.Errorf("voltage drop limit must be positive, got %v", l.LimitPct)
		}
	}
	if s.MaxAmpsPerCable <= 0 {
		return fmt.Errorf("max_amps_per_cable must be positive, got %v", s.MaxAmpsPerCable)
	}
	if s.PreferredAmpsPerCable <= 0 {
		return fmt.Errorf("preferred_amps_per_cable must be positive, got %v", s.PreferredAmpsPerCable)
	}
	if s.DefaultDerating <= 0 || s.DefaultDerating > 1 {
		return fmt.Errorf("default_derating must be in (0,1], got %v", s.DefaultDerating)
	}
	if s.MaxParallelRuns < 1 {
		return fmt.Errorf("max_parallel_runs must be at least 1, got %d", s.MaxParallelRuns)
	}
	return nil
}

// DropLimitFor returns the voltage-drop limit percent for a system voltage.
// The smallest matching voltage class wins; the catch-all entry applies
// when no class matches.
func (s Standards) DropLimitFor(voltage float64) float64 {
	var catchAll float64
	var best float64
	bestClass := 0.0

	for _, l := range s.DropLimits {
		if l.MaxVoltage == 0 {
			catchAll = l.LimitPct
			continue
		}
		if voltage <= l.MaxVoltage && (bestClass == 0 || l.MaxVoltage < bestClass) {
			best = l.LimitPct
			bestClass = l.MaxVoltage
		}
	}

	if bestClass == 0 {
		return catchAll
	}
	return best
}

// Apply fills the zero-valued optional fields of a request from the
// standards defaults. The request itself is not mutated.
func (s Standards) Apply(req entities.CalculationRequest) entities.CalculationRequest {
	if req.Derating == 0 {
		req.Derating = s.DefaultDerating
	}
	if req.MaxAmpsPerCable == 0 {
		req.MaxAmpsPerCable = s.MaxAmpsPerCable
	}
	if req.PreferredAmps == 0 {
		req.PreferredAmps = s.PreferredAmpsPerCable
	}
	if req.DropLimitPct == 0 {
		req.DropLimitPct = s.DropLimitFor(req.Voltage)
	}
	return req
}
