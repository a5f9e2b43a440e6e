package entities

import "github.com/shopspring/decimal"

// CalculationRequest carries the inputs for a single cable sizing
// calculation. Zero-valued optional fields are filled from the standards
// table before selection; no defaults are read from process-wide state.
type CalculationRequest struct {
	LoadAmps float64 // design load current, amps
	Voltage  float64 // system voltage, volts
	LengthM  float64 // total conductor run length, metres

	Material Material      // conductor material (default Copper)
	Method   InstallMethod // installation method (default Air)
	Phase    Phase         // supply arrangement (default ThreePhase)

	Derating     float64 // derating factor ≤ 1.0, 0 = standards default
	SafetyMargin float64 // load multiplier ≥ 1.0, 0 = none

	MaxAmpsPerCable float64 // max amps permitted per single cable, 0 = standards default
	PreferredAmps   float64 // target amps per cable when splitting, 0 = standards default
	DropLimitPct    float64 // voltage-drop limit percent, 0 = standards default

	IncludeTermination bool // add per-end termination costs to the price
}

// CostBreakdown holds the priced components of a cable configuration.
// All figures are money-rounded decimals.
type CostBreakdown struct {
	Supply      decimal.Decimal
	Install     decimal.Decimal
	Termination decimal.Decimal
	Total       decimal.Decimal
}

// AlternativeConfig is one (size, parallel count) configuration priced for
// comparison against others on the same run
type AlternativeConfig struct {
	Size           string
	ParallelCount  int
	Cost           CostBreakdown
	VoltageDropPct decimal.Decimal
	Savings        decimal.Decimal
	SavingsPct     decimal.Decimal

	IsCurrentConfig bool
	ComplianceNote  string // non-empty when the configuration fails a check
}

// CalculationResult contains the complete output of a sizing calculation
type CalculationResult struct {
	Size          string // recommended cable size, empty when no selection was possible
	ParallelCount int
	PerCableAmps  float64

	EffectiveImpedance float64         // ohms per km across the parallel group
	VoltageDrop        decimal.Decimal // volts
	VoltageDropPct     decimal.Decimal // percent of system voltage

	Cost CostBreakdown

	Warnings             []ValidationWarning
	RequiresVerification bool

	// CapacitySufficient is true when the capacity-driven size also passed
	// the voltage-drop check without escalation
	CapacitySufficient bool

	// Alternatives lists compliant configurations at the chosen parallel
	// count, cheapest first, with savings relative to the most expensive
	Alternatives []AlternativeConfig
}
