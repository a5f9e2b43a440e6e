package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Material represents the conductor material of a cable
type Material int

const (
	Copper Material = iota
	Aluminium
)

// String method for Material enum
func (m Material) String() string {
	switch m {
	case Copper:
		return "Copper"
	case Aluminium:
		return "Aluminium"
	default:
		return "Unknown"
	}
}

// ParseMaterial parses a conductor material from its common spellings
func ParseMaterial(s string) (Material, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copper", "cu":
		return Copper, nil
	case "aluminium", "aluminum", "al":
		return Aluminium, nil
	default:
		return Copper, fmt.Errorf("invalid material: %s", s)
	}
}

// InstallMethod represents the physical routing context of a cable run,
// which determines its continuous current rating
type InstallMethod int

const (
	Air InstallMethod = iota
	Duct
	Ground
)

// String method for InstallMethod enum
func (i InstallMethod) String() string {
	switch i {
	case Air:
		return "Air"
	case Duct:
		return "Duct"
	case Ground:
		return "Ground"
	default:
		return "Unknown"
	}
}

// ParseInstallMethod parses an installation method from its common spellings
func ParseInstallMethod(s string) (InstallMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "air":
		return Air, nil
	case "duct":
		return Duct, nil
	case "ground", "buried":
		return Ground, nil
	default:
		return Air, fmt.Errorf("invalid method: %s", s)
	}
}

// Phase represents the supply arrangement of a circuit
type Phase int

const (
	ThreePhase Phase = iota
	SinglePhase
)

// String method for Phase enum
func (p Phase) String() string {
	switch p {
	case ThreePhase:
		return "ThreePhase"
	case SinglePhase:
		return "SinglePhase"
	default:
		return "Unknown"
	}
}

// ParsePhase parses a supply arrangement from its common spellings
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "three", "3", "3ph", "threephase":
		return ThreePhase, nil
	case "single", "1", "1ph", "singlephase":
		return SinglePhase, nil
	default:
		return ThreePhase, fmt.Errorf("invalid phase: %s", s)
	}
}

// CableRatingRow holds the reference data for one cable size within a
// material table: current ratings per installation method, impedance,
// voltage-drop factors, physical dimensions, and unit costs. Tables of
// these rows are read-only reference data and are never mutated at runtime.
type CableRatingRow struct {
	Size         string  // conductor cross-section label, mm²
	RatingAir    float64 // amps, installed in free air
	RatingDuct   float64 // amps, installed in ducts
	RatingGround float64 // amps, direct buried
	ImpedanceAC  float64 // AC impedance, ohms per km
	VoltDrop3Ph  float64 // three-phase voltage drop, mV per amp metre
	VoltDrop1Ph  float64 // single-phase voltage drop, mV per amp metre
	Diameter3C   float64 // overall diameter of the 3-core variant, mm
	Mass3C       float64 // mass of the 3-core variant, kg per km
	Diameter4C   float64 // overall diameter of the 4-core variant, mm
	Mass4C       float64 // mass of the 4-core variant, kg per km

	SupplyCost  decimal.Decimal // supply cost per metre
	InstallCost decimal.Decimal // installation cost per metre
	TermCost    decimal.Decimal // termination cost per cable end
}

// Rating returns the current rating for the given installation method
func (r CableRatingRow) Rating(method InstallMethod) float64 {
	switch method {
	case Duct:
		return r.RatingDuct
	case Ground:
		return r.RatingGround
	default:
		return r.RatingAir
	}
}

// DropFactor returns the voltage-drop factor in mV per amp metre for the
// given supply arrangement
func (r CableRatingRow) DropFactor(phase Phase) float64 {
	if phase == SinglePhase {
		return r.VoltDrop1Ph
	}
	return r.VoltDrop3Ph
}
