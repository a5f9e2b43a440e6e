package entities

import "fmt"

// CableRun represents one entry in a project's cable schedule: an installed
// or planned cable with its endpoints, load, and current configuration
type CableRun struct {
	Tag          string
	FromLocation string
	ToLocation   string
	LengthM      float64
	LoadAmps     float64
	Voltage      float64
	Phase        Phase
	Material     Material
	Method       InstallMethod

	// Current configuration on the schedule
	Size          string
	ParallelCount int
}

// NewCableRun creates a validated CableRun
func NewCableRun(tag, from, to string, lengthM, loadAmps, voltage float64,
	phase Phase, material Material, method InstallMethod, size string, parallelCount int) (*CableRun, error) {

	if tag == "" {
		return nil, fmt.Errorf("cable tag cannot be empty")
	}
	if lengthM <= 0 {
		return nil, fmt.Errorf("cable %s: length must be positive, got %v", tag, lengthM)
	}
	if loadAmps <= 0 {
		return nil, fmt.Errorf("cable %s: load must be positive, got %v", tag, loadAmps)
	}
	if voltage <= 0 {
		return nil, fmt.Errorf("cable %s: voltage must be positive, got %v", tag, voltage)
	}
	if size == "" {
		return nil, fmt.Errorf("cable %s: size cannot be empty", tag)
	}
	if parallelCount < 1 {
		return nil, fmt.Errorf("cable %s: parallel count must be at least 1, got %d", tag, parallelCount)
	}

	return &CableRun{
		Tag:           tag,
		FromLocation:  from,
		ToLocation:    to,
		LengthM:       lengthM,
		LoadAmps:      loadAmps,
		Voltage:       voltage,
		Phase:         phase,
		Material:      material,
		Method:        method,
		Size:          size,
		ParallelCount: parallelCount,
	}, nil
}

// OptimizationResult holds the ranked cost alternatives for one cable run.
// It is a derived view recomputed on demand, never persisted.
type OptimizationResult struct {
	Tag          string
	FromLocation string
	ToLocation   string
	LengthM      float64
	LoadAmps     float64
	Voltage      float64

	// Current is the run's configuration as scheduled, priced identically
	// to the alternatives
	Current AlternativeConfig

	// Alternatives is sorted by total cost ascending and includes the
	// current configuration, marked IsCurrentConfig
	Alternatives []AlternativeConfig
}
