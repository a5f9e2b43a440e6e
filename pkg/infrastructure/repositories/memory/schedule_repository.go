package memory

import (
	"fmt"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/domain/repositories"
)

// ScheduleRepository provides in-memory cable schedule storage
type ScheduleRepository struct {
	runs    []entities.CableRun
	runsMap map[string]int
}

// NewScheduleRepository creates a new in-memory schedule repository
func NewScheduleRepository(expectedRuns int) *ScheduleRepository {
	return &ScheduleRepository{
		runs:    make([]entities.CableRun, 0, expectedRuns),
		runsMap: make(map[string]int, expectedRuns),
	}
}

// Verify interface compliance
var _ repositories.ScheduleRepository = (*ScheduleRepository)(nil)

// LoadRuns loads cable runs into the repository
func (r *ScheduleRepository) LoadRuns(runs []*entities.CableRun) error {
	for _, run := range runs {
		r.AddRun(*run)
	}
	return nil
}

// AddRun adds a cable run to the repository, replacing any run with the
// same tag
func (r *ScheduleRepository) AddRun(run entities.CableRun) {
	if index, exists := r.runsMap[run.Tag]; exists {
		r.runs[index] = run
		return
	}
	r.runsMap[run.Tag] = len(r.runs)
	r.runs = append(r.runs, run)
}

// GetRun returns the cable run with the given tag
func (r *ScheduleRepository) GetRun(tag string) (*entities.CableRun, error) {
	index, exists := r.runsMap[tag]
	if !exists {
		return nil, fmt.Errorf("cable run not found: %s", tag)
	}
	return &r.runs[index], nil
}

// GetAllRuns returns all cable runs in load order
func (r *ScheduleRepository) GetAllRuns() ([]*entities.CableRun, error) {
	var runs []*entities.CableRun
	for i := range r.runs {
		runs = append(runs, &r.runs[i])
	}
	return runs, nil
}

// SaveRun saves a cable run to the repository
func (r *ScheduleRepository) SaveRun(run *entities.CableRun) error {
	r.AddRun(*run)
	return nil
}
