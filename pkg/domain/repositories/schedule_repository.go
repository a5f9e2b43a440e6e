package repositories

import "github.com/rfoley/cablecalc/pkg/domain/entities"

// ScheduleRepository provides access to a project's cable schedule
type ScheduleRepository interface {
	// GetRun returns the cable run with the given tag
	GetRun(tag string) (*entities.CableRun, error)

	// GetAllRuns returns every run on the schedule in load order
	GetAllRuns() ([]*entities.CableRun, error)

	// SaveRun adds or replaces a run on the schedule
	SaveRun(run *entities.CableRun) error
}
