package memory

import (
	"strings"
	"testing"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
)

func testRun(t *testing.T, tag, size string) *entities.CableRun {
	t.Helper()
	run, err := entities.NewCableRun(tag, "MSB", "DB-1", 40, 100, 400,
		entities.ThreePhase, entities.Copper, entities.Air, size, 1)
	if err != nil {
		t.Fatalf("NewCableRun failed: %v", err)
	}
	return run
}

func TestScheduleRepository_SaveRun(t *testing.T) {
	repo := NewScheduleRepository(10)

	run := testRun(t, "FDR-01", "35")

	err := repo.SaveRun(run)
	if err != nil {
		t.Fatalf("Failed to save run: %v", err)
	}

	retrieved, err := repo.GetRun("FDR-01")
	if err != nil {
		t.Fatalf("Failed to get run: %v", err)
	}

	if retrieved.Tag != run.Tag {
		t.Errorf("Expected tag %s, got %s", run.Tag, retrieved.Tag)
	}
	if retrieved.Size != run.Size {
		t.Errorf("Expected size %s, got %s", run.Size, retrieved.Size)
	}
	if retrieved.FromLocation != run.FromLocation {
		t.Errorf("Expected from location %s, got %s", run.FromLocation, retrieved.FromLocation)
	}
}

func TestScheduleRepository_SaveRun_ReplacesExistingTag(t *testing.T) {
	repo := NewScheduleRepository(10)

	if err := repo.SaveRun(testRun(t, "FDR-01", "35")); err != nil {
		t.Fatalf("Failed to save run: %v", err)
	}
	if err := repo.SaveRun(testRun(t, "FDR-01", "50")); err != nil {
		t.Fatalf("Failed to save replacement run: %v", err)
	}

	retrieved, err := repo.GetRun("FDR-01")
	if err != nil {
		t.Fatalf("Failed to get run: %v", err)
	}
	if retrieved.Size != "50" {
		t.Errorf("Expected replacement size 50, got %s", retrieved.Size)
	}

	all, err := repo.GetAllRuns()
	if err != nil {
		t.Fatalf("Failed to get all runs: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 run after replacement, got %d", len(all))
	}
}

func TestScheduleRepository_LoadRuns_PreservesOrder(t *testing.T) {
	repo := NewScheduleRepository(10)

	runs := []*entities.CableRun{
		testRun(t, "FDR-01", "35"),
		testRun(t, "FDR-02", "70"),
		testRun(t, "FDR-03", "120"),
	}

	if err := repo.LoadRuns(runs); err != nil {
		t.Fatalf("Failed to load runs: %v", err)
	}

	all, err := repo.GetAllRuns()
	if err != nil {
		t.Fatalf("Failed to get all runs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(all))
	}
	for i, want := range []string{"FDR-01", "FDR-02", "FDR-03"} {
		if all[i].Tag != want {
			t.Errorf("Expected tag %s at position %d, got %s", want, i, all[i].Tag)
		}
	}
}

func TestScheduleRepository_GetRun_NotFound(t *testing.T) {
	repo := NewScheduleRepository(10)

	_, err := repo.GetRun("NONEXISTENT")
	if err == nil {
		t.Error("Expected error for nonexistent run, got none")
	}

	if !strings.Contains(err.Error(), "cable run not found") {
		t.Errorf("Expected error message to contain 'cable run not found', got: %v", err)
	}
}
