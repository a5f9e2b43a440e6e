package optimize

import (
	"testing"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
	"github.com/rfoley/cablecalc/pkg/domain/tables"
)

func newTestOptimizer() *Optimizer {
	return NewOptimizer(tables.DefaultStandards())
}

func oversizedRun(t *testing.T) entities.CableRun {
	t.Helper()
	// A 60A feeder scheduled on 185mm²: grossly oversized, so cheaper
	// compliant alternatives must exist.
	run, err := entities.NewCableRun("FDR-01", "MSB", "DB-1", 40, 60, 400,
		entities.ThreePhase, entities.Copper, entities.Air, "185", 1)
	if err != nil {
		t.Fatalf("NewCableRun failed: %v", err)
	}
	return *run
}

func TestOptimizeRun_FindsSavings(t *testing.T) {
	result, err := newTestOptimizer().OptimizeRun(oversizedRun(t))
	if err != nil {
		t.Fatalf("OptimizeRun failed: %v", err)
	}

	if len(result.Alternatives) < 2 {
		t.Fatalf("expected alternatives for an oversized run, got %d", len(result.Alternatives))
	}

	cheapest := result.Alternatives[0]
	if cheapest.IsCurrentConfig {
		t.Error("expected a cheaper alternative than the current 185mm²")
	}
	if !cheapest.Savings.IsPositive() {
		t.Errorf("expected positive savings on the cheapest alternative, got %s", cheapest.Savings)
	}
	if !cheapest.SavingsPct.IsPositive() {
		t.Errorf("expected positive savings percent, got %s", cheapest.SavingsPct)
	}

	// Savings = current total - alternative total
	want := result.Current.Cost.Total.Sub(cheapest.Cost.Total)
	if !cheapest.Savings.Equal(want) {
		t.Errorf("expected savings %s, got %s", want, cheapest.Savings)
	}
}

func TestOptimizeRun_AlternativesSortedAscending(t *testing.T) {
	result, err := newTestOptimizer().OptimizeRun(oversizedRun(t))
	if err != nil {
		t.Fatalf("OptimizeRun failed: %v", err)
	}

	for i := 1; i < len(result.Alternatives); i++ {
		if result.Alternatives[i].Cost.Total.LessThan(result.Alternatives[i-1].Cost.Total) {
			t.Fatal("alternatives are not sorted by total cost ascending")
		}
	}
}

func TestOptimizeRun_CurrentConfigMarkedInline(t *testing.T) {
	result, err := newTestOptimizer().OptimizeRun(oversizedRun(t))
	if err != nil {
		t.Fatalf("OptimizeRun failed: %v", err)
	}

	found := 0
	for _, alt := range result.Alternatives {
		if alt.IsCurrentConfig {
			found++
			if alt.Size != "185" || alt.ParallelCount != 1 {
				t.Errorf("current marker on wrong configuration: %s x%d", alt.Size, alt.ParallelCount)
			}
			if !alt.Savings.IsZero() {
				t.Errorf("current configuration must have zero savings, got %s", alt.Savings)
			}
		}
	}
	if found != 1 {
		t.Errorf("expected exactly one current configuration in the list, found %d", found)
	}
}

func TestOptimizeRun_DiscardsNonCompliantAlternatives(t *testing.T) {
	result, err := newTestOptimizer().OptimizeRun(oversizedRun(t))
	if err != nil {
		t.Fatalf("OptimizeRun failed: %v", err)
	}

	std := tables.DefaultStandards()
	for _, alt := range result.Alternatives {
		if alt.IsCurrentConfig {
			continue
		}
		row, err := tables.RowBySize(entities.Copper, alt.Size)
		if err != nil {
			t.Fatalf("RowBySize failed: %v", err)
		}
		perCable := 60.0 / float64(alt.ParallelCount)
		if row.RatingAir < perCable {
			t.Errorf("non-compliant alternative survived: %s x%d", alt.Size, alt.ParallelCount)
		}
		if alt.ParallelCount > std.MaxParallelRuns {
			t.Errorf("alternative exceeds the parallel ceiling: x%d", alt.ParallelCount)
		}
	}
}

func TestOptimizeRun_UndersizedCurrentAnnotated(t *testing.T) {
	// 200A scheduled on a single 25mm² (128A in air): the current
	// configuration stays in the list but carries a compliance note.
	run, err := entities.NewCableRun("FDR-02", "MSB", "DB-2", 30, 200, 400,
		entities.ThreePhase, entities.Copper, entities.Air, "25", 1)
	if err != nil {
		t.Fatalf("NewCableRun failed: %v", err)
	}

	result, err := newTestOptimizer().OptimizeRun(*run)
	if err != nil {
		t.Fatalf("OptimizeRun failed: %v", err)
	}

	if result.Current.ComplianceNote == "" {
		t.Error("expected a compliance annotation on the undersized current configuration")
	}

	for _, alt := range result.Alternatives {
		if alt.IsCurrentConfig && alt.ComplianceNote == "" {
			t.Error("inline current configuration lost its compliance annotation")
		}
	}
}

func TestOptimizeSchedule_IndependentRuns(t *testing.T) {
	run1 := oversizedRun(t)
	run2, err := entities.NewCableRun("FDR-03", "MSB", "DB-3", 120, 80, 400,
		entities.ThreePhase, entities.Aluminium, entities.Duct, "95", 1)
	if err != nil {
		t.Fatalf("NewCableRun failed: %v", err)
	}

	results, err := newTestOptimizer().OptimizeSchedule([]entities.CableRun{run1, *run2})
	if err != nil {
		t.Fatalf("OptimizeSchedule failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected one result per run, got %d", len(results))
	}
	if results[0].Tag != "FDR-01" || results[1].Tag != "FDR-03" {
		t.Errorf("results out of order: %s, %s", results[0].Tag, results[1].Tag)
	}
}

func TestOptimizeRun_UnknownScheduledSize(t *testing.T) {
	run := oversizedRun(t)
	run.Size = "999"

	if _, err := newTestOptimizer().OptimizeRun(run); err == nil {
		t.Fatal("expected error for a scheduled size missing from the table")
	}
}
