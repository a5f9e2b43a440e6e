package tables

import (
	"testing"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
)

func TestRows_KnownMaterials(t *testing.T) {
	for _, material := range []entities.Material{entities.Copper, entities.Aluminium} {
		rows, err := Rows(material)
		if err != nil {
			t.Fatalf("Rows(%v) failed: %v", material, err)
		}
		if len(rows) == 0 {
			t.Fatalf("Rows(%v) returned empty table", material)
		}
	}
}

func TestRows_UnknownMaterial(t *testing.T) {
	_, err := Rows(entities.Material(99))
	if err == nil {
		t.Fatal("expected error for unknown material")
	}
}

func TestVerify_TableInvariants(t *testing.T) {
	for _, material := range []entities.Material{entities.Copper, entities.Aluminium} {
		if err := Verify(material); err != nil {
			t.Errorf("Verify(%v) failed: %v", material, err)
		}
	}
}

func TestRowBySize(t *testing.T) {
	row, err := RowBySize(entities.Copper, "70")
	if err != nil {
		t.Fatalf("RowBySize failed: %v", err)
	}
	if row.RatingAir != 242 {
		t.Errorf("expected 70mm² copper air rating 242, got %v", row.RatingAir)
	}

	_, err = RowBySize(entities.Copper, "747")
	if err == nil {
		t.Error("expected error for unknown size")
	}
}

func TestDropFactors_SinglePhaseHigher(t *testing.T) {
	rows, err := Rows(entities.Copper)
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	for _, row := range rows {
		if row.VoltDrop1Ph <= row.VoltDrop3Ph {
			t.Errorf("size %s: single-phase drop factor %v not above three-phase %v",
				row.Size, row.VoltDrop1Ph, row.VoltDrop3Ph)
		}
	}
}
