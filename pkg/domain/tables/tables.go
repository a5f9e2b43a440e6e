// Package tables holds the immutable cable reference data and the
// configurable standards values the engine sizes against. It is a pure
// lookup surface: no computation happens here beyond invariant checks.
package tables

import (
	"errors"
	"fmt"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
)

// ErrUnknownMaterial indicates a lookup for a material with no rating table
var ErrUnknownMaterial = errors.New("tables: unknown material")

// Rows returns the ordered rating rows for a material, smallest size first.
// The returned slice is shared reference data and must not be mutated.
func Rows(material entities.Material) ([]entities.CableRatingRow, error) {
	switch material {
	case entities.Copper:
		return copperRows, nil
	case entities.Aluminium:
		return aluminiumRows, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMaterial, material)
	}
}

// RowBySize returns the rating row with the given size label for a material
func RowBySize(material entities.Material, size string) (entities.CableRatingRow, error) {
	rows, err := Rows(material)
	if err != nil {
		return entities.CableRatingRow{}, err
	}
	for _, row := range rows {
		if row.Size == size {
			return row, nil
		}
	}
	return entities.CableRatingRow{}, fmt.Errorf("tables: no %v row for size %s", material, size)
}

// Verify checks the table invariants for a material: current ratings
// strictly increase with size for every installation method, and impedance
// strictly decreases. A violation indicates a reference-data entry error.
func Verify(material entities.Material) error {
	rows, err := Rows(material)
	if err != nil {
		return err
	}

	methods := []entities.InstallMethod{entities.Air, entities.Duct, entities.Ground}
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		for _, m := range methods {
			if cur.Rating(m) <= prev.Rating(m) {
				return fmt.Errorf("tables: %v %v rating does not increase from %s to %s",
					material, m, prev.Size, cur.Size)
			}
		}
		if cur.ImpedanceAC >= prev.ImpedanceAC {
			return fmt.Errorf("tables: %v impedance does not decrease from %s to %s",
				material, prev.Size, cur.Size)
		}
	}
	return nil
}
