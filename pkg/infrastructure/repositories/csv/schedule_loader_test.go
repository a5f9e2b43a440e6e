package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
)

func writeScheduleFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write schedule file: %v", err)
	}
	return path
}

func TestLoadSchedule(t *testing.T) {
	path := writeScheduleFile(t, strings.Join([]string{
		"tag,from,to,length_m,load_amps,voltage,phase,material,method,size,parallel_count",
		"FDR-01,MSB,DB-1,40,60,400,three,copper,air,35,1",
		"FDR-02,MSB,DB-2,120,250,400,3ph,aluminium,duct,185,2",
		"LTG-01,DB-1,LP-1,85,18,230,single,cu,ground,4,1",
	}, "\n"))

	runs, err := NewLoader().LoadSchedule(path)
	if err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	first := runs[0]
	if first.Tag != "FDR-01" {
		t.Errorf("Expected tag FDR-01, got %s", first.Tag)
	}
	if first.LengthM != 40 || first.LoadAmps != 60 || first.Voltage != 400 {
		t.Errorf("Unexpected numeric fields: %v %v %v", first.LengthM, first.LoadAmps, first.Voltage)
	}
	if first.Phase != entities.ThreePhase || first.Material != entities.Copper || first.Method != entities.Air {
		t.Errorf("Unexpected enum fields: %v %v %v", first.Phase, first.Material, first.Method)
	}

	second := runs[1]
	if second.Material != entities.Aluminium || second.Method != entities.Duct {
		t.Errorf("Unexpected enum fields: %v %v", second.Material, second.Method)
	}
	if second.ParallelCount != 2 {
		t.Errorf("Expected parallel count 2, got %d", second.ParallelCount)
	}

	third := runs[2]
	if third.Phase != entities.SinglePhase || third.Method != entities.Ground {
		t.Errorf("Unexpected enum fields: %v %v", third.Phase, third.Method)
	}
}

func TestLoadSchedule_HeaderMismatch(t *testing.T) {
	path := writeScheduleFile(t, strings.Join([]string{
		"tag,from,to,length,amps,volts,phase,material,method,size,parallel_count",
		"FDR-01,MSB,DB-1,40,60,400,three,copper,air,35,1",
	}, "\n"))

	_, err := NewLoader().LoadSchedule(path)
	if err == nil {
		t.Fatal("Expected header mismatch error, got none")
	}
	if !strings.Contains(err.Error(), "header mismatch") {
		t.Errorf("Expected error to mention header mismatch, got: %v", err)
	}
}

func TestLoadSchedule_RowErrorsCarryRowNumber(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{name: "bad_length", row: "FDR-01,MSB,DB-1,forty,60,400,three,copper,air,35,1", want: "invalid length_m"},
		{name: "bad_phase", row: "FDR-01,MSB,DB-1,40,60,400,two,copper,air,35,1", want: "invalid phase"},
		{name: "bad_material", row: "FDR-01,MSB,DB-1,40,60,400,three,steel,air,35,1", want: "invalid material"},
		{name: "bad_method", row: "FDR-01,MSB,DB-1,40,60,400,three,copper,tray,35,1", want: "invalid method"},
		{name: "bad_parallel", row: "FDR-01,MSB,DB-1,40,60,400,three,copper,air,35,zero", want: "invalid parallel_count"},
		{name: "negative_load", row: "FDR-01,MSB,DB-1,40,-60,400,three,copper,air,35,1", want: "load must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScheduleFile(t, strings.Join([]string{
				"tag,from,to,length_m,load_amps,voltage,phase,material,method,size,parallel_count",
				tt.row,
			}, "\n"))

			_, err := NewLoader().LoadSchedule(path)
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error to contain %q, got: %v", tt.want, err)
			}
			if !strings.Contains(err.Error(), "row 2") {
				t.Errorf("Expected error to carry row number, got: %v", err)
			}
		})
	}
}

func TestLoadSchedule_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadSchedule(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file, got none")
	}
}

func TestLoadSchedule_HeaderOnly(t *testing.T) {
	path := writeScheduleFile(t,
		"tag,from,to,length_m,load_amps,voltage,phase,material,method,size,parallel_count\n")

	_, err := NewLoader().LoadSchedule(path)
	if err == nil {
		t.Fatal("Expected error for header-only file, got none")
	}
}
