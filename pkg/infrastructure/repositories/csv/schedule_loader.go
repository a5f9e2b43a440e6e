package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
)

// Loader handles loading cable schedule data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadSchedule loads cable runs from a CSV file
func (l *Loader) LoadSchedule(filename string) ([]*entities.CableRun, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("schedule CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"tag", "from", "to", "length_m", "load_amps", "voltage", "phase", "material", "method", "size", "parallel_count"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("schedule CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var runs []*entities.CableRun
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("schedule CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		run, err := parseCableRun(record)
		if err != nil {
			return nil, fmt.Errorf("schedule CSV row %d: %w", i+2, err)
		}

		runs = append(runs, run)
	}

	return runs, nil
}

func parseCableRun(record []string) (*entities.CableRun, error) {
	tag := strings.TrimSpace(record[0])
	from := strings.TrimSpace(record[1])
	to := strings.TrimSpace(record[2])

	lengthM, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid length_m: %s", record[3])
	}

	loadAmps, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid load_amps: %s", record[4])
	}

	voltage, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid voltage: %s", record[5])
	}

	phase, err := entities.ParsePhase(record[6])
	if err != nil {
		return nil, err
	}

	material, err := entities.ParseMaterial(record[7])
	if err != nil {
		return nil, err
	}

	method, err := entities.ParseInstallMethod(record[8])
	if err != nil {
		return nil, err
	}

	size := strings.TrimSpace(record[9])

	parallelCount, err := strconv.Atoi(strings.TrimSpace(record[10]))
	if err != nil {
		return nil, fmt.Errorf("invalid parallel_count: %s", record[10])
	}

	return entities.NewCableRun(tag, from, to, lengthM, loadAmps, voltage,
		phase, material, method, size, parallelCount)
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}
