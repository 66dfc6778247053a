package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/dxf-takeoff/internal/model"
)

// maxHistoryEntries caps the estimate history file; older entries are
// dropped first.
const maxHistoryEntries = 100

// DefaultHistoryPath returns the default file path for the estimate history.
func DefaultHistoryPath() string {
	return filepath.Join(DefaultConfigDir(), "estimates.json")
}

// LoadHistory reads the estimate history from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadHistory(path string) ([]model.Estimate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Estimate{}, nil
		}
		return nil, err
	}

	var estimates []model.Estimate
	if err := json.Unmarshal(data, &estimates); err != nil {
		return nil, err
	}
	return estimates, nil
}

// SaveHistory writes the estimate history to a JSON file, creating any
// missing parent directories.
func SaveHistory(path string, estimates []model.Estimate) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(estimates, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AppendEstimate adds one estimate to the history file, trimming the
// oldest entries beyond maxHistoryEntries.
func AppendEstimate(path string, est model.Estimate) error {
	estimates, err := LoadHistory(path)
	if err != nil {
		return err
	}
	estimates = append(estimates, est)
	if len(estimates) > maxHistoryEntries {
		estimates = estimates[len(estimates)-maxHistoryEntries:]
	}
	return SaveHistory(path, estimates)
}
