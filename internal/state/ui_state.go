// Package state persists UI preferences. It never stores wizard progress:
// every run starts from the first page.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/stepwise/internal/logger"
)

const fileName = "ui-state.json"

// UIState holds persistent UI preferences that carry across runs.
type UIState struct {
	StepNav StepNavState `json:"step_nav"`
}

// StepNavState holds the step navigation visibility preference.
type StepNavState struct {
	Visible bool `json:"visible"`
}

// DefaultUIState returns the default UI state.
func DefaultUIState() *UIState {
	return &UIState{
		StepNav: StepNavState{Visible: true},
	}
}

// Load reads the UI state from dataDir/ui-state.json.
// Returns default state if the file doesn't exist or on error.
func Load(dataDir string) *UIState {
	path := filepath.Join(dataDir, fileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read UI state file: %v", err)
		}
		return DefaultUIState()
	}

	state := DefaultUIState()
	if err := json.Unmarshal(data, state); err != nil {
		logger.Warn("Failed to parse UI state JSON: %v", err)
		return DefaultUIState()
	}

	return state
}

// Save writes the UI state to dataDir/ui-state.json, creating dataDir if needed.
func Save(dataDir string, state *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling UI state: %w", err)
	}

	path := filepath.Join(dataDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing UI state file: %w", err)
	}

	logger.Debug("UI state saved to %s", path)
	return nil
}
