package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultUIState(t *testing.T) {
	state := DefaultUIState()
	if state == nil {
		t.Fatal("DefaultUIState returned nil")
	}
	if !state.StepNav.Visible {
		t.Error("Expected step nav to be visible by default")
	}
}

func TestLoadNonExistent(t *testing.T) {
	state := Load(filepath.Join(t.TempDir(), "missing"))
	if state == nil {
		t.Fatal("Load returned nil for non-existent file")
	}
	if !state.StepNav.Visible {
		t.Error("Expected default step nav visibility to be true")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")

	if err := Save(tmpDir, &UIState{StepNav: StepNavState{Visible: false}}); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "ui-state.json")); err != nil {
		t.Fatalf("State file was not created: %v", err)
	}

	loaded := Load(tmpDir)
	if loaded.StepNav.Visible {
		t.Error("Expected step nav visibility to round-trip as false")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "ui-state.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	state := Load(tmpDir)
	if !state.StepNav.Visible {
		t.Error("Expected defaults for malformed state file")
	}
}

func TestLoadMissingKeysKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "ui-state.json"), []byte(`{"sidebar":{"visible":false}}`), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !Load(tmpDir).StepNav.Visible {
		t.Error("Expected unknown keys to leave defaults in place")
	}
}
