// ============================================================================
// Frege - Language Front End
// ============================================================================
//
// Package:     workbench
// Description: Settings persistence for the workbench
// Author:      msto63 with Claude
// Created:     2025-08-21
// License:     MIT
// ============================================================================

package workbench

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent workbench settings
type Settings struct {
	ShowPositions bool     `json:"show_positions"`
	InputHistory  []string `json:"input_history,omitempty"`
}

// settingsDir returns the directory for settings files
func settingsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".frege"
	}
	return filepath.Join(home, ".frege")
}

// settingsFile returns the path to the settings file
func settingsFile() string {
	return filepath.Join(settingsDir(), "workbench.json")
}

// LoadSettings loads settings from disk
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(settingsFile())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return &Settings{}, nil
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(settings *Settings) error {
	dir := settingsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(settingsFile(), data, 0644)
}

// SaveInputHistory saves the input history
func SaveInputHistory(inputs []string) error {
	settings, _ := LoadSettings()
	// Maximal 100 Einträge speichern
	if len(inputs) > 100 {
		inputs = inputs[len(inputs)-100:]
	}
	settings.InputHistory = inputs
	return SaveSettings(settings)
}

// LoadInputHistory loads the input history
func LoadInputHistory() []string {
	settings, err := LoadSettings()
	if err != nil || len(settings.InputHistory) == 0 {
		return []string{}
	}
	return settings.InputHistory
}

// SaveShowPositions saves the position display toggle
func SaveShowPositions(show bool) error {
	settings, _ := LoadSettings()
	settings.ShowPositions = show
	return SaveSettings(settings)
}

// LoadShowPositions loads the position display toggle
func LoadShowPositions() bool {
	settings, err := LoadSettings()
	if err != nil {
		return false
	}
	return settings.ShowPositions
}
