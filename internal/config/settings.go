package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	Creator     string `json:"creator" validate:"required"`
	PaletteSize int    `json:"palette_size" validate:"min=1,max=64"`

	// Processing settings
	MaxConcurrentSplits int `json:"max_concurrent_splits" validate:"min=1,max=16"`

	// Reporting settings
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Creator:             "gpx-splitter",
		PaletteSize:         8,
		MaxConcurrentSplits: 2,
		Verbose:             false,
	}
}

// DefaultPath returns the standard location of the settings file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gpx-splitter", "settings.json"), nil
}

// Load reads settings from a JSON file.
//
// A missing file yields the defaults. A file that exists but does not
// parse, or whose values fail validation, is an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks every field against its allowed range.
func (s *Settings) Validate() error {
	v := validator.New()
	if err := v.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
