// Package config provides configuration management for gpx-splitter.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Validation of loaded settings
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Output files stamped creator="gpx-splitter"
//	// Eight route colors
//	// Two files processed concurrently
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/settings.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Loaded values are validated; a settings file with an empty creator or an
// out-of-range palette size is rejected rather than silently corrected.
//
// # Saving Settings
//
//	settings.PaletteSize = 12
//	err := settings.Save("/path/to/settings.json")
package config
