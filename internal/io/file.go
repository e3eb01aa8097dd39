// Package ioutils provides file system utilities for the gpx-splitter.
//
// This package contains functions for:
//   - File writing
//   - Filename sanitization
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"os"
	"regexp"
	"strings"
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	err := WriteFile(ctx, "/routes/out/Etappe_1.gpx", routeData)
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName rewrites a route name into a safe file name.
//
// Track names come straight out of GPX documents and may hold any
// character. The rules are stricter than most operating systems require,
// so the same input maps to the same file name on every platform:
//
//   - Characters outside A-Z, a-z, 0-9, space, underscore, hyphen → underscore
//   - Spaces → underscore
//   - Leading and trailing underscores → removed (internal runs are kept)
//
// The result may be empty when the input holds nothing usable; callers
// decide the fallback name.
//
// Example:
//
//	SanitizeFileName("Ronde van Drenthe #2024") // Returns "Ronde_van_Drenthe__2024"
//	SanitizeFileName("__Etappe 1__")            // Returns "Etappe_1"
//	SanitizeFileName("###")                     // Returns ""
func SanitizeFileName(name string) string {
	// Keep letters, digits, space, underscore, hyphen; everything else
	// becomes an underscore.
	invalidChars := regexp.MustCompile(`[^A-Za-z0-9 _-]`)
	name = invalidChars.ReplaceAllString(name, "_")

	name = strings.ReplaceAll(name, " ", "_")

	return strings.Trim(name, "_")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/routes/vakantie_20240705_142311")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
