// Package ioutils provides file system utilities.
//
// This package contains functions for:
//   - File writing
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//
// # File Operations
//
//	// Write a finished route document
//	err := ioutils.WriteFile(ctx, "/routes/out/Etappe_1.gpx", data)
//
//	// Ensure the output directory exists
//	err := ioutils.EnsureDir("/routes/vakantie_20240705_142311")
//
// # Filename Sanitization
//
// Use SanitizeFileName to turn a track name into a safe file name:
//
//	safe := ioutils.SanitizeFileName("Ronde van Drenthe #2024") // Returns "Ronde_van_Drenthe__2024"
package ioutils
