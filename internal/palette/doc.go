// Package palette generates the display colors assigned to split routes.
//
// Colors are evenly spaced hues rendered as uppercase #RRGGBB hex. Hue
// bands that read poorly on a sunlit display (yellow, green, light blue)
// are skipped:
//
//	colors, err := palette.Generate(8, palette.DefaultConfig())
//
// The standard eight-color cycle is available as palette.Default. A
// Palette maps route positions onto colors and wraps around when a
// document holds more routes than the palette has entries.
package palette
