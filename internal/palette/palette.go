package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultCount is the number of colors in the default palette.
const DefaultCount = 8

// maxRevolutions caps the hue walk. A configuration whose banned bands
// swallow the entire lattice fails instead of spinning.
const maxRevolutions = 8

// ErrNoUsableHue is returned when the banned bands leave no hue to accept.
var ErrNoUsableHue = errors.New("banned bands leave no usable hue")

// Band is a closed interval of hue degrees to skip.
type Band struct {
	Lo float64
	Hi float64
}

func (b Band) contains(hue float64) bool {
	return b.Lo <= hue && hue <= b.Hi
}

// Config controls color generation.
type Config struct {
	// Saturation and Value are the fixed S and V of every generated color.
	Saturation float64
	Value      float64

	// Banned lists the hue bands to skip.
	Banned []Band
}

// DefaultConfig returns the generation settings used for route colors:
// fully saturated, slightly dimmed for sunlight readability, with yellow,
// green, and light blue hues skipped.
func DefaultConfig() *Config {
	return &Config{
		Saturation: 1.0,
		Value:      0.85,
		Banned: []Band{
			{Lo: 50, Hi: 70},   // yellow
			{Lo: 100, Hi: 140}, // green
			{Lo: 180, Hi: 210}, // light blue
		},
	}
}

func (c *Config) banned(hue float64) bool {
	for _, b := range c.Banned {
		if b.contains(hue) {
			return true
		}
	}
	return false
}

// Palette is an ordered cycle of #RRGGBB colors.
type Palette []string

// Color returns the color for the i-th route (0-based), wrapping around
// when i runs past the end of the palette.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}

// Generate produces n colors by stepping the hue circle in 360/n degree
// increments from 0, skipping banned hues while still advancing, and
// wrapping at 360. Channels truncate to 8 bits. An n large enough to wrap
// revisits earlier hues, so the palette repeats; callers wanting distinct
// colors keep n small. A nil cfg uses DefaultConfig.
func Generate(n int, cfg *Config) (Palette, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if n <= 0 {
		return nil, fmt.Errorf("color count must be positive, got %d", n)
	}

	step := 360.0 / float64(n)
	hue := 0.0
	walked := 0.0
	colors := make(Palette, 0, n)
	for len(colors) < n {
		if !cfg.banned(hue) {
			colors = append(colors, hexColor(hue, cfg.Saturation, cfg.Value))
			walked = 0
		}
		hue += step
		if hue >= 360 {
			hue -= 360
		}
		walked += step
		if walked >= maxRevolutions*360 {
			return nil, ErrNoUsableHue
		}
	}
	return colors, nil
}

// Default returns the standard cycle of DefaultCount colors.
func Default() Palette {
	colors, err := Generate(DefaultCount, nil)
	if err != nil {
		// Hue 0 sits outside every default band, so the walk always
		// accepts at least one color per revolution.
		panic(err)
	}
	return colors
}

// hexColor renders an HSV color as uppercase #RRGGBB; channels truncate.
func hexColor(hue, s, v float64) string {
	c := colorful.Hsv(hue, s, v)
	return fmt.Sprintf("#%02X%02X%02X", int(c.R*255), int(c.G*255), int(c.B*255))
}
