package split

import (
	"github.com/beevik/etree"

	"github.com/dverhagen/gpx-splitter/internal/gpx"
)

// AnnotateConfig controls which annotations a route receives.
//
// Each part can be toggled independently, so callers that only want
// colors, or only a bounding box, configure that here.
type AnnotateConfig struct {
	// WriteBounds toggles bounding box computation and injection.
	WriteBounds bool

	// Encodings lists the color encodings written to each route.
	Encodings []gpx.ColorEncoding
}

// DefaultAnnotateConfig returns the annotation set every split route gets:
// the generic and vendor display colors plus a bounding box.
func DefaultAnnotateConfig() *AnnotateConfig {
	return &AnnotateConfig{
		WriteBounds: true,
		Encodings: []gpx.ColorEncoding{
			gpx.GenericColorEncoding,
			gpx.VendorColorEncoding,
		},
	}
}

// Annotator applies display colors and a bounding box to track elements.
type Annotator struct {
	config *AnnotateConfig
}

// NewAnnotator creates a new Annotator with the given configuration.
// If config is nil, DefaultAnnotateConfig is used.
func NewAnnotator(config *AnnotateConfig) *Annotator {
	if config == nil {
		config = DefaultAnnotateConfig()
	}
	return &Annotator{config: config}
}

// Annotate writes color through every configured encoding and injects the
// track's bounding box as its first child. Annotating the same track again
// updates what is there instead of duplicating it. A track without valid
// points gets no bounds element.
func (a *Annotator) Annotate(track *etree.Element, color string) {
	for _, enc := range a.config.Encodings {
		enc.Apply(track, color)
	}
	if a.config.WriteBounds {
		gpx.InsertBounds(track, gpx.TrackBounds(track))
	}
}
