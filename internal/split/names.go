package split

import (
	"fmt"
	"strings"

	ioutils "github.com/dverhagen/gpx-splitter/internal/io"
)

// FallbackName is the file name used when a track offers nothing usable.
const FallbackName = "deelroute"

// routeFileName derives the output file name (without extension) for the
// track at the given 1-based position. A track without a name element, or
// with an empty one, becomes deelroute_<ordinal>. A named track keeps its
// trimmed, sanitized name; when sanitizing eats everything the bare
// fallback is used, without ordinal.
func routeFileName(rawName string, ordinal int) string {
	if rawName == "" {
		return fmt.Sprintf("%s_%d", FallbackName, ordinal)
	}
	name := ioutils.SanitizeFileName(strings.TrimSpace(rawName))
	if name == "" {
		return FallbackName
	}
	return name
}

// nameAllocator hands out unique file names within one output directory.
type nameAllocator struct {
	used map[string]bool
}

func newNameAllocator() *nameAllocator {
	return &nameAllocator{used: make(map[string]bool)}
}

// claim returns name when it is still free. A collision gets _<ordinal>
// appended; if that is also taken, a counter bumps until a free name turns
// up. The first claimant keeps the bare name, so two tracks with the same
// title never overwrite each other's file.
func (a *nameAllocator) claim(name string, ordinal int) string {
	if !a.used[name] {
		a.used[name] = true
		return name
	}
	candidate := fmt.Sprintf("%s_%d", name, ordinal)
	for n := 2; a.used[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d_%d", name, ordinal, n)
	}
	a.used[candidate] = true
	return candidate
}
