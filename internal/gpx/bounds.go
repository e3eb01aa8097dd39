package gpx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Bounds is the minimal axis-aligned rectangle around a set of points.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// TrackBounds computes the bounding box over every trkpt descendant of
// track. A point counts only when both its lat and lon attributes parse as
// floats; points failing either are skipped whole. Returns nil when no
// point qualifies.
func TrackBounds(track *etree.Element) *Bounds {
	var b *Bounds
	for _, pt := range DescendantsByName(track, NamespaceGPX, "trkpt") {
		latRaw := strings.TrimSpace(pt.SelectAttrValue("lat", ""))
		lonRaw := strings.TrimSpace(pt.SelectAttrValue("lon", ""))
		if latRaw == "" || lonRaw == "" {
			continue
		}
		lat, err := strconv.ParseFloat(latRaw, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(lonRaw, 64)
		if err != nil {
			continue
		}
		if b == nil {
			b = &Bounds{MinLat: lat, MinLon: lon, MaxLat: lat, MaxLon: lon}
			continue
		}
		b.MinLat = min(b.MinLat, lat)
		b.MinLon = min(b.MinLon, lon)
		b.MaxLat = max(b.MaxLat, lat)
		b.MaxLon = max(b.MaxLon, lon)
	}
	return b
}

// InsertBounds writes b as a bounds element at position 0 of track, ahead
// of any existing children. An unprefixed bounds child left by an earlier
// run is replaced, not duplicated. A nil b leaves the track untouched.
func InsertBounds(track *etree.Element, b *Bounds) {
	if b == nil {
		return
	}
	for _, c := range track.ChildElements() {
		if c.Space == "" && c.Tag == "bounds" {
			track.RemoveChild(c)
		}
	}
	el := etree.NewElement("bounds")
	el.CreateAttr("minlat", formatCoord(b.MinLat))
	el.CreateAttr("minlon", formatCoord(b.MinLon))
	el.CreateAttr("maxlat", formatCoord(b.MaxLat))
	el.CreateAttr("maxlon", formatCoord(b.MaxLon))
	track.InsertChildAt(0, el)
}

// formatCoord renders a coordinate with Go's shortest exact representation,
// no fixed precision.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
