package split

import (
	"testing"

	"github.com/beevik/etree"

	"github.com/dverhagen/gpx-splitter/internal/gpx"
)

func parseTrack(t *testing.T, trk string) *etree.Element {
	t.Helper()
	d, err := gpx.Parse([]byte(`<gpx xmlns="http://www.topografix.com/GPX/1/1">` + trk + `</gpx>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tracks := d.Tracks()
	if len(tracks) == 0 {
		t.Fatal("fixture has no tracks")
	}
	return tracks[0]
}

func genericColor(trk *etree.Element) string {
	for _, ext := range trk.ChildElements() {
		if ext.Space != "" || ext.Tag != "extensions" {
			continue
		}
		for _, c := range ext.ChildElements() {
			if c.Space == "" && c.Tag == "display_color" {
				return c.Text()
			}
		}
	}
	return ""
}

func vendorColors(trk *etree.Element) []string {
	var out []string
	for _, dc := range gpx.DescendantsByName(trk, gpx.NamespaceGarmin, "DisplayColor") {
		out = append(out, dc.Text())
	}
	return out
}

func TestAnnotator_Annotate(t *testing.T) {
	trk := parseTrack(t, `<trk><name>Rit</name><trkseg>
		<trkpt lat="52.3" lon="4.8"/>
		<trkpt lat="52.1" lon="5.2"/>
	</trkseg></trk>`)

	NewAnnotator(nil).Annotate(trk, "#D80000")

	first := trk.ChildElements()[0]
	if first.Space != "" || first.Tag != "bounds" {
		t.Errorf("first child = <%s:%s>, want <bounds>", first.Space, first.Tag)
	}
	if got := first.SelectAttrValue("minlat", ""); got != "52.1" {
		t.Errorf("bounds minlat = %q, want %q", got, "52.1")
	}
	if got := genericColor(trk); got != "#D80000" {
		t.Errorf("generic color = %q, want %q", got, "#D80000")
	}
	if got := vendorColors(trk); len(got) != 1 || got[0] != "#D80000" {
		t.Errorf("vendor colors = %v, want [#D80000]", got)
	}
}

func TestAnnotator_Annotate_Twice(t *testing.T) {
	trk := parseTrack(t, `<trk><trkseg><trkpt lat="52.0" lon="5.0"/></trkseg></trk>`)

	annotator := NewAnnotator(nil)
	annotator.Annotate(trk, "#D80000")
	annotator.Annotate(trk, "#6CD800")

	boundsCount := 0
	for _, c := range trk.ChildElements() {
		if c.Space == "" && c.Tag == "bounds" {
			boundsCount++
		}
	}
	if boundsCount != 1 {
		t.Errorf("track has %d bounds children, want 1", boundsCount)
	}
	if got := genericColor(trk); got != "#6CD800" {
		t.Errorf("generic color = %q, want %q", got, "#6CD800")
	}
	if got := vendorColors(trk); len(got) != 1 || got[0] != "#6CD800" {
		t.Errorf("vendor colors = %v, want [#6CD800]", got)
	}
}

func TestAnnotator_Annotate_NoValidPoints(t *testing.T) {
	trk := parseTrack(t, `<trk><name>leeg</name><trkseg/></trk>`)

	NewAnnotator(nil).Annotate(trk, "#D80000")

	for _, c := range trk.ChildElements() {
		if c.Space == "" && c.Tag == "bounds" {
			t.Error("bounds written for a track without points")
		}
	}
	if got := genericColor(trk); got != "#D80000" {
		t.Errorf("generic color = %q, want %q", got, "#D80000")
	}
}

func TestAnnotator_CustomConfig(t *testing.T) {
	trk := parseTrack(t, `<trk><trkseg><trkpt lat="52.0" lon="5.0"/></trkseg></trk>`)

	annotator := NewAnnotator(&AnnotateConfig{
		WriteBounds: false,
		Encodings:   []gpx.ColorEncoding{gpx.GenericColorEncoding},
	})
	annotator.Annotate(trk, "#0036D8")

	for _, c := range trk.ChildElements() {
		if c.Space == "" && c.Tag == "bounds" {
			t.Error("bounds written with WriteBounds disabled")
		}
	}
	if got := genericColor(trk); got != "#0036D8" {
		t.Errorf("generic color = %q, want %q", got, "#0036D8")
	}
	if got := vendorColors(trk); len(got) != 0 {
		t.Errorf("vendor colors = %v, want none", got)
	}
}
