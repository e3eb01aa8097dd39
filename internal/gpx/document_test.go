package gpx

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	d, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated tag", "<gpx"},
		{"unclosed element", "<gpx><trk>"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Errorf("Parse(%q) = nil error, want error", tt.input)
			}
		})
	}

	if _, err := Parse(nil); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Parse(nil) error = %v, want ErrNoRoot", err)
	}
}

func TestDocument_Tracks(t *testing.T) {
	d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1">
		<trk><name>Etappe 1</name></trk>
		<trk><name>Etappe 2</name></trk>
	</gpx>`)

	tracks := d.Tracks()
	if len(tracks) != 2 {
		t.Fatalf("Tracks() returned %d tracks, want 2", len(tracks))
	}
	for i, want := range []string{"Etappe 1", "Etappe 2"} {
		if got := TrackName(tracks[i]); got != want {
			t.Errorf("track %d name = %q, want %q", i, got, want)
		}
	}
}

func TestDocument_Tracks_ExplicitPrefix(t *testing.T) {
	d := mustParse(t, `<g:gpx xmlns:g="http://www.topografix.com/GPX/1/1"><g:trk><g:name>Rondje</g:name></g:trk></g:gpx>`)

	tracks := d.Tracks()
	if len(tracks) != 1 {
		t.Fatalf("Tracks() returned %d tracks, want 1", len(tracks))
	}
	if got := TrackName(tracks[0]); got != "Rondje" {
		t.Errorf("TrackName() = %q, want %q", got, "Rondje")
	}
}

func TestDocument_Tracks_OutsideNamespace(t *testing.T) {
	d := mustParse(t, `<gpx><trk><name>bare</name></trk></gpx>`)

	if got := len(d.Tracks()); got != 0 {
		t.Errorf("Tracks() on non-namespaced input returned %d tracks, want 0", got)
	}
}

func TestDocument_Waypoints_TopLevelOnly(t *testing.T) {
	d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1">
		<wpt lat="52.0" lon="5.0"><name>A</name></wpt>
		<trk><wpt lat="0" lon="0"><name>nested</name></wpt></trk>
		<wpt lat="52.1" lon="5.1"><name>B</name></wpt>
	</gpx>`)

	wpts := d.Waypoints()
	if len(wpts) != 2 {
		t.Fatalf("Waypoints() returned %d waypoints, want 2", len(wpts))
	}
	for i, want := range []string{"A", "B"} {
		got := ChildByName(wpts[i], NamespaceGPX, "name").Text()
		if got != want {
			t.Errorf("waypoint %d name = %q, want %q", i, got, want)
		}
	}
}

func TestTrackName(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing name", `<trk></trk>`, ""},
		{"plain", `<trk><name>Veluwe</name></trk>`, "Veluwe"},
		{"surrounding whitespace kept", `<trk><name>  Veluwe </name></trk>`, "  Veluwe "},
		{"text before first child only", `<trk><name>Veluwe<sub>x</sub>tail</name></trk>`, "Veluwe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1">`+tt.doc+`</gpx>`)
			if got := TrackName(d.Tracks()[0]); got != tt.want {
				t.Errorf("TrackName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildTrackDocument(t *testing.T) {
	d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1">
		<trk><name>Etappe 3</name><trkseg><trkpt lat="52.1" lon="5.1"/></trkseg></trk>
	</gpx>`)
	trk := d.Tracks()[0]

	out, err := Serialize(BuildTrackDocument(trk, "gpx-splitter-test"))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	s := string(out)

	if !strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("output missing XML declaration")
	}
	openTag := `<gpx version="1.1" creator="gpx-splitter-test" xmlns="http://www.topografix.com/GPX/1/1" xmlns:gpx="http://www.topografix.com/GPX/1/1" xmlns:gpxt="http://www.garmin.com/xmlschemas/GpxExtensions/v3">`
	if !strings.Contains(s, openTag) {
		t.Errorf("output root tag mismatch:\n%s", s)
	}

	reparsed := mustParse(t, s)
	tracks := reparsed.Tracks()
	if len(tracks) != 1 {
		t.Fatalf("round trip produced %d tracks, want 1", len(tracks))
	}
	if got := TrackName(tracks[0]); got != "Etappe 3" {
		t.Errorf("round trip name = %q, want %q", got, "Etappe 3")
	}
	if got := len(DescendantsByName(tracks[0], NamespaceGPX, "trkpt")); got != 1 {
		t.Errorf("round trip has %d trkpt, want 1", got)
	}
}

func TestBuildTrackDocument_IndependentOfSource(t *testing.T) {
	d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1"><trk><name>origineel</name></trk></gpx>`)
	trk := d.Tracks()[0]

	built := BuildTrackDocument(trk, "test")
	ChildByName(trk, NamespaceGPX, "name").SetText("gewijzigd")

	out, err := Serialize(built)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if strings.Contains(string(out), "gewijzigd") {
		t.Error("output document changed along with the source track")
	}
	if !strings.Contains(string(out), "origineel") {
		t.Error("output document lost the original name")
	}
}

func TestBuildWaypointDocument_KeepsOrder(t *testing.T) {
	d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1">
		<wpt lat="1" lon="1"><name>Start</name></wpt>
		<wpt lat="2" lon="2"><name>Pauze</name></wpt>
		<wpt lat="3" lon="3"><name>Finish</name></wpt>
	</gpx>`)

	out, err := Serialize(BuildWaypointDocument(d.Waypoints(), "test"))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	reparsed := mustParse(t, string(out))
	wpts := reparsed.Waypoints()
	if len(wpts) != 3 {
		t.Fatalf("round trip produced %d waypoints, want 3", len(wpts))
	}
	for i, want := range []string{"Start", "Pauze", "Finish"} {
		got := ChildByName(wpts[i], NamespaceGPX, "name").Text()
		if got != want {
			t.Errorf("waypoint %d name = %q, want %q", i, got, want)
		}
	}
}

func TestSerialize_Indents(t *testing.T) {
	d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1"><trk><name>Rit</name></trk></gpx>`)

	out, err := Serialize(BuildTrackDocument(d.Tracks()[0], "test"))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(string(out), "\n  <trk") {
		t.Errorf("output not indented:\n%s", out)
	}
}
