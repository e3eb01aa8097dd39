package gpx

import (
	"testing"

	"github.com/beevik/etree"
)

func parseXML(t *testing.T, s string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		t.Fatalf("ReadFromString: %v", err)
	}
	return doc
}

func TestResolveNamespace(t *testing.T) {
	doc := parseXML(t, `<root xmlns="uri:default" xmlns:v="uri:vendor"><child/><v:child/><inner><deep/></inner><x:orphan/></root>`)
	root := doc.Root()
	kids := root.ChildElements()

	tests := []struct {
		name string
		el   *etree.Element
		want string
	}{
		{"unprefixed child inherits default", kids[0], "uri:default"},
		{"prefixed child", kids[1], "uri:vendor"},
		{"nested element inherits default", kids[2].ChildElements()[0], "uri:default"},
		{"undeclared prefix", kids[3], ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveNamespace(tt.el); got != tt.want {
				t.Errorf("ResolveNamespace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChildrenByName_MixedPrefixes(t *testing.T) {
	doc := parseXML(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1" xmlns:g="http://www.topografix.com/GPX/1/1"><trk/><g:trk/><other/></gpx>`)
	root := doc.Root()

	got := ChildrenByName(root, NamespaceGPX, "trk")
	if len(got) != 2 {
		t.Fatalf("ChildrenByName() returned %d tracks, want 2", len(got))
	}
	if got[0].Space != "" || got[1].Space != "g" {
		t.Errorf("tracks out of document order: spaces %q, %q", got[0].Space, got[1].Space)
	}
}

func TestChildByName(t *testing.T) {
	doc := parseXML(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1"><name>first</name><name>second</name></gpx>`)
	root := doc.Root()

	name := ChildByName(root, NamespaceGPX, "name")
	if name == nil {
		t.Fatal("ChildByName() = nil, want element")
	}
	if name.Text() != "first" {
		t.Errorf("ChildByName() picked %q, want the first match", name.Text())
	}
	if missing := ChildByName(root, NamespaceGPX, "trk"); missing != nil {
		t.Errorf("ChildByName() for absent element = %v, want nil", missing)
	}
}

func TestDescendantsByName_DocumentOrder(t *testing.T) {
	doc := parseXML(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1"><trk>
		<trkseg><trkpt lat="1" lon="0"/><trkpt lat="2" lon="0"/></trkseg>
		<trkseg><trkpt lat="3" lon="0"/></trkseg>
	</trk></gpx>`)
	trk := doc.Root().ChildElements()[0]

	pts := DescendantsByName(trk, NamespaceGPX, "trkpt")
	if len(pts) != 3 {
		t.Fatalf("DescendantsByName() returned %d points, want 3", len(pts))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := pts[i].SelectAttrValue("lat", ""); got != want {
			t.Errorf("point %d lat = %q, want %q", i, got, want)
		}
	}
}

func TestCloneElement_ResolvesDetached(t *testing.T) {
	d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1" xmlns:gpxt="http://www.garmin.com/xmlschemas/GpxExtensions/v3">
		<trk>
			<name>Rit</name>
			<trkseg><trkpt lat="52.1" lon="5.1"/><trkpt lat="52.2" lon="5.2"/></trkseg>
			<extensions><gpxt:TrackExtension><gpxt:DisplayColor>Red</gpxt:DisplayColor></gpxt:TrackExtension></extensions>
		</trk>
	</gpx>`)
	trk := d.Tracks()[0]

	clone := CloneElement(trk)
	if clone.Parent() != nil {
		t.Fatal("clone should be detached from the source document")
	}

	// The declarations lived on the source root; the clone must still
	// resolve without it.
	if got := len(DescendantsByName(clone, NamespaceGPX, "trkpt")); got != 2 {
		t.Errorf("clone resolves %d trkpt descendants, want 2", got)
	}
	colors := DescendantsByName(clone, NamespaceGarmin, "DisplayColor")
	if len(colors) != 1 {
		t.Fatalf("clone resolves %d DisplayColor descendants, want 1", len(colors))
	}
	if colors[0].Text() != "Red" {
		t.Errorf("DisplayColor text = %q, want %q", colors[0].Text(), "Red")
	}
}

func TestCloneElement_KeepsOwnDeclarations(t *testing.T) {
	doc := parseXML(t, `<root><trk xmlns="http://www.topografix.com/GPX/1/1"><trkseg/></trk></root>`)
	trk := doc.Root().ChildElements()[0]

	clone := CloneElement(trk)
	count := 0
	for _, a := range clone.Attr {
		if a.Space == "" && a.Key == "xmlns" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("clone carries %d xmlns declarations, want 1", count)
	}
}

func TestCloneElement_Independent(t *testing.T) {
	d := mustParse(t, `<gpx xmlns="http://www.topografix.com/GPX/1/1"><trk><name>before</name></trk></gpx>`)
	trk := d.Tracks()[0]

	clone := CloneElement(trk)
	ChildByName(trk, NamespaceGPX, "name").SetText("after")

	if got := ChildByName(clone, NamespaceGPX, "name").Text(); got != "before" {
		t.Errorf("clone name = %q, want %q", got, "before")
	}
}
