package gpx

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// Namespace URIs every document this tool reads or writes is built from.
const (
	// NamespaceGPX is the generic GPX 1.1 schema.
	NamespaceGPX = "http://www.topografix.com/GPX/1/1"

	// NamespaceGarmin is the vendor schema used for the second display
	// color encoding.
	NamespaceGarmin = "http://www.garmin.com/xmlschemas/GpxExtensions/v3"
)

// ErrNoRoot is returned when a parsed document contains no root element.
var ErrNoRoot = errors.New("document has no root element")

// Document is a parsed GPX file.
type Document struct {
	doc  *etree.Document
	root *etree.Element
}

// Parse reads a GPX document from raw XML bytes.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse gpx: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse gpx: %w", ErrNoRoot)
	}
	return &Document{doc: doc, root: root}, nil
}

// ParseFile reads and parses the GPX file at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gpx: %w", err)
	}
	return Parse(data)
}

// Root returns the document's root element.
func (d *Document) Root() *etree.Element {
	return d.root
}

// Tracks returns the root's trk children in document order.
func (d *Document) Tracks() []*etree.Element {
	return ChildrenByName(d.root, NamespaceGPX, "trk")
}

// Waypoints returns the root's top-level wpt children in document order.
// Waypoints nested below other elements do not count.
func (d *Document) Waypoints() []*etree.Element {
	return ChildrenByName(d.root, NamespaceGPX, "wpt")
}

// TrackName returns the raw text of a track's name child, or "" when the
// element is missing. Only character data before the name's first child
// element counts.
func TrackName(track *etree.Element) string {
	name := ChildByName(track, NamespaceGPX, "name")
	if name == nil {
		return ""
	}
	return name.Text()
}

// BuildTrackDocument wraps an independent deep copy of track in a new
// standalone GPX document stamped with creator.
func BuildTrackDocument(track *etree.Element, creator string) *etree.Document {
	doc, root := newOutputDocument(creator)
	root.AddChild(CloneElement(track))
	return doc
}

// BuildWaypointDocument wraps independent deep copies of the waypoints, in
// the order given, in a new standalone GPX document stamped with creator.
func BuildWaypointDocument(waypoints []*etree.Element, creator string) *etree.Document {
	doc, root := newOutputDocument(creator)
	for _, wpt := range waypoints {
		root.AddChild(CloneElement(wpt))
	}
	return doc
}

// newOutputDocument creates the shared shell of every output file: an XML
// declaration and a gpx root with version, creator, and the namespace
// declarations downstream GPS tools expect.
func newOutputDocument(creator string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("gpx")
	root.CreateAttr("version", "1.1")
	root.CreateAttr("creator", creator)
	root.CreateAttr("xmlns", NamespaceGPX)
	root.CreateAttr("xmlns:gpx", NamespaceGPX)
	root.CreateAttr("xmlns:gpxt", NamespaceGarmin)
	return doc, root
}

// Serialize renders doc as indented UTF-8 XML.
func Serialize(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	return doc.WriteToBytes()
}
