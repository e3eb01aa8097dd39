// Package gpx provides parsing, inspection, and construction of GPX 1.1
// documents on top of an XML element tree.
//
// # Parsing
//
// Use Parse or ParseFile to read an input document:
//
//	doc, err := gpx.ParseFile("/routes/vacation.gpx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, trk := range doc.Tracks() {
//	    fmt.Println(gpx.TrackName(trk))
//	}
//
// Tracks and Waypoints match elements by their resolved namespace URI, so
// inputs using a default namespace and inputs using an explicit prefix are
// treated the same.
//
// # Building output documents
//
// BuildTrackDocument and BuildWaypointDocument wrap deep copies of input
// elements in a fresh standalone root carrying the version, creator, and
// namespace declarations every output file needs:
//
//	out := gpx.BuildTrackDocument(trk, "gpx-splitter")
//	data, err := gpx.Serialize(out)
//
// Copies are independent of their source: mutating the original tree after
// building does not affect the output document.
//
// # Annotations
//
// TrackBounds and InsertBounds compute and inject a track's bounding box.
// ColorEncoding describes where a display color lives in a track's
// extension tree; GenericColorEncoding and VendorColorEncoding are the two
// encodings every split route carries.
package gpx
