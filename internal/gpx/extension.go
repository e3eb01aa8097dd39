package gpx

import "github.com/beevik/etree"

// Name identifies an element within a color encoding path. An empty URI
// means the element is unprefixed: it matches children with no prefix and
// is created without one. A non-empty URI matches by resolved namespace, so
// any prefix bound to that URI counts; creation uses the given Prefix.
type Name struct {
	Prefix string
	URI    string
	Local  string
}

// ColorEncoding describes where a display color lives inside a track.
//
// With MatchAnywhere unset, Apply walks Path step by step from the track,
// reusing a matching child at each level and creating the rest. With
// MatchAnywhere set, Apply searches the whole subtree for the final Path
// element and updates it in place; only when none exists does it append the
// full chain as a fresh block.
type ColorEncoding struct {
	Path          []Name
	MatchAnywhere bool
}

// GenericColorEncoding stores the color as an unprefixed
// extensions/display_color pair directly under the track.
var GenericColorEncoding = ColorEncoding{
	Path: []Name{
		{Local: "extensions"},
		{Local: "display_color"},
	},
}

// VendorColorEncoding stores the color as a Garmin TrackExtension
// DisplayColor. Existing DisplayColor elements anywhere under the track are
// updated regardless of their prefix.
var VendorColorEncoding = ColorEncoding{
	Path: []Name{
		{Prefix: "gpx", URI: NamespaceGPX, Local: "extensions"},
		{Prefix: "gpxt", URI: NamespaceGarmin, Local: "TrackExtension"},
		{Prefix: "gpxt", URI: NamespaceGarmin, Local: "DisplayColor"},
	},
	MatchAnywhere: true,
}

// Apply writes value into track at the location the encoding describes.
// Applying the same encoding twice updates the element written the first
// time instead of adding a second one.
func (enc ColorEncoding) Apply(track *etree.Element, value string) {
	if len(enc.Path) == 0 {
		return
	}
	if enc.MatchAnywhere {
		last := enc.Path[len(enc.Path)-1]
		if found := firstDescendant(track, last); found != nil {
			found.SetText(value)
			return
		}
		enc.appendFresh(track, value)
		return
	}
	cur := track
	for _, name := range enc.Path {
		next := findDirectChild(cur, name)
		if next == nil {
			next = cur.CreateElement(qualified(name))
		}
		cur = next
	}
	cur.SetText(value)
}

// appendFresh builds the full Path chain as a new last child of track. The
// chain's root declares every namespace the chain uses, so the block stays
// resolvable even when serialized on its own.
func (enc ColorEncoding) appendFresh(track *etree.Element, value string) {
	root := etree.NewElement(qualified(enc.Path[0]))
	declareChainNamespaces(root, enc.Path)
	cur := root
	for _, name := range enc.Path[1:] {
		cur = cur.CreateElement(qualified(name))
	}
	cur.SetText(value)
	track.AddChild(root)
}

// declareChainNamespaces adds an xmlns declaration on root for each
// distinct prefix the path uses.
func declareChainNamespaces(root *etree.Element, path []Name) {
	seen := make(map[string]bool)
	for _, name := range path {
		if name.Prefix == "" || name.URI == "" || seen[name.Prefix] {
			continue
		}
		seen[name.Prefix] = true
		root.CreateAttr("xmlns:"+name.Prefix, name.URI)
	}
}

func matches(e *etree.Element, name Name) bool {
	if e.Tag != name.Local {
		return false
	}
	if name.URI == "" {
		return e.Space == ""
	}
	return ResolveNamespace(e) == name.URI
}

func findDirectChild(parent *etree.Element, name Name) *etree.Element {
	for _, c := range parent.ChildElements() {
		if matches(c, name) {
			return c
		}
	}
	return nil
}

func firstDescendant(parent *etree.Element, name Name) *etree.Element {
	for _, c := range parent.ChildElements() {
		if matches(c, name) {
			return c
		}
		if found := firstDescendant(c, name); found != nil {
			return found
		}
	}
	return nil
}

func qualified(n Name) string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}
