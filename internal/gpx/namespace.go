package gpx

import (
	"sort"

	"github.com/beevik/etree"
)

// lookupPrefix resolves an xmlns prefix (empty string for the default
// namespace) against the declarations on e and its ancestors, nearest
// declaration first. Returns "" when the prefix is not declared.
func lookupPrefix(e *etree.Element, prefix string) string {
	for cur := e; cur != nil; cur = cur.Parent() {
		for _, a := range cur.Attr {
			if prefix == "" {
				if a.Space == "" && a.Key == "xmlns" {
					return a.Value
				}
			} else if a.Space == "xmlns" && a.Key == prefix {
				return a.Value
			}
		}
	}
	return ""
}

// ResolveNamespace reports the namespace URI an element is bound to: the
// declaration for its prefix, or the default namespace for unprefixed
// elements. Returns "" for elements in no namespace.
func ResolveNamespace(e *etree.Element) string {
	return lookupPrefix(e, e.Space)
}

// ChildByName returns the first direct child of parent with the given local
// name whose resolved namespace is uri, or nil.
func ChildByName(parent *etree.Element, uri, local string) *etree.Element {
	for _, c := range parent.ChildElements() {
		if c.Tag == local && ResolveNamespace(c) == uri {
			return c
		}
	}
	return nil
}

// ChildrenByName returns all direct children of parent with the given local
// name whose resolved namespace is uri, in document order.
func ChildrenByName(parent *etree.Element, uri, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range parent.ChildElements() {
		if c.Tag == local && ResolveNamespace(c) == uri {
			out = append(out, c)
		}
	}
	return out
}

// DescendantsByName returns all descendants of root (root itself excluded)
// with the given local name whose resolved namespace is uri, in document
// order.
func DescendantsByName(root *etree.Element, uri, local string) []*etree.Element {
	var out []*etree.Element
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, c := range e.ChildElements() {
			if c.Tag == local && ResolveNamespace(c) == uri {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// CloneElement deep-copies e and carries onto the copy every namespace
// declaration that is in scope at e and used inside the subtree but not
// declared within it. The copy resolves namespaces standalone, detached
// from the source document.
func CloneElement(e *etree.Element) *etree.Element {
	dup := e.Copy()
	carryNamespaces(e, dup)
	return dup
}

// carryNamespaces declares on dst any prefixes used inside dst that dst does
// not declare itself, taking the URIs from the declarations in scope at src.
func carryNamespaces(src, dst *etree.Element) {
	declared := make(map[string]bool)
	for _, a := range dst.Attr {
		if a.Space == "" && a.Key == "xmlns" {
			declared[""] = true
		} else if a.Space == "xmlns" {
			declared[a.Key] = true
		}
	}

	used := usedPrefixes(dst)
	prefixes := make([]string, 0, len(used))
	for p := range used {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		if prefix == "xmlns" || prefix == "xml" || declared[prefix] {
			continue
		}
		uri := lookupPrefix(src, prefix)
		if uri == "" {
			continue
		}
		if prefix == "" {
			dst.CreateAttr("xmlns", uri)
		} else {
			dst.CreateAttr("xmlns:"+prefix, uri)
		}
	}
}

// usedPrefixes collects the element and attribute prefixes appearing in the
// subtree. The empty string stands for unprefixed elements.
func usedPrefixes(root *etree.Element) map[string]bool {
	used := make(map[string]bool)
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		used[e.Space] = true
		for _, a := range e.Attr {
			if a.Space != "" && a.Space != "xmlns" {
				used[a.Space] = true
			}
		}
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(root)
	return used
}
