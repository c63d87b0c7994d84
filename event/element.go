package event

import (
	"encoding/xml"
	"strings"
)

// Element is a buffered XML element. Attributes are available from the
// element's start event; direct text and children only once its end event
// has been delivered. After Release the element must not be inspected.
type Element struct {
	// Name is the element's expanded name. The Space field carries the
	// resolved namespace URI.
	Name xml.Name
	// Attrs are the element's attributes in document order, excluding
	// namespace declarations.
	Attrs []xml.Attr

	text     strings.Builder
	children []*Element
	released bool
}

func newElement(se xml.StartElement) *Element {
	el := &Element{Name: se.Name}
	for _, a := range se.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		el.Attrs = append(el.Attrs, a)
	}
	return el
}

// Attr returns the value of the named attribute, or "".
func (el *Element) Attr(local string) string {
	v, _ := el.AttrOK(local)
	return v
}

// AttrOK returns the value of the named attribute and whether it was present.
func (el *Element) AttrOK(local string) (string, bool) {
	for _, a := range el.Attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the element's direct text: character data preceding the
// first child element.
func (el *Element) Text() string { return el.text.String() }

// Children returns the element's child elements in document order.
func (el *Element) Children() []*Element { return el.children }

// Find returns the first child element with the given local name in the
// same namespace as el, or nil.
func (el *Element) Find(local string) *Element {
	for _, c := range el.children {
		if c.Name.Local == local && c.Name.Space == el.Name.Space {
			return c
		}
	}
	return nil
}

// FindAll returns all child elements with the given local name in the
// same namespace as el, in document order.
func (el *Element) FindAll(local string) []*Element {
	var out []*Element
	for _, c := range el.children {
		if c.Name.Local == local && c.Name.Space == el.Name.Space {
			out = append(out, c)
		}
	}
	return out
}

// FindText returns the direct text of the first matching child element.
// ok is false when no such child exists or its text is empty.
func (el *Element) FindText(local string) (text string, ok bool) {
	c := el.Find(local)
	if c == nil || c.Text() == "" {
		return "", false
	}
	return c.Text(), true
}

// Release discards the element's buffered content: attributes, direct
// text and the entire child subtree. The element name remains valid.
func (el *Element) Release() {
	el.Attrs = nil
	el.text.Reset()
	el.children = nil
	el.released = true
}

func (el *Element) appendText(cd xml.CharData) {
	// only text before the first child element counts as direct text
	if len(el.children) == 0 && !el.released {
		el.text.Write(cd)
	}
}

func (el *Element) appendChild(c *Element) {
	if !el.released {
		el.children = append(el.children, c)
	}
}
