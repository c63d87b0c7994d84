package writer

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// formatFloat renders a float with an upper-cased exponent marker, e.g.
// "1.25E-05", and the tokens INF/-INF/NAN for the special values.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NAN"
	}
	return strings.ToUpper(strconv.FormatFloat(f, 'g', -1, 64))
}

func formatBool(b bool) string { return strconv.FormatBool(b) }

// attribute helpers: absent (nil) fields are omitted

func attrStr(e *etree.Element, name string, v *string) {
	if v != nil {
		e.CreateAttr(name, *v)
	}
}

func attrBool(e *etree.Element, name string, v *bool) {
	if v != nil {
		e.CreateAttr(name, formatBool(*v))
	}
}

func attrFloat(e *etree.Element, name string, v *float64) {
	if v != nil {
		e.CreateAttr(name, formatFloat(*v))
	}
}

func attrInt(e *etree.Element, name string, v *int) {
	if v != nil {
		e.CreateAttr(name, strconv.Itoa(*v))
	}
}

// simple subnode helpers: one child element holding a serialized scalar

func (w *Writer) textElem(parent *etree.Element, local string, v *string) {
	if v != nil {
		parent.CreateElement(w.tag(local)).SetText(*v)
	}
}

func (w *Writer) floatElem(parent *etree.Element, local string, v *float64) {
	if v != nil {
		parent.CreateElement(w.tag(local)).SetText(formatFloat(*v))
	}
}

func (w *Writer) intElem(parent *etree.Element, local string, v *int) {
	if v != nil {
		parent.CreateElement(w.tag(local)).SetText(strconv.Itoa(*v))
	}
}
