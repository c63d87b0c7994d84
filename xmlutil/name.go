package xmlutil

import (
	"encoding/xml"
	"strings"
)

// Name is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func Name(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// LocalName extracts the local tag from a Clark-notation qualified tag name,
// e.g. "{http://www.phyloxml.org}clade" yields "clade". Tags without a
// namespace prefix pass through unchanged.
func LocalName(tag string) string {
	if strings.HasPrefix(tag, "{") {
		if i := strings.Index(tag, "}"); i >= 0 {
			return tag[i+1:]
		}
	}
	return tag
}

// SplitNamespace splits a Clark-notation qualified tag into its namespace URI
// and local tag. Unqualified tags yield an empty namespace.
func SplitNamespace(tag string) (namespace, local string) {
	if strings.HasPrefix(tag, "{") {
		if i := strings.Index(tag, "}"); i >= 0 {
			return tag[1:i], tag[i+1:]
		}
	}
	return "", tag
}

// Qualify formats a tag name qualified by the given namespace URI in Clark
// notation. An empty namespace returns the local tag unchanged.
func Qualify(local, namespace string) string {
	if namespace == "" {
		return local
	}
	return "{" + namespace + "}" + local
}
