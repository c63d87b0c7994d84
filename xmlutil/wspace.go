package xmlutil

import "strings"

// CollapseWhitespace trims leading and trailing whitespace and folds internal
// runs of whitespace to a single space, per the phyloXML "collapse"
// whitespace policy.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// ReplaceWhitespace converts tab, LF and CR characters to spaces without
// collapsing runs, per the phyloXML "replace" whitespace policy.
func ReplaceWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, text)
}
