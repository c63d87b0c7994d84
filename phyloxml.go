package phyloxml

import (
	"io"

	"github.com/apisgirl/phyloxml/parser"
	"github.com/apisgirl/phyloxml/phylo"
	"github.com/apisgirl/phyloxml/writer"
)

// Read parses a phyloXML document from r, returning the fully populated
// document including any top-level content outside the phyloXML
// namespace.
func Read(r io.Reader, opts ...parser.Option) (*phylo.Document, error) {
	return parser.New(r, opts...).ReadDocument()
}

// Parse returns an iterator over the phylogenies in r, one tree at a
// time. Top-level content outside phylogeny elements is discarded; the
// caller may stop pulling at any point and remaining input is never
// read. The iterator's Next returns io.EOF once the input is exhausted.
func Parse(r io.Reader, opts ...parser.Option) *parser.TreeIterator {
	return parser.New(r, opts...).Trees()
}

// Write serializes doc to w in canonical form as UTF-8.
func Write(doc *phylo.Document, w io.Writer, opts ...writer.Option) error {
	return writer.New(opts...).Write(doc, w)
}
