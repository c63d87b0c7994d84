/*
Package phyloxml reads and writes phyloXML, an XML dialect describing
forests of phylogenetic trees with biological annotations attached to
each node.

Reading is a single forward pass over the XML event stream: the document
can be materialized eagerly with Read, or trees can be pulled one at a
time with Parse, which never touches input beyond the last tree
requested. Buffered content is released as each subtree is converted, so
peak memory is bounded by one path through the tree rather than the
whole document. Content outside the phyloXML namespace is preserved
losslessly and re-emitted unchanged.

Writing is declarative: every complex type has a fixed attribute and
subnode order, so output is canonical and diffable regardless of how the
in-memory document was assembled.

See the parser, writer, phylo and event sub-directories for the
underlying layers.
*/
package phyloxml
