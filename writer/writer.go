package writer

import (
	"fmt"
	"io"
	"sort"

	"github.com/beevik/etree"

	"github.com/apisgirl/phyloxml/phylo"
	"github.com/apisgirl/phyloxml/xmlutil"
)

// DefaultPrefixes returns the two well-known namespace bindings emitted
// on the document root: the phyloXML namespace and the XML Schema
// definition namespace.
func DefaultPrefixes() xmlutil.PrefixMap {
	return xmlutil.PrefixMap{
		"phy": phylo.Namespace,
		"xs":  phylo.NamespaceXSD,
	}
}

// Writer serializes phyloXML documents. The zero value is not usable;
// construct with New.
type Writer struct {
	prefixes  xmlutil.PrefixMap
	phyPrefix string
	indent    int
}

// Option is a Writer option function
type Option func(*Writer)

// WithPrefixes sets the namespace prefix bindings declared on the root
// element. Pass an explicit map to keep emitted prefixes stable without
// any process-global registration.
func WithPrefixes(m xmlutil.PrefixMap) Option { return func(w *Writer) { w.prefixes = m } }

// WithIndent enables pretty-printed output indented by the given number
// of spaces. The default is compact output.
func WithIndent(spaces int) Option { return func(w *Writer) { w.indent = spaces } }

// New returns a Writer using the default namespace prefixes unless
// overridden.
func New(opts ...Option) *Writer {
	w := &Writer{prefixes: DefaultPrefixes()}
	for _, opt := range opts {
		opt(w)
	}
	if pfxes := w.prefixes.Prefix(phylo.Namespace); len(pfxes) > 0 {
		sort.Strings(pfxes)
		w.phyPrefix = pfxes[0]
	}
	return w
}

// Write serializes doc to out as UTF-8.
func (w *Writer) Write(doc *phylo.Document, out io.Writer) error {
	return w.write(doc, out, "UTF-8")
}

// WriteWithEncoding serializes doc to out, labelling the XML declaration
// with the given encoding name. The byte encoding of the output itself
// remains UTF-8; the label is for sinks that transcode downstream.
func (w *Writer) WriteWithEncoding(doc *phylo.Document, out io.Writer, encoding string) error {
	if encoding == "" {
		encoding = "UTF-8"
	}
	return w.write(doc, out, encoding)
}

func (w *Writer) write(doc *phylo.Document, out io.Writer, encoding string) error {
	d := etree.NewDocument()
	d.CreateProcInst("xml", fmt.Sprintf(`version="1.0" encoding=%q`, encoding))
	d.SetRoot(w.document(doc))
	if w.indent > 0 {
		d.Indent(w.indent)
	}
	_, err := d.WriteTo(out)
	return err
}

// document emits the root element wrapping trees then foreign nodes, in
// that order. An empty document still produces the minimal valid wrapper.
func (w *Writer) document(doc *phylo.Document) *etree.Element {
	e := etree.NewElement(w.tag("phyloxml"))
	if w.phyPrefix == "" {
		e.CreateAttr("xmlns", phylo.Namespace)
	}
	var prefixes []string
	for pfx := range w.prefixes {
		prefixes = append(prefixes, pfx)
	}
	sort.Strings(prefixes)
	for _, pfx := range prefixes {
		e.CreateAttr("xmlns:"+pfx, w.prefixes[pfx])
	}
	var keys []string
	for k := range doc.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.CreateAttr(k, doc.Attributes[k])
	}
	for _, tr := range doc.Phylogenies {
		e.AddChild(w.phylogeny(tr))
	}
	for _, o := range doc.Other {
		e.AddChild(w.other(o, phylo.Namespace))
	}
	return e
}

func (w *Writer) tag(local string) string {
	if w.phyPrefix != "" {
		return w.phyPrefix + ":" + local
	}
	return local
}

// other re-emits a foreign subtree with its original tag, namespace,
// attributes and text unchanged.
func (w *Writer) other(o *phylo.Other, parentNS string) *etree.Element {
	e := etree.NewElement(o.Tag)
	if o.Namespace != "" && o.Namespace != parentNS {
		e.CreateAttr("xmlns", o.Namespace)
	}
	for _, a := range o.Attributes {
		e.CreateAttr(a.Local, a.Value)
	}
	if o.Value != "" {
		e.SetText(o.Value)
	}
	for _, c := range o.Children {
		e.AddChild(w.other(c, o.Namespace))
	}
	return e
}
