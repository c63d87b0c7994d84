package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/apisgirl/phyloxml/event"
	"github.com/apisgirl/phyloxml/phylo"
	"github.com/apisgirl/phyloxml/pxerr"
)

const (
	tagPhylogeny = "phylogeny"
	tagClade     = "clade"
)

// Parser reads phyloXML content from a single forward event stream.
type Parser struct {
	stream *event.Stream
	log    *zap.Logger
}

// Option is a Parser option function
type Option func(*Parser)

// WithLogger sets the logger receiving non-fatal parse diagnostics, such
// as unparseable optional scalar values. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option { return func(p *Parser) { p.log = log } }

// New returns a Parser reading a phyloXML document from r.
func New(r io.Reader, opts ...Option) *Parser {
	p := &Parser{stream: event.NewStream(r), log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReadDocument walks the stream once and returns the fully populated
// document: its phylogenies and any top-level non-phyloXML content, in
// document order.
func (p *Parser) ReadDocument() (*phylo.Document, error) {
	ev, err := p.stream.Next()
	if err != nil {
		return nil, err
	}
	root := ev.Element
	doc := &phylo.Document{Attributes: map[string]string{}}
	for _, a := range root.Attrs {
		doc.Attributes[a.Name.Local] = a.Value
	}

	otherDepth := 0
	for {
		ev, err := p.stream.Next()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		el := ev.Element
		foreign := el.Name.Space != phylo.Namespace

		if ev.Kind == event.Start {
			if foreign {
				otherDepth++
				continue
			}
			if el.Name.Local == tagPhylogeny && otherDepth == 0 {
				tr, err := p.parsePhylogeny(el)
				if err != nil {
					return nil, err
				}
				doc.Phylogenies = append(doc.Phylogenies, tr)
			}
			continue
		}

		if foreign {
			if otherDepth--; otherDepth == 0 {
				// back directly under the root: snapshot the finished
				// foreign subtree, then drop the root's buffered content
				doc.Other = append(doc.Other, toOther(el))
				root.Release()
			}
		}
	}
}

// Trees returns a pull iterator over the document's phylogenies. Content
// outside phylogeny elements, foreign or otherwise, is skipped and not
// preserved. The caller may stop pulling at any time; remaining input is
// never read.
func (p *Parser) Trees() *TreeIterator { return &TreeIterator{p: p} }

// TreeIterator produces phylogenies one at a time.
type TreeIterator struct {
	p *Parser
}

// Next advances the stream to the next phylogeny, parses it fully and
// returns it. It returns io.EOF once the input is exhausted. Phylogenies
// already returned remain valid if a later call fails.
func (it *TreeIterator) Next() (*phylo.Phylogeny, error) {
	for {
		ev, err := it.p.stream.Next()
		if err != nil {
			return nil, err
		}
		el := ev.Element
		if ev.Kind == event.Start {
			if el.Name.Space == phylo.Namespace && el.Name.Local == tagPhylogeny {
				return it.p.parsePhylogeny(el)
			}
			continue
		}
		// discard skipped content as it completes
		el.Release()
	}
}

// parsePhylogeny builds one phylogeny from its start element's attributes
// and the events up to its matching end event.
func (p *Parser) parsePhylogeny(parent *event.Element) (*phylo.Phylogeny, error) {
	tr := &phylo.Phylogeny{}
	for _, a := range parent.Attrs {
		switch a.Name.Local {
		case "rooted":
			b, err := parseBool(a.Name.Local, a.Value)
			if err != nil {
				return nil, err
			}
			tr.Rooted = &b
		case "rerootable":
			b, err := parseBool(a.Name.Local, a.Value)
			if err != nil {
				return nil, err
			}
			tr.Rerootable = &b
		case "branch_length_unit":
			tr.BranchLengthUnit = strPtr(a.Value)
		case "type":
			tr.Type = strPtr(a.Value)
		}
	}

	// stack of open phyloXML tags at or below this level; a tag closes a
	// direct child of the phylogeny only when it is the sole open tag
	var stack []string
	otherDepth := 0
	for {
		ev, err := p.stream.Next()
		if err != nil {
			return nil, err
		}
		el := ev.Element
		foreign := el.Name.Space != phylo.Namespace
		tag := el.Name.Local

		if ev.Kind == event.Start {
			switch {
			case foreign:
				otherDepth++
			case otherDepth > 0:
				// inert while inside foreign content
			case tag == tagClade:
				if tr.Root != nil {
					return nil, pxerr.DuplicateRootNode()
				}
				root, err := p.parseClade(el)
				if err != nil {
					return nil, err
				}
				tr.Root = root
			default:
				stack = append(stack, tag)
			}
			continue
		}

		if foreign {
			if otherDepth--; otherDepth == 0 {
				tr.Other = append(tr.Other, toOther(el))
				el.Release()
			}
			continue
		}
		if otherDepth > 0 {
			continue
		}

		n := len(stack)
		if n == 0 {
			if tag == tagPhylogeny {
				parent.Release()
				return tr, nil
			}
			return nil, pxerr.UnexpectedElement(tag)
		}
		stack = stack[:n-1]
		if n > 1 {
			// closes an element nested inside a direct child; the
			// child's builder reads it from the buffered subtree
			continue
		}

		switch tag {
		case "name":
			tr.Name = collapseText(el)
		case "description":
			tr.Description = collapseText(el)
		case "date":
			tr.Date = p.toDate(el)
		case "id":
			tr.ID = toID(el)
		case "confidence":
			tr.Confidences = append(tr.Confidences, p.toConfidence(el))
		case "clade_relation":
			tr.CladeRelations = append(tr.CladeRelations, p.toCladeRelation(el))
		case "sequence_relation":
			tr.SequenceRelations = append(tr.SequenceRelations, p.toSequenceRelation(el))
		case "property":
			tr.Properties = append(tr.Properties, toProperty(el))
		default:
			return nil, pxerr.UnexpectedElement(tag)
		}
	}
}

// parseClade builds one clade, recursing for nested clade elements. The
// recursion depth is bounded by the document's actual nesting depth.
func (p *Parser) parseClade(parent *event.Element) (*phylo.Clade, error) {
	cl := &phylo.Clade{}
	for _, a := range parent.Attrs {
		switch a.Name.Local {
		case "branch_length":
			f, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
			if err != nil {
				return nil, pxerr.InvalidValue("branch_length", a.Value, pxerr.WithElement(tagClade))
			}
			cl.BranchLength = &f
		case "id_source":
			cl.IDSource = strPtr(a.Value)
		}
	}

	var stack []string
	otherDepth := 0
	for {
		ev, err := p.stream.Next()
		if err != nil {
			return nil, err
		}
		el := ev.Element
		foreign := el.Name.Space != phylo.Namespace
		tag := el.Name.Local

		if ev.Kind == event.Start {
			switch {
			case foreign:
				otherDepth++
			case otherDepth > 0:
			case tag == tagClade:
				sub, err := p.parseClade(el)
				if err != nil {
					return nil, err
				}
				cl.Clades = append(cl.Clades, sub)
			default:
				stack = append(stack, tag)
			}
			continue
		}

		if foreign {
			if otherDepth--; otherDepth == 0 {
				cl.Other = append(cl.Other, toOther(el))
				el.Release()
			}
			continue
		}
		if otherDepth > 0 {
			continue
		}

		n := len(stack)
		if n == 0 {
			if tag == tagClade {
				parent.Release()
				return cl, nil
			}
			return nil, pxerr.UnexpectedElement(tag)
		}
		stack = stack[:n-1]
		if n > 1 {
			continue
		}

		switch tag {
		case "branch_length":
			if cl.BranchLength != nil {
				return nil, pxerr.BranchLengthSetTwice()
			}
			cl.BranchLength = p.floatVal(el.Text(), "branch_length")
		case "width":
			cl.Width = p.floatVal(el.Text(), "width")
		case "name":
			cl.Name = collapseText(el)
		case "node_id":
			cl.NodeID = toID(el)
		case "color":
			cl.Color = p.toColor(el)
		case "events":
			cl.Events = p.toEvents(el)
		case "binary_characters":
			cl.BinaryCharacters = p.toBinaryCharacters(el)
		case "date":
			cl.Date = p.toDate(el)
		case "confidence":
			cl.Confidences = append(cl.Confidences, p.toConfidence(el))
		case "taxonomy":
			cl.Taxonomies = append(cl.Taxonomies, p.toTaxonomy(el))
		case "sequence":
			seq, err := p.toSequence(el)
			if err != nil {
				return nil, err
			}
			cl.Sequences = append(cl.Sequences, seq)
		case "distribution":
			cl.Distributions = append(cl.Distributions, p.toDistribution(el))
		case "reference":
			cl.References = append(cl.References, toReference(el))
		case "property":
			cl.Properties = append(cl.Properties, toProperty(el))
		default:
			return nil, pxerr.UnexpectedElement(tag)
		}
	}
}

// toOther deep-copies an element outside the phyloXML namespace. The copy
// is taken strictly before the element's buffered content is released.
func toOther(el *event.Element) *phylo.Other {
	o := &phylo.Other{
		Tag:       el.Name.Local,
		Namespace: el.Name.Space,
		Value:     strings.TrimSpace(el.Text()),
	}
	for _, a := range el.Attrs {
		o.Attributes = append(o.Attributes, phylo.Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value})
	}
	for _, c := range el.Children() {
		o.Children = append(o.Children, toOther(c))
	}
	return o
}

// DumpTags streams the local tag names of every element in the document
// to w, one per line. Debugging aid; content is released as it completes.
func DumpTags(r io.Reader, w io.Writer) error {
	s := event.NewStream(r)
	for {
		ev, err := s.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if ev.Kind == event.Start {
			if _, err := fmt.Fprintln(w, ev.Element.Name.Local); err != nil {
				return err
			}
			continue
		}
		ev.Element.Release()
	}
}
