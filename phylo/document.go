package phylo

const (
	// Namespace is the phyloXML namespace URI
	Namespace = "http://www.phyloxml.org"
	// NamespaceXSD is the XML Schema definition namespace URI
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema"
)

// Document is a phyloXML document: zero or more phylogenies followed by
// any top-level non-phyloXML content, both in document order.
type Document struct {
	// Attributes holds the root element's attributes, keyed by local name
	Attributes map[string]string
	// Phylogenies are the document's trees, in document order
	Phylogenies []*Phylogeny
	// Other is top-level content outside the phyloXML namespace
	Other []*Other
}

// Phylogeny is a single rooted or unrooted phylogenetic tree.
type Phylogeny struct {
	Rooted           *bool
	Rerootable       *bool
	BranchLengthUnit *string
	Type             *string

	Name        *string
	ID          *ID
	Description *string
	Date        *Date

	Confidences       []*Confidence
	CladeRelations    []*CladeRelation
	SequenceRelations []*SequenceRelation
	Properties        []*Property

	// Root is the tree's root clade. A phylogeny with no root is a valid
	// empty tree; a second root is a structural error.
	Root *Clade

	Other []*Other
}

// Clade is a tree node. Clades own their children exclusively; the child
// list is the sole recursive relationship and preserves document order.
type Clade struct {
	IDSource *string

	// BranchLength may be set from the branch_length attribute or a
	// branch_length child element, never both.
	BranchLength *float64
	Width        *float64
	Name         *string
	NodeID       *ID

	Confidences   []*Confidence
	Taxonomies    []*Taxonomy
	Sequences     []*Sequence
	Distributions []*Distribution
	References    []*Reference
	Properties    []*Property

	Color            *BranchColor
	Events           *Events
	BinaryCharacters *BinaryCharacters
	Date             *Date

	Clades []*Clade

	Other []*Other
}

// Attr is a single attribute of an Other element.
type Attr struct {
	Space string
	Local string
	Value string
}

// Other is an opaque snapshot of an element outside the phyloXML
// namespace. It is captured before the underlying parse buffer is
// released and never interpreted, only stored and re-emitted, which makes
// the read/write pair lossless for unrecognized content.
type Other struct {
	Tag        string
	Namespace  string
	Attributes []Attr
	Value      string
	Children   []*Other
}
