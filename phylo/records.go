package phylo

// Accession captures a sequence accession value and its source database.
type Accession struct {
	Value  string
	Source *string
}

// Annotation is an annotation of a molecular sequence.
type Annotation struct {
	Ref      *string
	Source   *string
	Evidence *string
	Type     *string

	Desc       *string
	Confidence *Confidence
	Properties []*Property
	URI        *URI
}

// BinaryCharacters holds the presence/absence matrix of binary characters
// at a clade, with gain/loss accounting relative to the parent.
type BinaryCharacters struct {
	Type         *string
	GainedCount  *int
	LostCount    *int
	PresentCount *int
	AbsentCount  *int

	Gained  []string
	Lost    []string
	Present []string
	Absent  []string
}

// BranchColor applies to the branch path from the parent to the clade it
// is attached to, inclusive.
type BranchColor struct {
	Red   *int
	Green *int
	Blue  *int
}

// CladeRelation expresses a typed relationship between two clades, for
// example a network connection between horizontally transferred genes.
type CladeRelation struct {
	Type   *string
	IDRef0 *string
	IDRef1 *string
	// Distance is carried verbatim; the schema leaves its interpretation
	// to the relation type.
	Distance   *string
	Confidence *Confidence
}

// Confidence is a general-purpose support value (bootstrap, posterior
// probability, ...).
type Confidence struct {
	Value *float64
	Type  *string
}

// Date is a point in time associated with a clade or phylogeny.
type Date struct {
	Unit    *string
	Desc    *string
	Value   *float64
	Minimum *float64
	Maximum *float64
}

// Distribution is the geographic distribution of the items of a clade.
type Distribution struct {
	Desc     *string
	Points   []*Point
	Polygons []*Polygon
}

// ProteinDomain is a protein domain within a DomainArchitecture. Start is
// zero-based in memory; the wire form's "from" attribute is one-based.
type ProteinDomain struct {
	Value      string
	Start      int
	End        int
	Confidence *float64
	ID         *string
}

// DomainArchitecture is the domain architecture of a protein.
type DomainArchitecture struct {
	Length  int
	Domains []*ProteinDomain
}

// Events counts the phylogenetic events at a clade.
type Events struct {
	Type         *string
	Duplications *int
	Speciations  *int
	Losses       *int
	Confidence   *Confidence
}

// ID is a general-purpose identifier with an optional provider, such as
// NCBI or SwissProt.
type ID struct {
	Value    string
	Provider *string
}

// MolSeq is a molecular sequence.
type MolSeq struct {
	Value     string
	IsAligned *bool
}

// Point is a geographic coordinate.
type Point struct {
	GeodeticDatum *string
	Lat           *float64
	Long          *float64
	Alt           *float64
	AltUnit       *string
}

// Polygon is a sequence of at least three points.
type Polygon struct {
	Points []*Point
}

// Property is a typed, externally-defined key/value annotation.
type Property struct {
	Value     string
	Ref       *string
	AppliesTo *string
	Datatype  *string
	Unit      *string
	IDRef     *string
}

// Reference is a literature reference for a clade.
type Reference struct {
	DOI  *string
	Desc *string
}

// Sequence is a molecular sequence (gene, protein) associated with a clade.
type Sequence struct {
	Type     *string
	IDRef    *string
	IDSource *string

	Symbol             *string
	Accession          *Accession
	Name               *string
	Location           *string
	MolSeq             *MolSeq
	URI                *URI
	Annotations        []*Annotation
	DomainArchitecture *DomainArchitecture
}

// SequenceRelation expresses a typed relationship between two sequences,
// such as orthology.
type SequenceRelation struct {
	Type       *string
	IDRef0     *string
	IDRef1     *string
	Distance   *float64
	Confidence *Confidence
}

// Taxonomy describes taxonomic information for a clade.
type Taxonomy struct {
	IDSource *string

	ID             *ID
	Code           *string
	ScientificName *string
	Authority      *string
	CommonNames    []string
	Synonyms       []string
	Rank           *string
	URI            *URI
}

// URI is a uniform resource identifier with an optional description.
type URI struct {
	Value string
	Desc  *string
	Type  *string
}
