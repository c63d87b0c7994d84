package parser

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/apisgirl/phyloxml/pxerr"
)

const exampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true">
  <name>example   from  Felsenstein</name>
  <description>tree with branch length
	attributes</description>
  <clade>
   <clade branch_length="0.06">
    <clade branch_length="0.102"><name>A</name></clade>
    <clade branch_length="0.23"><name>B</name></clade>
   </clade>
   <clade branch_length="0.4"><name>C</name></clade>
  </clade>
 </phylogeny>
</phyloxml>`

func TestReadDocument(t *testing.T) {
	doc, err := New(strings.NewReader(exampleDoc)).ReadDocument()
	require.NoError(t, err)
	require.Len(t, doc.Phylogenies, 1)

	check := assert.New(t)
	tr := doc.Phylogenies[0]
	require.NotNil(t, tr.Rooted)
	check.True(*tr.Rooted)
	check.Nil(tr.Rerootable)
	require.NotNil(t, tr.Name)
	check.Equal("example from Felsenstein", *tr.Name)
	require.NotNil(t, tr.Description)
	check.Equal("tree with branch length attributes", *tr.Description)

	root := tr.Root
	require.NotNil(t, root)
	check.Nil(root.BranchLength)
	require.Len(t, root.Clades, 2)
	ab, c := root.Clades[0], root.Clades[1]
	require.NotNil(t, ab.BranchLength)
	check.Equal(0.06, *ab.BranchLength)
	require.Len(t, ab.Clades, 2)
	check.Equal("A", *ab.Clades[0].Name)
	check.Equal(0.102, *ab.Clades[0].BranchLength)
	check.Equal("B", *ab.Clades[1].Name)
	require.NotNil(t, c.BranchLength)
	check.Equal(0.4, *c.BranchLength)
	check.Equal("C", *c.Name)
}

func TestReadDocumentRootAttributes(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org"
	  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
	  xsi:schemaLocation="http://www.phyloxml.org phyloxml.xsd"/>`
	doc, err := New(strings.NewReader(in)).ReadDocument()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"schemaLocation": "http://www.phyloxml.org phyloxml.xsd",
	}, doc.Attributes)
	assert.Empty(t, doc.Phylogenies)
	assert.Empty(t, doc.Other)
}

func TestReadDocumentRecords(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="false" rerootable="true" branch_length_unit="c" type="gene_tree">
  <name>records</name>
  <id provider="treebank">tr1</id>
  <date unit="mya"><desc>Silurian</desc><value>425</value><minimum>416</minimum><maximum>443.7</maximum></date>
  <confidence type="bootstrap">89</confidence>
  <clade>
   <name>root  node</name>
   <branch_length>0.5</branch_length>
   <confidence type="posterior">0.95</confidence>
   <width>2.5</width>
   <color><red>14</red><green>120</green><blue>255</blue></color>
   <node_id provider="ncbi">n1</node_id>
   <taxonomy id_source="tx">
    <id provider="ncbi">6645</id>
    <code>OCTVU</code>
    <scientific_name>Octopus vulgaris</scientific_name>
    <common_name>octopus</common_name>
    <common_name>devilfish</common_name>
    <rank>species</rank>
    <uri desc="taxonomy  browser">http://example.org/6645</uri>
   </taxonomy>
   <sequence type="protein" id_source="sq">
    <symbol>ADHX</symbol>
    <accession source="UniProtKB">P81431</accession>
    <name>alcohol   dehydrogenase</name>
    <location>q22</location>
    <mol_seq is_aligned="true">TDATGKPIKCMAAIAWEAKKPLSIEEVEVAPPKSGEVRIKILHSGVCHTD</mol_seq>
    <annotation ref="EC:1.1.1.1" evidence="experimental">
     <desc>alcohol dehydrogenase</desc>
     <confidence type="probability">0.99</confidence>
    </annotation>
    <domain_architecture length="50">
     <domain from="5" to="25" confidence="0.9" id="d1">CARD</domain>
     <domain from="30" to="50">NB-ARC</domain>
    </domain_architecture>
   </sequence>
   <events><type>speciation_or_duplication</type><duplications>1</duplications><speciations>2</speciations><losses>0</losses></events>
   <binary_characters type="morphology" gained_count="2" lost_count="1">
    <gained><bc>strong</bc><bc>fast</bc></gained>
    <lost><bc>eyes</bc></lost>
    <present/>
    <absent/>
   </binary_characters>
   <distribution>
    <desc>Iceland</desc>
    <point geodetic_datum="WGS84" alt_unit="m"><lat>64.68</lat><long>-18.26</long><alt>300</alt></point>
   </distribution>
   <date unit="mya"><value>100</value></date>
   <reference doi="10.1036/x"><desc>a paper</desc></reference>
   <property ref="NOAA:depth" datatype="xsd:integer" applies_to="clade" unit="METRIC:m">200</property>
  </clade>
  <clade_relation id_ref_0="a" id_ref_1="b" distance="0.1" type="network_connection">
   <confidence type="bootstrap">77</confidence>
  </clade_relation>
  <sequence_relation id_ref_0="x" id_ref_1="y" distance="0.25" type="orthology"/>
  <property ref="x" applies_to="phylogeny">v</property>
 </phylogeny>
</phyloxml>`

	doc, err := New(strings.NewReader(in)).ReadDocument()
	require.NoError(t, err)
	require.Len(t, doc.Phylogenies, 1)
	tr := doc.Phylogenies[0]

	check := assert.New(t)
	check.False(*tr.Rooted)
	check.True(*tr.Rerootable)
	check.Equal("c", *tr.BranchLengthUnit)
	check.Equal("gene_tree", *tr.Type)
	require.NotNil(t, tr.ID)
	check.Equal("tr1", tr.ID.Value)
	check.Equal("treebank", *tr.ID.Provider)
	require.NotNil(t, tr.Date)
	check.Equal("Silurian", *tr.Date.Desc)
	check.Equal(425.0, *tr.Date.Value)
	check.Equal(416.0, *tr.Date.Minimum)
	check.Equal(443.7, *tr.Date.Maximum)
	require.Len(t, tr.Confidences, 1)
	check.Equal(89.0, *tr.Confidences[0].Value)
	check.Equal("bootstrap", *tr.Confidences[0].Type)
	require.Len(t, tr.CladeRelations, 1)
	cr := tr.CladeRelations[0]
	check.Equal("a", *cr.IDRef0)
	check.Equal("0.1", *cr.Distance)
	require.NotNil(t, cr.Confidence)
	check.Equal(77.0, *cr.Confidence.Value)
	require.Len(t, tr.SequenceRelations, 1)
	check.Equal(0.25, *tr.SequenceRelations[0].Distance)
	require.Len(t, tr.Properties, 1)
	check.Equal("v", tr.Properties[0].Value)

	cl := tr.Root
	require.NotNil(t, cl)
	check.Equal("root node", *cl.Name)
	check.Equal(0.5, *cl.BranchLength)
	check.Equal(2.5, *cl.Width)
	require.NotNil(t, cl.Color)
	check.Equal(14, *cl.Color.Red)
	check.Equal(120, *cl.Color.Green)
	check.Equal(255, *cl.Color.Blue)
	require.NotNil(t, cl.NodeID)
	check.Equal("n1", cl.NodeID.Value)
	check.Equal("ncbi", *cl.NodeID.Provider)
	require.Len(t, cl.Confidences, 1)
	check.Equal(0.95, *cl.Confidences[0].Value)

	require.Len(t, cl.Taxonomies, 1)
	tx := cl.Taxonomies[0]
	check.Equal("tx", *tx.IDSource)
	check.Equal("6645", tx.ID.Value)
	check.Equal("OCTVU", *tx.Code)
	check.Equal("Octopus vulgaris", *tx.ScientificName)
	check.Equal([]string{"octopus", "devilfish"}, tx.CommonNames)
	check.Equal("species", *tx.Rank)
	require.NotNil(t, tx.URI)
	check.Equal("http://example.org/6645", tx.URI.Value)
	check.Equal("taxonomy browser", *tx.URI.Desc)

	require.Len(t, cl.Sequences, 1)
	sq := cl.Sequences[0]
	check.Equal("protein", *sq.Type)
	check.Equal("ADHX", *sq.Symbol)
	require.NotNil(t, sq.Accession)
	check.Equal("P81431", sq.Accession.Value)
	check.Equal("UniProtKB", *sq.Accession.Source)
	check.Equal("alcohol dehydrogenase", *sq.Name)
	require.NotNil(t, sq.MolSeq)
	check.True(*sq.MolSeq.IsAligned)
	require.Len(t, sq.Annotations, 1)
	an := sq.Annotations[0]
	check.Equal("EC:1.1.1.1", *an.Ref)
	check.Equal(0.99, *an.Confidence.Value)
	require.NotNil(t, sq.DomainArchitecture)
	check.Equal(50, sq.DomainArchitecture.Length)
	require.Len(t, sq.DomainArchitecture.Domains, 2)
	d0 := sq.DomainArchitecture.Domains[0]
	check.Equal("CARD", d0.Value)
	check.Equal(4, d0.Start) // one-based from="5" on the wire
	check.Equal(25, d0.End)
	check.Equal(0.9, *d0.Confidence)
	check.Equal("d1", *d0.ID)

	require.NotNil(t, cl.Events)
	check.Equal("speciation_or_duplication", *cl.Events.Type)
	check.Equal(1, *cl.Events.Duplications)
	check.Equal(2, *cl.Events.Speciations)
	check.Equal(0, *cl.Events.Losses)

	require.NotNil(t, cl.BinaryCharacters)
	bc := cl.BinaryCharacters
	check.Equal("morphology", *bc.Type)
	check.Equal(2, *bc.GainedCount)
	check.Equal([]string{"strong", "fast"}, bc.Gained)
	check.Equal([]string{"eyes"}, bc.Lost)
	check.Empty(bc.Present)

	require.Len(t, cl.Distributions, 1)
	di := cl.Distributions[0]
	check.Equal("Iceland", *di.Desc)
	require.Len(t, di.Points, 1)
	check.Equal(64.68, *di.Points[0].Lat)
	check.Equal(-18.26, *di.Points[0].Long)
	check.Equal(300.0, *di.Points[0].Alt)
	check.Equal("WGS84", *di.Points[0].GeodeticDatum)

	require.NotNil(t, cl.Date)
	check.Equal(100.0, *cl.Date.Value)
	require.Len(t, cl.References, 1)
	check.Equal("10.1036/x", *cl.References[0].DOI)
	check.Equal("a paper", *cl.References[0].Desc)
	require.Len(t, cl.Properties, 1)
	check.Equal("200", cl.Properties[0].Value)
}

func TestDuplicateRootNode(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true">
  <clade><name>first</name></clade>
  <clade><name>second</name></clade>
 </phylogeny>
</phyloxml>`
	_, err := New(strings.NewReader(in)).ReadDocument()
	require.Error(t, err)
	assert.True(t, pxerr.IsStructural(err))
	assert.Contains(t, err.Error(), "duplicate-root-node")
}

func TestBranchLengthSetTwice(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true">
  <clade branch_length="0.1">
   <branch_length>0.2</branch_length>
  </clade>
 </phylogeny>
</phyloxml>`
	_, err := New(strings.NewReader(in)).ReadDocument()
	require.Error(t, err)
	assert.True(t, pxerr.IsStructural(err))
	assert.Contains(t, err.Error(), "branch-length-set-twice")
}

func TestInvalidBooleanAttribute(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="yes"><clade/></phylogeny>
</phyloxml>`
	_, err := New(strings.NewReader(in)).ReadDocument()
	require.Error(t, err)
	check := assert.New(t)
	check.True(pxerr.IsStructural(err))
	check.Contains(err.Error(), "invalid-boolean")
	check.Contains(err.Error(), `"yes"`)
	check.Contains(err.Error(), "rooted")
}

func TestInvalidMolSeqBoolean(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true">
  <clade><sequence><mol_seq is_aligned="aligned">AC</mol_seq></sequence></clade>
 </phylogeny>
</phyloxml>`
	_, err := New(strings.NewReader(in)).ReadDocument()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is_aligned")
	assert.Contains(t, err.Error(), `"aligned"`)
}

func TestInvalidBranchLengthAttribute(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true"><clade branch_length="fast"/></phylogeny>
</phyloxml>`
	_, err := New(strings.NewReader(in)).ReadDocument()
	require.Error(t, err)
	assert.True(t, pxerr.IsStructural(err))
	assert.Contains(t, err.Error(), "invalid-value")
}

func TestUnexpectedElement(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true">
  <symbol>misplaced</symbol>
 </phylogeny>
</phyloxml>`
	_, err := New(strings.NewReader(in)).ReadDocument()
	require.Error(t, err)
	assert.True(t, pxerr.IsStructural(err))
	assert.Contains(t, err.Error(), "unexpected-element")
	assert.Contains(t, err.Error(), "symbol")
}

func TestSyntaxErrorPassesThrough(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org"><phylogeny rooted="true"><clade></phylogeny>`
	_, err := New(strings.NewReader(in)).ReadDocument()
	require.Error(t, err)
	assert.False(t, pxerr.IsStructural(err))
}

func TestLenientScalarCoercion(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true">
  <confidence type="bootstrap">not-a-number</confidence>
  <clade>
   <width>wide</width>
  </clade>
 </phylogeny>
</phyloxml>`
	core, logs := observer.New(zap.DebugLevel)
	doc, err := New(strings.NewReader(in), WithLogger(zap.New(core))).ReadDocument()
	require.NoError(t, err)
	tr := doc.Phylogenies[0]
	check := assert.New(t)
	require.Len(t, tr.Confidences, 1)
	check.Nil(tr.Confidences[0].Value)
	check.Equal("bootstrap", *tr.Confidences[0].Type)
	check.Nil(tr.Root.Width)
	// degraded values are reported, not swallowed silently
	check.Equal(2, logs.Len())
}

func TestDeepNesting(t *testing.T) {
	const depth = 10000
	var b strings.Builder
	b.WriteString(`<phyloxml xmlns="http://www.phyloxml.org"><phylogeny rooted="true">`)
	for i := 0; i < depth; i++ {
		b.WriteString("<clade>")
	}
	b.WriteString("<name>leaf</name>")
	for i := 0; i < depth; i++ {
		b.WriteString("</clade>")
	}
	b.WriteString(`</phylogeny></phyloxml>`)

	doc, err := New(strings.NewReader(b.String())).ReadDocument()
	require.NoError(t, err)
	cl := doc.Phylogenies[0].Root
	require.NotNil(t, cl)

	n := 1
	for len(cl.Clades) > 0 {
		require.Len(t, cl.Clades, 1)
		require.Nil(t, cl.Name)
		cl = cl.Clades[0]
		n++
	}
	assert.Equal(t, depth, n)
	// the name element belongs to the innermost clade only
	require.NotNil(t, cl.Name)
	assert.Equal(t, "leaf", *cl.Name)
}

func TestSameNamedTagsAtDifferentDepths(t *testing.T) {
	// the clade-level confidence must not absorb the one nested inside
	// the sequence annotation
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true">
  <clade>
   <confidence type="bootstrap">88</confidence>
   <sequence>
    <annotation><confidence type="probability">0.5</confidence></annotation>
   </sequence>
  </clade>
 </phylogeny>
</phyloxml>`
	doc, err := New(strings.NewReader(in)).ReadDocument()
	require.NoError(t, err)
	cl := doc.Phylogenies[0].Root
	require.Len(t, cl.Confidences, 1)
	assert.Equal(t, 88.0, *cl.Confidences[0].Value)
	require.Len(t, cl.Sequences, 1)
	require.Len(t, cl.Sequences[0].Annotations, 1)
	assert.Equal(t, 0.5, *cl.Sequences[0].Annotations[0].Confidence.Value)
}

func TestForeignContent(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true">
  <clade>
   <x:note xmlns:x="urn:example" kind="comment">hello <x:b>world</x:b></x:note>
  </clade>
 </phylogeny>
 <alignment xmlns="urn:align"><seq name="A">acgt</seq></alignment>
</phyloxml>`
	doc, err := New(strings.NewReader(in)).ReadDocument()
	require.NoError(t, err)

	check := assert.New(t)
	cl := doc.Phylogenies[0].Root
	require.Len(t, cl.Other, 1)
	note := cl.Other[0]
	check.Equal("note", note.Tag)
	check.Equal("urn:example", note.Namespace)
	require.Len(t, note.Attributes, 1)
	check.Equal("kind", note.Attributes[0].Local)
	check.Equal("comment", note.Attributes[0].Value)
	check.Equal("hello", note.Value)
	require.Len(t, note.Children, 1)
	check.Equal("b", note.Children[0].Tag)
	check.Equal("world", note.Children[0].Value)

	require.Len(t, doc.Other, 1)
	al := doc.Other[0]
	check.Equal("alignment", al.Tag)
	check.Equal("urn:align", al.Namespace)
	require.Len(t, al.Children, 1)
	check.Equal("seq", al.Children[0].Tag)
	check.Equal("acgt", al.Children[0].Value)
}

func TestLazyIteration(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">` +
		`<phylogeny rooted="true"><name>t1</name><clade/></phylogeny>` +
		`<phylogeny rooted="true"><name>t2</name><clade/></phylogeny>` +
		`<phylogeny rooted="true"><name>t3</name><clade/></phylogeny>` +
		`</phyloxml>`

	p := New(strings.NewReader(in))
	it := p.Trees()

	tr, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "t1", *tr.Name)
	// root start plus six events for the first phylogeny: no event
	// belonging to trees 2 and 3 has been consumed
	assert.Equal(t, 7, p.stream.EventCount())

	tr, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, "t2", *tr.Name)
	tr, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, "t3", *tr.Name)

	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLazyIterationSkipsTopLevelForeign(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <align:alignment xmlns:align="urn:align"><align:seq>acgt</align:seq></align:alignment>
 <phylogeny rooted="true"><name>t1</name><clade/></phylogeny>
</phyloxml>`
	it := New(strings.NewReader(in)).Trees()
	tr, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "t1", *tr.Name)
	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLazyIterationStructuralError(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true"><name>ok</name><clade/></phylogeny>
 <phylogeny rooted="true"><clade/><clade/></phylogeny>
</phyloxml>`
	it := New(strings.NewReader(in)).Trees()
	tr, err := it.Next()
	require.NoError(t, err)
	// the tree already yielded remains valid when a later parse fails
	assert.Equal(t, "ok", *tr.Name)
	_, err = it.Next()
	require.Error(t, err)
	assert.True(t, pxerr.IsStructural(err))
}

func TestIDProviderFallback(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="true"><id type="ncbi">42</id><clade/></phylogeny>
</phyloxml>`
	doc, err := New(strings.NewReader(in)).ReadDocument()
	require.NoError(t, err)
	id := doc.Phylogenies[0].ID
	require.NotNil(t, id)
	assert.Equal(t, "42", id.Value)
	assert.Equal(t, "ncbi", *id.Provider)
}

func TestEmptyTree(t *testing.T) {
	in := `<phyloxml xmlns="http://www.phyloxml.org">
 <phylogeny rooted="false"><name>no clades</name></phylogeny>
</phyloxml>`
	doc, err := New(strings.NewReader(in)).ReadDocument()
	require.NoError(t, err)
	tr := doc.Phylogenies[0]
	assert.Nil(t, tr.Root)
	assert.Equal(t, "no clades", *tr.Name)
}

func TestDumpTags(t *testing.T) {
	var out bytes.Buffer
	err := DumpTags(strings.NewReader(`<a><b><c/></b><d/></a>`), &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\nd\n", out.String())
}
