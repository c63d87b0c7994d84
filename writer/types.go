package writer

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/apisgirl/phyloxml/phylo"
)

// One serializer per complex type. Attribute and subnode order below is
// the schema-declared order and must not follow field population order.

func (w *Writer) phylogeny(tr *phylo.Phylogeny) *etree.Element {
	e := etree.NewElement(w.tag("phylogeny"))
	attrBool(e, "rooted", tr.Rooted)
	attrBool(e, "rerootable", tr.Rerootable)
	attrStr(e, "branch_length_unit", tr.BranchLengthUnit)
	attrStr(e, "type", tr.Type)

	w.textElem(e, "name", tr.Name)
	if tr.ID != nil {
		e.AddChild(w.id("id", tr.ID))
	}
	w.textElem(e, "description", tr.Description)
	if tr.Date != nil {
		e.AddChild(w.date(tr.Date))
	}
	for _, c := range tr.Confidences {
		e.AddChild(w.confidence(c))
	}
	if tr.Root != nil {
		e.AddChild(w.clade(tr.Root))
	}
	for _, cr := range tr.CladeRelations {
		e.AddChild(w.cladeRelation(cr))
	}
	for _, sr := range tr.SequenceRelations {
		e.AddChild(w.sequenceRelation(sr))
	}
	for _, pr := range tr.Properties {
		e.AddChild(w.property(pr))
	}
	for _, o := range tr.Other {
		e.AddChild(w.other(o, phylo.Namespace))
	}
	return e
}

func (w *Writer) clade(c *phylo.Clade) *etree.Element {
	e := etree.NewElement(w.tag("clade"))
	attrStr(e, "id_source", c.IDSource)

	w.textElem(e, "name", c.Name)
	w.floatElem(e, "branch_length", c.BranchLength)
	for _, cf := range c.Confidences {
		e.AddChild(w.confidence(cf))
	}
	w.floatElem(e, "width", c.Width)
	if c.Color != nil {
		e.AddChild(w.color(c.Color))
	}
	if c.NodeID != nil {
		e.AddChild(w.id("node_id", c.NodeID))
	}
	for _, t := range c.Taxonomies {
		e.AddChild(w.taxonomy(t))
	}
	for _, s := range c.Sequences {
		e.AddChild(w.sequence(s))
	}
	if c.Events != nil {
		e.AddChild(w.events(c.Events))
	}
	if c.BinaryCharacters != nil {
		e.AddChild(w.binaryCharacters(c.BinaryCharacters))
	}
	for _, d := range c.Distributions {
		e.AddChild(w.distribution(d))
	}
	if c.Date != nil {
		e.AddChild(w.date(c.Date))
	}
	for _, r := range c.References {
		e.AddChild(w.reference(r))
	}
	for _, pr := range c.Properties {
		e.AddChild(w.property(pr))
	}
	for _, sub := range c.Clades {
		e.AddChild(w.clade(sub))
	}
	for _, o := range c.Other {
		e.AddChild(w.other(o, phylo.Namespace))
	}
	return e
}

func (w *Writer) accession(a *phylo.Accession) *etree.Element {
	e := etree.NewElement(w.tag("accession"))
	attrStr(e, "source", a.Source)
	e.SetText(a.Value)
	return e
}

func (w *Writer) annotation(a *phylo.Annotation) *etree.Element {
	e := etree.NewElement(w.tag("annotation"))
	attrStr(e, "ref", a.Ref)
	attrStr(e, "source", a.Source)
	attrStr(e, "evidence", a.Evidence)
	attrStr(e, "type", a.Type)
	w.textElem(e, "desc", a.Desc)
	if a.Confidence != nil {
		e.AddChild(w.confidence(a.Confidence))
	}
	for _, pr := range a.Properties {
		e.AddChild(w.property(pr))
	}
	if a.URI != nil {
		e.AddChild(w.uri(a.URI))
	}
	return e
}

func (w *Writer) binaryCharacters(bc *phylo.BinaryCharacters) *etree.Element {
	e := etree.NewElement(w.tag("binary_characters"))
	attrStr(e, "type", bc.Type)
	attrInt(e, "gained_count", bc.GainedCount)
	attrInt(e, "lost_count", bc.LostCount)
	attrInt(e, "present_count", bc.PresentCount)
	attrInt(e, "absent_count", bc.AbsentCount)
	for _, wrap := range []struct {
		tag    string
		tokens []string
	}{
		{"gained", bc.Gained},
		{"lost", bc.Lost},
		{"present", bc.Present},
		{"absent", bc.Absent},
	} {
		sub := e.CreateElement(w.tag(wrap.tag))
		for _, token := range wrap.tokens {
			sub.CreateElement(w.tag("bc")).SetText(token)
		}
	}
	return e
}

func (w *Writer) cladeRelation(cr *phylo.CladeRelation) *etree.Element {
	e := etree.NewElement(w.tag("clade_relation"))
	attrStr(e, "id_ref_0", cr.IDRef0)
	attrStr(e, "id_ref_1", cr.IDRef1)
	attrStr(e, "distance", cr.Distance)
	attrStr(e, "type", cr.Type)
	if cr.Confidence != nil {
		e.AddChild(w.confidence(cr.Confidence))
	}
	return e
}

func (w *Writer) color(c *phylo.BranchColor) *etree.Element {
	e := etree.NewElement(w.tag("color"))
	w.intElem(e, "red", c.Red)
	w.intElem(e, "green", c.Green)
	w.intElem(e, "blue", c.Blue)
	return e
}

func (w *Writer) confidence(c *phylo.Confidence) *etree.Element {
	e := etree.NewElement(w.tag("confidence"))
	attrStr(e, "type", c.Type)
	if c.Value != nil {
		e.SetText(formatFloat(*c.Value))
	}
	return e
}

func (w *Writer) date(d *phylo.Date) *etree.Element {
	e := etree.NewElement(w.tag("date"))
	attrStr(e, "unit", d.Unit)
	w.textElem(e, "desc", d.Desc)
	w.floatElem(e, "value", d.Value)
	w.floatElem(e, "minimum", d.Minimum)
	w.floatElem(e, "maximum", d.Maximum)
	return e
}

func (w *Writer) distribution(d *phylo.Distribution) *etree.Element {
	e := etree.NewElement(w.tag("distribution"))
	w.textElem(e, "desc", d.Desc)
	for _, pt := range d.Points {
		e.AddChild(w.point(pt))
	}
	for _, pg := range d.Polygons {
		e.AddChild(w.polygon(pg))
	}
	return e
}

func (w *Writer) domain(d *phylo.ProteinDomain) *etree.Element {
	e := etree.NewElement(w.tag("domain"))
	// zero-based in memory, one-based on the wire
	e.CreateAttr("from", strconv.Itoa(d.Start+1))
	e.CreateAttr("to", strconv.Itoa(d.End))
	attrFloat(e, "confidence", d.Confidence)
	attrStr(e, "id", d.ID)
	e.SetText(d.Value)
	return e
}

func (w *Writer) domainArchitecture(da *phylo.DomainArchitecture) *etree.Element {
	e := etree.NewElement(w.tag("domain_architecture"))
	e.CreateAttr("length", strconv.Itoa(da.Length))
	for _, d := range da.Domains {
		e.AddChild(w.domain(d))
	}
	return e
}

func (w *Writer) events(ev *phylo.Events) *etree.Element {
	e := etree.NewElement(w.tag("events"))
	w.textElem(e, "type", ev.Type)
	w.intElem(e, "duplications", ev.Duplications)
	w.intElem(e, "speciations", ev.Speciations)
	w.intElem(e, "losses", ev.Losses)
	if ev.Confidence != nil {
		e.AddChild(w.confidence(ev.Confidence))
	}
	return e
}

// id serializes an identifier under the given local tag; both id and
// node_id share the shape.
func (w *Writer) id(local string, id *phylo.ID) *etree.Element {
	e := etree.NewElement(w.tag(local))
	attrStr(e, "provider", id.Provider)
	e.SetText(id.Value)
	return e
}

func (w *Writer) molSeq(ms *phylo.MolSeq) *etree.Element {
	e := etree.NewElement(w.tag("mol_seq"))
	attrBool(e, "is_aligned", ms.IsAligned)
	e.SetText(ms.Value)
	return e
}

func (w *Writer) point(pt *phylo.Point) *etree.Element {
	e := etree.NewElement(w.tag("point"))
	attrStr(e, "geodetic_datum", pt.GeodeticDatum)
	attrStr(e, "alt_unit", pt.AltUnit)
	w.floatElem(e, "lat", pt.Lat)
	w.floatElem(e, "long", pt.Long)
	w.floatElem(e, "alt", pt.Alt)
	return e
}

func (w *Writer) polygon(pg *phylo.Polygon) *etree.Element {
	e := etree.NewElement(w.tag("polygon"))
	for _, pt := range pg.Points {
		e.AddChild(w.point(pt))
	}
	return e
}

func (w *Writer) property(pr *phylo.Property) *etree.Element {
	e := etree.NewElement(w.tag("property"))
	attrStr(e, "ref", pr.Ref)
	attrStr(e, "unit", pr.Unit)
	attrStr(e, "datatype", pr.Datatype)
	attrStr(e, "applies_to", pr.AppliesTo)
	attrStr(e, "id_ref", pr.IDRef)
	e.SetText(pr.Value)
	return e
}

func (w *Writer) reference(r *phylo.Reference) *etree.Element {
	e := etree.NewElement(w.tag("reference"))
	attrStr(e, "doi", r.DOI)
	w.textElem(e, "desc", r.Desc)
	return e
}

func (w *Writer) sequence(s *phylo.Sequence) *etree.Element {
	e := etree.NewElement(w.tag("sequence"))
	attrStr(e, "type", s.Type)
	attrStr(e, "id_ref", s.IDRef)
	attrStr(e, "id_source", s.IDSource)
	w.textElem(e, "symbol", s.Symbol)
	if s.Accession != nil {
		e.AddChild(w.accession(s.Accession))
	}
	w.textElem(e, "name", s.Name)
	w.textElem(e, "location", s.Location)
	if s.MolSeq != nil {
		e.AddChild(w.molSeq(s.MolSeq))
	}
	if s.URI != nil {
		e.AddChild(w.uri(s.URI))
	}
	for _, a := range s.Annotations {
		e.AddChild(w.annotation(a))
	}
	if s.DomainArchitecture != nil {
		e.AddChild(w.domainArchitecture(s.DomainArchitecture))
	}
	return e
}

func (w *Writer) sequenceRelation(sr *phylo.SequenceRelation) *etree.Element {
	e := etree.NewElement(w.tag("sequence_relation"))
	attrStr(e, "id_ref_0", sr.IDRef0)
	attrStr(e, "id_ref_1", sr.IDRef1)
	attrFloat(e, "distance", sr.Distance)
	attrStr(e, "type", sr.Type)
	if sr.Confidence != nil {
		e.AddChild(w.confidence(sr.Confidence))
	}
	return e
}

func (w *Writer) taxonomy(t *phylo.Taxonomy) *etree.Element {
	e := etree.NewElement(w.tag("taxonomy"))
	attrStr(e, "id_source", t.IDSource)
	if t.ID != nil {
		e.AddChild(w.id("id", t.ID))
	}
	w.textElem(e, "code", t.Code)
	w.textElem(e, "scientific_name", t.ScientificName)
	w.textElem(e, "authority", t.Authority)
	for _, cn := range t.CommonNames {
		e.CreateElement(w.tag("common_name")).SetText(cn)
	}
	for _, syn := range t.Synonyms {
		e.CreateElement(w.tag("synonym")).SetText(syn)
	}
	w.textElem(e, "rank", t.Rank)
	if t.URI != nil {
		e.AddChild(w.uri(t.URI))
	}
	return e
}

func (w *Writer) uri(u *phylo.URI) *etree.Element {
	e := etree.NewElement(w.tag("uri"))
	attrStr(e, "desc", u.Desc)
	attrStr(e, "type", u.Type)
	e.SetText(u.Value)
	return e
}
