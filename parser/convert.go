package parser

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/apisgirl/phyloxml/event"
	"github.com/apisgirl/phyloxml/phylo"
	"github.com/apisgirl/phyloxml/pxerr"
	"github.com/apisgirl/phyloxml/xmlutil"
)

// parseBool converts the two accepted boolean literal tokens. Any other
// string is a value error naming the offending text.
func parseBool(attribute, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, pxerr.InvalidBoolean(attribute, value)
}

func strPtr(s string) *string { return &s }

// optAttr returns the named attribute as an optional string.
func optAttr(el *event.Element, local string) *string {
	if v, ok := el.AttrOK(local); ok {
		return &v
	}
	return nil
}

// collapseText applies the collapse whitespace policy to an element's
// direct text, absent when nothing remains.
func collapseText(el *event.Element) *string {
	if s := xmlutil.CollapseWhitespace(el.Text()); s != "" {
		return &s
	}
	return nil
}

// collapseChild is collapseText over a named child element.
func collapseChild(el *event.Element, local string) *string {
	if t, ok := el.FindText(local); ok {
		if s := xmlutil.CollapseWhitespace(t); s != "" {
			return &s
		}
	}
	return nil
}

// textChild returns the trimmed direct text of a named child element.
func textChild(el *event.Element, local string) *string {
	if t, ok := el.FindText(local); ok {
		if s := strings.TrimSpace(t); s != "" {
			return &s
		}
	}
	return nil
}

// textChildren returns the trimmed texts of all matching child elements.
func textChildren(el *event.Element, local string) []string {
	var out []string
	for _, c := range el.FindAll(local) {
		if s := strings.TrimSpace(c.Text()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// floatVal leniently converts an optional scalar: an unparseable value
// degrades to absent rather than failing the parse.
func (p *Parser) floatVal(raw, field string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.log.Debug("discarding unparseable float", zap.String("field", field), zap.String("value", raw))
		return nil
	}
	return &f
}

func (p *Parser) intVal(raw, field string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		p.log.Debug("discarding unparseable int", zap.String("field", field), zap.String("value", raw))
		return nil
	}
	return &i
}

func (p *Parser) floatAttr(el *event.Element, local string) *float64 {
	if v, ok := el.AttrOK(local); ok {
		return p.floatVal(v, local)
	}
	return nil
}

func (p *Parser) intAttr(el *event.Element, local string) *int {
	if v, ok := el.AttrOK(local); ok {
		return p.intVal(v, local)
	}
	return nil
}

func (p *Parser) floatChild(el *event.Element, local string) *float64 {
	if t, ok := el.FindText(local); ok {
		return p.floatVal(t, local)
	}
	return nil
}

func (p *Parser) intChild(el *event.Element, local string) *int {
	if t, ok := el.FindText(local); ok {
		return p.intVal(t, local)
	}
	return nil
}

// One pure builder per recognized complex tag. Each reads a fixed set of
// attributes and child elements from the buffered subtree into the
// corresponding record.

func toAccession(el *event.Element) *phylo.Accession {
	return &phylo.Accession{
		Value:  strings.TrimSpace(el.Text()),
		Source: optAttr(el, "source"),
	}
}

func (p *Parser) toAnnotation(el *event.Element) *phylo.Annotation {
	a := &phylo.Annotation{
		Ref:      optAttr(el, "ref"),
		Source:   optAttr(el, "source"),
		Evidence: optAttr(el, "evidence"),
		Type:     optAttr(el, "type"),
		Desc:     collapseChild(el, "desc"),
	}
	if c := el.Find("confidence"); c != nil {
		a.Confidence = p.toConfidence(c)
	}
	for _, pr := range el.FindAll("property") {
		a.Properties = append(a.Properties, toProperty(pr))
	}
	if u := el.Find("uri"); u != nil {
		a.URI = toURI(u)
	}
	return a
}

func (p *Parser) toBinaryCharacters(el *event.Element) *phylo.BinaryCharacters {
	return &phylo.BinaryCharacters{
		Type:         optAttr(el, "type"),
		GainedCount:  p.intAttr(el, "gained_count"),
		LostCount:    p.intAttr(el, "lost_count"),
		PresentCount: p.intAttr(el, "present_count"),
		AbsentCount:  p.intAttr(el, "absent_count"),
		// flatten the BinaryCharacterList wrapper elements into lists
		Gained:  bcList(el.Find("gained")),
		Lost:    bcList(el.Find("lost")),
		Present: bcList(el.Find("present")),
		Absent:  bcList(el.Find("absent")),
	}
}

func bcList(el *event.Element) []string {
	if el == nil {
		return nil
	}
	var out []string
	for _, c := range el.FindAll("bc") {
		if t := strings.TrimSpace(c.Text()); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (p *Parser) toCladeRelation(el *event.Element) *phylo.CladeRelation {
	cr := &phylo.CladeRelation{
		Type:     optAttr(el, "type"),
		IDRef0:   optAttr(el, "id_ref_0"),
		IDRef1:   optAttr(el, "id_ref_1"),
		Distance: optAttr(el, "distance"),
	}
	if c := el.Find("confidence"); c != nil {
		cr.Confidence = p.toConfidence(c)
	}
	return cr
}

func (p *Parser) toColor(el *event.Element) *phylo.BranchColor {
	return &phylo.BranchColor{
		Red:   p.intChild(el, "red"),
		Green: p.intChild(el, "green"),
		Blue:  p.intChild(el, "blue"),
	}
}

func (p *Parser) toConfidence(el *event.Element) *phylo.Confidence {
	return &phylo.Confidence{
		Value: p.floatVal(el.Text(), "confidence"),
		Type:  optAttr(el, "type"),
	}
}

func (p *Parser) toDate(el *event.Element) *phylo.Date {
	return &phylo.Date{
		Unit:    optAttr(el, "unit"),
		Desc:    collapseChild(el, "desc"),
		Value:   p.floatChild(el, "value"),
		Minimum: p.floatChild(el, "minimum"),
		Maximum: p.floatChild(el, "maximum"),
	}
}

func (p *Parser) toDistribution(el *event.Element) *phylo.Distribution {
	d := &phylo.Distribution{Desc: collapseChild(el, "desc")}
	for _, pt := range el.FindAll("point") {
		d.Points = append(d.Points, p.toPoint(pt))
	}
	for _, pg := range el.FindAll("polygon") {
		d.Polygons = append(d.Polygons, p.toPolygon(pg))
	}
	return d
}

// toDomain converts a protein domain. The from/to attributes are required
// coordinates: unlike optional scalars, failure here is a value error.
func (p *Parser) toDomain(el *event.Element) (*phylo.ProteinDomain, error) {
	start, err := strconv.Atoi(strings.TrimSpace(el.Attr("from")))
	if err != nil {
		return nil, pxerr.InvalidValue("from", el.Attr("from"), pxerr.WithElement("domain"))
	}
	end, err := strconv.Atoi(strings.TrimSpace(el.Attr("to")))
	if err != nil {
		return nil, pxerr.InvalidValue("to", el.Attr("to"), pxerr.WithElement("domain"))
	}
	return &phylo.ProteinDomain{
		Value: strings.TrimSpace(el.Text()),
		// one-based on the wire, zero-based in memory
		Start:      start - 1,
		End:        end,
		Confidence: p.floatAttr(el, "confidence"),
		ID:         optAttr(el, "id"),
	}, nil
}

func (p *Parser) toDomainArchitecture(el *event.Element) (*phylo.DomainArchitecture, error) {
	length, err := strconv.Atoi(strings.TrimSpace(el.Attr("length")))
	if err != nil {
		return nil, pxerr.InvalidValue("length", el.Attr("length"), pxerr.WithElement("domain_architecture"))
	}
	da := &phylo.DomainArchitecture{Length: length}
	for _, d := range el.FindAll("domain") {
		dom, err := p.toDomain(d)
		if err != nil {
			return nil, err
		}
		da.Domains = append(da.Domains, dom)
	}
	return da, nil
}

func (p *Parser) toEvents(el *event.Element) *phylo.Events {
	e := &phylo.Events{
		Type:         textChild(el, "type"),
		Duplications: p.intChild(el, "duplications"),
		Speciations:  p.intChild(el, "speciations"),
		Losses:       p.intChild(el, "losses"),
	}
	if c := el.Find("confidence"); c != nil {
		e.Confidence = p.toConfidence(c)
	}
	return e
}

func toID(el *event.Element) *phylo.ID {
	provider := optAttr(el, "provider")
	if provider == nil {
		// legacy documents carry the provider in a type attribute
		provider = optAttr(el, "type")
	}
	return &phylo.ID{Value: strings.TrimSpace(el.Text()), Provider: provider}
}

func toMolSeq(el *event.Element) (*phylo.MolSeq, error) {
	ms := &phylo.MolSeq{Value: strings.TrimSpace(el.Text())}
	if v, ok := el.AttrOK("is_aligned"); ok {
		b, err := parseBool("is_aligned", v)
		if err != nil {
			return nil, err
		}
		ms.IsAligned = &b
	}
	return ms, nil
}

func (p *Parser) toPoint(el *event.Element) *phylo.Point {
	return &phylo.Point{
		GeodeticDatum: optAttr(el, "geodetic_datum"),
		Lat:           p.floatChild(el, "lat"),
		Long:          p.floatChild(el, "long"),
		Alt:           p.floatChild(el, "alt"),
		AltUnit:       optAttr(el, "alt_unit"),
	}
}

func (p *Parser) toPolygon(el *event.Element) *phylo.Polygon {
	pg := &phylo.Polygon{}
	for _, pt := range el.FindAll("point") {
		pg.Points = append(pg.Points, p.toPoint(pt))
	}
	return pg
}

func toProperty(el *event.Element) *phylo.Property {
	return &phylo.Property{
		Value:     strings.TrimSpace(el.Text()),
		Ref:       optAttr(el, "ref"),
		AppliesTo: optAttr(el, "applies_to"),
		Datatype:  optAttr(el, "datatype"),
		Unit:      optAttr(el, "unit"),
		IDRef:     optAttr(el, "id_ref"),
	}
}

func toReference(el *event.Element) *phylo.Reference {
	return &phylo.Reference{
		DOI:  optAttr(el, "doi"),
		Desc: textChild(el, "desc"),
	}
}

func (p *Parser) toSequence(el *event.Element) (*phylo.Sequence, error) {
	s := &phylo.Sequence{
		Type:     optAttr(el, "type"),
		IDRef:    optAttr(el, "id_ref"),
		IDSource: optAttr(el, "id_source"),
		Symbol:   textChild(el, "symbol"),
		Name:     collapseChild(el, "name"),
		Location: textChild(el, "location"),
	}
	if a := el.Find("accession"); a != nil {
		s.Accession = toAccession(a)
	}
	if m := el.Find("mol_seq"); m != nil {
		ms, err := toMolSeq(m)
		if err != nil {
			return nil, err
		}
		s.MolSeq = ms
	}
	if u := el.Find("uri"); u != nil {
		s.URI = toURI(u)
	}
	for _, an := range el.FindAll("annotation") {
		s.Annotations = append(s.Annotations, p.toAnnotation(an))
	}
	if da := el.Find("domain_architecture"); da != nil {
		arch, err := p.toDomainArchitecture(da)
		if err != nil {
			return nil, err
		}
		s.DomainArchitecture = arch
	}
	return s, nil
}

func (p *Parser) toSequenceRelation(el *event.Element) *phylo.SequenceRelation {
	sr := &phylo.SequenceRelation{
		Type:     optAttr(el, "type"),
		IDRef0:   optAttr(el, "id_ref_0"),
		IDRef1:   optAttr(el, "id_ref_1"),
		Distance: p.floatAttr(el, "distance"),
	}
	if c := el.Find("confidence"); c != nil {
		sr.Confidence = p.toConfidence(c)
	}
	return sr
}

func (p *Parser) toTaxonomy(el *event.Element) *phylo.Taxonomy {
	t := &phylo.Taxonomy{
		IDSource:       optAttr(el, "id_source"),
		Code:           textChild(el, "code"),
		ScientificName: textChild(el, "scientific_name"),
		Authority:      textChild(el, "authority"),
		CommonNames:    textChildren(el, "common_name"),
		Synonyms:       textChildren(el, "synonym"),
		Rank:           textChild(el, "rank"),
	}
	if id := el.Find("id"); id != nil {
		t.ID = toID(id)
	}
	if u := el.Find("uri"); u != nil {
		t.URI = toURI(u)
	}
	return t
}

func toURI(el *event.Element) *phylo.URI {
	u := &phylo.URI{
		Value: strings.TrimSpace(el.Text()),
		Type:  optAttr(el, "type"),
	}
	if d, ok := el.AttrOK("desc"); ok {
		if s := xmlutil.CollapseWhitespace(d); s != "" {
			u.Desc = &s
		}
	}
	return u
}
