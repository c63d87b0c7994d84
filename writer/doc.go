// Package writer serializes a phyloXML document to its canonical wire
// form.
//
// Each complex type has a fixed, ordered attribute list and a fixed,
// ordered subnode list; emission order is always the schema-declared
// order, independent of the order in which fields were populated while
// reading, so output is deterministic and diffable. Absent optional
// fields are omitted. Content outside the phyloXML namespace is
// re-emitted recursively and unchanged.
//
// The element tree is fully built before a single byte is written: either
// the whole document serializes or the sink error propagates unmodified.
package writer
