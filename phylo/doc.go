// Package phylo defines the object model for phyloXML documents: a
// Document holding phylogenetic trees (Phylogeny), the recursive tree
// node type (Clade), lossless snapshots of content outside the phyloXML
// namespace (Other), and the flat annotation record types attached to
// trees and clades.
//
// The record types mirror the phyloXML 1.00 complex types. Optional
// scalar fields are pointers so that an absent value is distinct from a
// zero value; the writer omits absent fields.
package phylo
