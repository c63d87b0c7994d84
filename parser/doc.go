// Package parser reads phyloXML documents from a stream of element
// events in a single forward pass.
//
// Two entry points are provided. ReadDocument materializes the whole
// document eagerly, including top-level content outside the phyloXML
// namespace. Trees returns a pull iterator producing one phylogeny at a
// time; content between phylogenies is discarded, and stopping early
// leaves the remaining input untouched.
//
// The clade element nests inside itself to unbounded depth and the same
// tag names recur at every depth. Each recursion level keeps a local
// stack of open phyloXML tags so that an end event is attributed to a
// level only when it closes a direct child there; end events of deeper
// elements are left to their parent's builder. Foreign-namespace content
// is tracked by a depth counter per level and snapshotted as a whole
// subtree when the counter returns to zero.
//
// Once a phylogeny or clade has been converted, its buffered element
// content is released, bounding peak memory to the current path through
// the tree plus the converted object graph.
//
// Failure classes are disjoint: XML well-formedness errors from the
// decoder propagate unmodified, schema shape violations return pxerr
// errors, and unparseable optional scalar values degrade to an absent
// field (reported to the configured logger at debug level).
package parser
