// Package event adapts an XML token decoder into an ordered, depth-first
// stream of element start and end events with per-subtree buffering.
//
// A start event fires when an element's open tag has been consumed: its
// attributes are available but its content is not. The matching end event
// delivers the same Element with its direct text and child elements fully
// buffered. Once a consumer has converted a subtree to its permanent form
// it calls Release on the element, discarding the buffered content so
// that peak memory is bounded by the current path through the document
// rather than the whole input.
//
// The stream never backtracks. XML well-formedness errors from the
// underlying decoder propagate unmodified.
package event
