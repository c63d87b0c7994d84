package pxerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error represents a phyloXML structural or value error: well-formed XML
// which violates the phyloXML schema's shape invariants, or an attribute
// value outside its schema-declared value space.
//
// XML syntax errors are raised by the underlying decoder and are never
// wrapped in this type; use IsStructural to distinguish the two classes.
type Error struct {
	// Tag identifies the violated invariant
	Tag string
	// Element is the local name of the offending element, where known
	Element string
	// Attribute is the offending attribute name, where relevant
	Attribute string
	// Value is the offending attribute or text value, where relevant
	Value string
	// Message is an optional free-form description
	Message string
}

func (e *Error) Error() string {
	s := "phyloxml error tag:" + e.Tag
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Attribute != "" {
		s += " attribute:" + e.Attribute
	}
	if e.Value != "" {
		s += fmt.Sprintf(" value:%q", e.Value)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// IsStructural reports whether err (or its cause) is a phyloXML schema
// error, as opposed to an XML well-formedness error from the decoder.
func IsStructural(err error) bool {
	_, ok := errors.Cause(err).(*Error)
	return ok
}

// DuplicateRootNode is returned when a phylogeny already holding a root
// clade encounters a second top-level clade element.
func DuplicateRootNode(opts ...Option) error {
	e := &Error{
		Tag:     "duplicate-root-node",
		Element: "clade",
		Message: "phylogeny already has a root clade",
	}
	for _, opt := range opts {
		opt(e)
	}
	return errors.WithStack(e)
}

// BranchLengthSetTwice is returned when a clade's branch length arrives
// both as an attribute and as a child element.
func BranchLengthSetTwice(opts ...Option) error {
	e := &Error{
		Tag:       "branch-length-set-twice",
		Element:   "clade",
		Attribute: "branch_length",
		Message:   "branch_length set twice for this clade",
	}
	for _, opt := range opts {
		opt(e)
	}
	return errors.WithStack(e)
}

// UnexpectedElement is returned for a phyloXML-namespace element that has
// no schema position at the current nesting level.
func UnexpectedElement(element string, opts ...Option) error {
	e := &Error{
		Tag:     "unexpected-element",
		Element: element,
		Message: "element not recognized in this position",
	}
	for _, opt := range opts {
		opt(e)
	}
	return errors.WithStack(e)
}

// InvalidBoolean is returned when a boolean-typed attribute holds a value
// other than the literal tokens "true" and "false".
func InvalidBoolean(attribute, value string, opts ...Option) error {
	e := &Error{
		Tag:       "invalid-boolean",
		Attribute: attribute,
		Value:     value,
		Message:   `value must be "true" or "false"`,
	}
	for _, opt := range opts {
		opt(e)
	}
	return errors.WithStack(e)
}

// InvalidValue is returned when a required attribute or text value cannot
// be converted to its schema-declared type.
func InvalidValue(attribute, value string, opts ...Option) error {
	e := &Error{
		Tag:       "invalid-value",
		Attribute: attribute,
		Value:     value,
	}
	for _, opt := range opts {
		opt(e)
	}
	return errors.WithStack(e)
}
