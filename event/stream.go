package event

import (
	"encoding/xml"
	"io"
)

// Kind discriminates element boundary events.
type Kind int

const (
	// Start is delivered when an element's open tag has been consumed
	Start Kind = iota
	// End is delivered when an element's close tag has been consumed
	End
)

// Event is a single element boundary: exactly one Start and one End event
// is delivered per element, strictly depth-first.
type Event struct {
	Kind    Kind
	Element *Element
}

// Stream is a single forward cursor over an XML document's element
// events. At most one pass is ever active; Stream is not safe for
// concurrent use.
type Stream struct {
	d      *xml.Decoder
	stack  []*Element
	root   *Element
	events int
}

// NewStream returns a Stream reading the XML document from r.
func NewStream(r io.Reader) *Stream {
	return &Stream{d: xml.NewDecoder(r)}
}

// Next returns the next element boundary event. It returns io.EOF once
// the input is exhausted, and decoder errors unmodified.
func (s *Stream) Next() (Event, error) {
	for {
		token, err := s.d.Token()
		if err != nil {
			return Event{}, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			el := newElement(t.Copy())
			if n := len(s.stack); n > 0 {
				s.stack[n-1].appendChild(el)
			}
			if s.root == nil {
				s.root = el
			}
			s.stack = append(s.stack, el)
			s.events++
			return Event{Kind: Start, Element: el}, nil

		case xml.EndElement:
			n := len(s.stack)
			el := s.stack[n-1]
			s.stack = s.stack[:n-1]
			s.events++
			return Event{Kind: End, Element: el}, nil

		case xml.CharData:
			if n := len(s.stack); n > 0 {
				s.stack[n-1].appendText(t)
			}

		default:
			// comments, directives and processing instructions carry no
			// element structure
		}
	}
}

// Root returns the document's root element once its start event has been
// seen, or nil.
func (s *Stream) Root() *Element { return s.root }

// EventCount returns the number of element boundary events delivered so
// far. Used to verify how much of the input a consumer touched.
func (s *Stream) EventCount() int { return s.events }
