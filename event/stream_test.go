package event

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, doc string) []Event {
	t.Helper()
	s := NewStream(strings.NewReader(doc))
	var evs []Event
	for {
		ev, err := s.Next()
		if err == io.EOF {
			return evs
		}
		require.NoError(t, err)
		evs = append(evs, ev)
	}
}

func TestStreamOrder(t *testing.T) {
	evs := collect(t, `<a><b><c/></b><d/></a>`)
	var got []string
	for _, ev := range evs {
		if ev.Kind == Start {
			got = append(got, "+"+ev.Element.Name.Local)
		} else {
			got = append(got, "-"+ev.Element.Name.Local)
		}
	}
	assert.Equal(t, []string{"+a", "+b", "+c", "-c", "-b", "+d", "-d", "-a"}, got)
}

func TestStreamBuffering(t *testing.T) {
	doc := `<taxonomy xmlns="http://www.phyloxml.org" id_source="x">
	  <code>OCTVU</code>
	  <scientific_name>Octopus vulgaris</scientific_name>
	</taxonomy>`
	s := NewStream(strings.NewReader(doc))

	ev, err := s.Next()
	require.NoError(t, err)
	check := assert.New(t)
	check.Equal(Start, ev.Kind)
	check.Equal("taxonomy", ev.Element.Name.Local)
	check.Equal("http://www.phyloxml.org", ev.Element.Name.Space)
	check.Equal("x", ev.Element.Attr("id_source"))
	// attributes only; no content buffered yet
	check.Empty(ev.Element.Children())

	root := ev.Element
	for {
		ev, err = s.Next()
		require.NoError(t, err)
		if ev.Kind == End && ev.Element == root {
			break
		}
	}
	check.Len(root.Children(), 2)
	code, ok := root.FindText("code")
	check.True(ok)
	check.Equal("OCTVU", code)
	check.Equal("Octopus vulgaris", root.Find("scientific_name").Text())
	check.Nil(root.Find("rank"))
	_, ok = root.FindText("rank")
	check.False(ok)
}

func TestStreamDirectTextOnly(t *testing.T) {
	evs := collect(t, `<a>head<b>inner</b>tail</a>`)
	a := evs[len(evs)-1].Element
	assert.Equal(t, "head", a.Text())
	assert.Equal(t, "inner", a.Find("b").Text())
}

func TestStreamExcludesNamespaceDeclarations(t *testing.T) {
	evs := collect(t, `<a xmlns="urn:x" xmlns:y="urn:y" k="v"/>`)
	a := evs[0].Element
	require.Len(t, a.Attrs, 1)
	assert.Equal(t, "k", a.Attrs[0].Name.Local)
	assert.Equal(t, "urn:x", a.Name.Space)
}

func TestElementRelease(t *testing.T) {
	evs := collect(t, `<a k="v">text<b/></a>`)
	a := evs[len(evs)-1].Element
	require.NotEmpty(t, a.Children())
	a.Release()
	check := assert.New(t)
	check.Empty(a.Children())
	check.Empty(a.Text())
	check.Empty(a.Attrs)
	check.Equal("a", a.Name.Local)
}

func TestStreamSyntaxErrorPropagates(t *testing.T) {
	s := NewStream(strings.NewReader(`<a><b></a>`))
	var err error
	for err == nil {
		_, err = s.Next()
	}
	assert.NotEqual(t, io.EOF, err)
	assert.Contains(t, err.Error(), "XML syntax error")
}

func TestStreamEventCount(t *testing.T) {
	s := NewStream(strings.NewReader(`<a><b/></a>`))
	for i := 0; i < 3; i++ {
		_, err := s.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, 3, s.EventCount())
	_, err := s.Next()
	require.NoError(t, err)
	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 4, s.EventCount())
}
