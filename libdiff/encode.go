package libdiff

import (
	"io"
	"strings"

	"github.com/docshape/docshape/encode"
)

type encState struct {
	depth, indent int

	Color func(encode.ColorAttr, string) string
}

type EncodeOption func(*encState)

func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

func EncodeColors(c *encode.Colors) EncodeOption {
	return func(es *encState) { es.Color = c.Color }
}

// Encode writes a diff as an indented outline. Every line starts with
// the entry's marker column (" ", "+" or "-") followed by the tag at
// indentation proportional to depth,
//
//	  <sitemap>
//	+   <news />
//	-   <video />
//	  </sitemap>
func Encode(entries []*Entry, w io.Writer, opts ...EncodeOption) error {
	es := &encState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encodeEntries(entries, w, es)
}

func encodeEntries(entries []*Entry, w io.Writer, es *encState) error {
	for _, e := range entries {
		if len(e.Children) == 0 {
			if err := writeLine(w, es, e, "<"+e.Name+" />"); err != nil {
				return err
			}
			continue
		}
		if err := writeLine(w, es, e, "<"+e.Name+">"); err != nil {
			return err
		}
		es.depth++
		if err := encodeEntries(e.Children, w, es); err != nil {
			return err
		}
		es.depth--
		if err := writeLine(w, es, e, "</"+e.Name+">"); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, es *encState, e *Entry, tag string) error {
	ind := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	line := e.Kind.Marker() + " " + ind + tag
	if es.Color != nil {
		switch e.Kind {
		case Insert:
			line = es.Color(encode.InsertColor, line)
		case Delete:
			line = es.Color(encode.DeleteColor, line)
		}
	}
	_, err := w.Write([]byte(line + "\n"))
	return err
}
