package encode

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/docshape/docshape/format"
	"github.com/docshape/docshape/shape"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ColorAttr, string) string
}

// Encode writes node's shape to w. The node itself is treated as the
// document boundary: its children are rendered, its own name is not.
func Encode(node *shape.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch {
	case es.format.IsYAML():
		return encodeYAML(node, w, es)
	case es.format.IsJSON():
		return encodeJSON(node, w, es)
	default:
		return encodeXML(node, w, es)
	}
}

func encodeXML(node *shape.Node, w io.Writer, es *EncState) error {
	for _, name := range node.Names() {
		child := node.Children[name]
		if child.IsLeaf() {
			if err := writeString(w, es.indentString()+es.color(BracketColor, "<")+es.color(NameColor, name)+es.color(BracketColor, " />")+"\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, es.indentString()+es.color(BracketColor, "<")+es.color(NameColor, name)+es.color(BracketColor, ">")+"\n"); err != nil {
			return err
		}
		es.depth++
		if err := encodeXML(child, w, es); err != nil {
			return err
		}
		es.depth--
		if err := writeString(w, es.indentString()+es.color(BracketColor, "</")+es.color(NameColor, name)+es.color(BracketColor, ">")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeYAML(node *shape.Node, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(toMapSlice(node), yaml.Indent(es.indent))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// toMapSlice builds an ordered mapping so YAML output is deterministic.
func toMapSlice(node *shape.Node) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, node.Len())
	for _, name := range node.Names() {
		res = append(res, yaml.MapItem{
			Key:   name,
			Value: toMapSlice(node.Children[name]),
		})
	}
	return res
}

func encodeJSON(node *shape.Node, w io.Writer, es *EncState) error {
	d, err := json.MarshalIndent(toMap(node), "", strings.Repeat(" ", es.indent))
	if err != nil {
		return err
	}
	if err := writeString(w, string(d)); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func toMap(node *shape.Node) map[string]any {
	res := make(map[string]any, node.Len())
	for name, c := range node.Children {
		res[name] = toMap(c)
	}
	return res
}

func (es *EncState) indentString() string {
	return strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
