package encode

import (
	"bytes"

	"github.com/docshape/docshape/shape"
)

// MustString encodes node to a string, panicking on error. Intended for
// tests and debugging.
func MustString(node *shape.Node, opts ...EncodeOption) string {
	var buf bytes.Buffer
	if err := Encode(node, &buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
