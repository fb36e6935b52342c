// Package encode renders shape trees to text.
//
// The default rendering is an indented XML outline: a leaf becomes a
// self-closing tag and a node with children becomes an open/close pair
// wrapping its recursively rendered children,
//
//	<parent>
//	  <child />
//	</parent>
//
// YAML and JSON renderings of the same nested name structure are selected
// with EncodeFormat. Children are always written in sorted name order so
// that output is deterministic; sibling order carries no meaning in a
// shape.
//
// Encoding is a read-only traversal and never mutates the tree.
package encode
