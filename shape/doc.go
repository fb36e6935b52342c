// Package shape provides the tree of distinct tag names extracted from a
// document.
//
// # Overview
//
// A shape records, at every nesting level of a document, the set of tag
// names seen at that level. Sibling elements with the same name collapse
// into a single Node, so the tree describes the document's tag vocabulary
// rather than its content. Element order, attributes and text are not
// represented.
//
// # Node Structure
//
// A Node owns a map from tag name to child Node. Every Node except the
// root has exactly one parent; the Parent pointer is for navigation only
// and carries no ownership. The root is a distinguished Node with an empty
// name which is never matched against a tag, it simply holds the top-level
// set of distinct tags.
//
// Two shapes are equal when their children maps are recursively equal,
// name for name and subtree for subtree. Insertion order never matters;
// see Equal and Compare.
//
// Shapes are built by the stream package and rendered by the encode
// package.
package shape
