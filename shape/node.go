package shape

import (
	"maps"
	"slices"
)

// Node is one distinct tag name at one position in the nesting hierarchy.
// The zero value is not usable; construct nodes with NewRoot, Ensure or
// FromMap so that Children is non-nil and Parent links are wired.
type Node struct {
	Name     string
	Parent   *Node
	Children map[string]*Node
}

// NewRoot returns a root node representing the document boundary.
func NewRoot() *Node {
	return &Node{Children: map[string]*Node{}}
}

// Get returns the child with the given name, or nil.
func (n *Node) Get(name string) *Node {
	return n.Children[name]
}

// Ensure returns the child with the given name, creating it on first
// sighting. Repeat sightings reuse the existing child and leave its
// subtree intact.
func (n *Node) Ensure(name string) *Node {
	if c, ok := n.Children[name]; ok {
		return c
	}
	c := &Node{
		Name:     name,
		Parent:   n,
		Children: map[string]*Node{},
	}
	n.Children[name] = c
	return c
}

func (n *Node) IsRoot() bool { return n.Parent == nil }

func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Len returns the number of distinct child names.
func (n *Node) Len() int { return len(n.Children) }

// Names returns the child names in sorted order.
func (n *Node) Names() []string {
	return slices.Sorted(maps.Keys(n.Children))
}

// Depth returns the number of parent links between n and its root.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Root follows parent links to the root of n's tree.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Path returns the slash-joined names from the root down to n. The root
// itself has path "".
func (n *Node) Path() string {
	if n.Parent == nil {
		return ""
	}
	pp := n.Parent.Path()
	if pp == "" {
		return n.Name
	}
	return pp + "/" + n.Name
}

// Count returns the number of nodes strictly below n.
func (n *Node) Count() int {
	res := len(n.Children)
	for _, c := range n.Children {
		res += c.Count()
	}
	return res
}

// MaxDepth returns the depth of the deepest node below n, relative to n.
// A leaf has MaxDepth 0.
func (n *Node) MaxDepth() int {
	res := 0
	for _, c := range n.Children {
		if d := c.MaxDepth() + 1; d > res {
			res = d
		}
	}
	return res
}

// Visit traverses n and its subtree in sorted-name order. f is called
// twice per node, pre-order with isPost false and post-order with isPost
// true; returning false from the pre-order call skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, name := range n.Names() {
			if err := n.Children[name].Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Clone returns a deep copy of n with Parent links rewired within the
// copy. The copy's Parent is nil, making it a root of its own tree.
func (n *Node) Clone() *Node {
	res := &Node{
		Name:     n.Name,
		Children: make(map[string]*Node, len(n.Children)),
	}
	for name, c := range n.Children {
		cc := c.Clone()
		cc.Parent = res
		res.Children[name] = cc
	}
	return res
}

// FromMap builds a node from a name to subtree mapping, wiring names and
// parent links. Entries may be nil, standing for leaves.
func FromMap(children map[string]*Node) *Node {
	res := NewRoot()
	for name, c := range children {
		if c == nil {
			c = &Node{Children: map[string]*Node{}}
		}
		c.Name = name
		c.Parent = res
		res.Children[name] = c
	}
	return res
}
