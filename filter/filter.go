// Package filter prunes shape trees with boolean expressions.
//
// An expression is evaluated once per node against a small environment:
//
//	name      the node's tag name
//	depth     nesting depth below the root (top-level tags are depth 1)
//	leaf      true when the node has no children
//	path      slash-joined names from the root, e.g. "sitemap/url"
//	children  number of distinct child names
//
// A node is kept when its expression is true or when any descendant is
// kept; ancestors of a match always survive so the result is itself a
// well-formed shape. The input tree is never mutated.
package filter

import (
	"errors"

	"github.com/docshape/docshape/shape"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrNotBool is returned when a filter expression evaluates to a
// non-boolean value.
var ErrNotBool = errors.New("filter expression must return a boolean")

// Filter is a compiled node predicate.
type Filter struct {
	prg *vm.Program
}

// Compile compiles src into a Filter.
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(nodeEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Filter{prg: prg}, nil
}

// Apply returns a new tree holding every node of root for which the
// filter is true, plus the ancestors of those nodes.
func (f *Filter) Apply(root *shape.Node) (*shape.Node, error) {
	res := shape.NewRoot()
	for _, name := range root.Names() {
		kept, err := f.prune(root.Get(name))
		if err != nil {
			return nil, err
		}
		if kept == nil {
			continue
		}
		kept.Parent = res
		res.Children[name] = kept
	}
	return res, nil
}

// prune returns a filtered copy of src, or nil when neither src nor any
// of its descendants match.
func (f *Filter) prune(src *shape.Node) (*shape.Node, error) {
	node := &shape.Node{
		Name:     src.Name,
		Children: map[string]*shape.Node{},
	}
	for _, name := range src.Names() {
		kept, err := f.prune(src.Get(name))
		if err != nil {
			return nil, err
		}
		if kept == nil {
			continue
		}
		kept.Parent = node
		node.Children[name] = kept
	}
	match, err := f.eval(src)
	if err != nil {
		return nil, err
	}
	if !match && len(node.Children) == 0 {
		return nil, nil
	}
	return node, nil
}

func (f *Filter) eval(n *shape.Node) (bool, error) {
	res, err := expr.Run(f.prg, nodeEnv(n))
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, ErrNotBool
	}
	return b, nil
}

func nodeEnv(n *shape.Node) map[string]any {
	if n == nil {
		// compile-time environment: names and types only
		return map[string]any{
			"name":     "",
			"depth":    0,
			"leaf":     false,
			"path":     "",
			"children": 0,
		}
	}
	return map[string]any{
		"name":     n.Name,
		"depth":    n.Depth(),
		"leaf":     n.IsLeaf(),
		"path":     n.Path(),
		"children": n.Len(),
	}
}
