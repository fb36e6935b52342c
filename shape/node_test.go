package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnsureCreatesOnce(t *testing.T) {
	root := NewRoot()
	a := root.Ensure("a")
	if a == nil {
		t.Fatal("Ensure returned nil")
	}
	if a.Name != "a" {
		t.Errorf("Name = %q, want %q", a.Name, "a")
	}
	if a.Parent != root {
		t.Error("Parent not wired to root")
	}
	if got := root.Ensure("a"); got != a {
		t.Error("second Ensure did not reuse existing child")
	}
	if root.Len() != 1 {
		t.Errorf("Len = %d, want 1", root.Len())
	}
}

func TestEnsureKeepsSubtree(t *testing.T) {
	root := NewRoot()
	root.Ensure("a").Ensure("b")
	a := root.Ensure("a")
	if a.Get("b") == nil {
		t.Error("reusing a child dropped its subtree")
	}
}

func TestDepthAndRoot(t *testing.T) {
	root := NewRoot()
	c := root.Ensure("a").Ensure("b").Ensure("c")
	if got := c.Depth(); got != 3 {
		t.Errorf("Depth = %d, want 3", got)
	}
	if c.Root() != root {
		t.Error("Root did not reach the tree root")
	}
	if !root.IsRoot() || c.IsRoot() {
		t.Error("IsRoot mismatch")
	}
	if !c.IsLeaf() || root.IsLeaf() {
		t.Error("IsLeaf mismatch")
	}
}

func TestPath(t *testing.T) {
	root := NewRoot()
	b := root.Ensure("a").Ensure("b")
	if got := root.Path(); got != "" {
		t.Errorf("root Path = %q, want \"\"", got)
	}
	if got := b.Path(); got != "a/b" {
		t.Errorf("Path = %q, want %q", got, "a/b")
	}
}

func TestCountAndMaxDepth(t *testing.T) {
	root := FromMap(map[string]*Node{
		"a": FromMap(map[string]*Node{
			"b": FromMap(map[string]*Node{"c": nil}),
		}),
		"d": nil,
	})
	if got := root.Count(); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
	if got := root.MaxDepth(); got != 3 {
		t.Errorf("MaxDepth = %d, want 3", got)
	}
}

func TestNames(t *testing.T) {
	root := NewRoot()
	root.Ensure("c")
	root.Ensure("a")
	root.Ensure("b")
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, root.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitOrder(t *testing.T) {
	root := FromMap(map[string]*Node{
		"b": FromMap(map[string]*Node{"x": nil}),
		"a": nil,
	})
	var pre, post []string
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Name)
		} else {
			pre = append(pre, n.Name)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"", "a", "b", "x"}, pre); diff != "" {
		t.Errorf("pre-order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "x", "b", ""}, post); diff != "" {
		t.Errorf("post-order mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitSkip(t *testing.T) {
	root := FromMap(map[string]*Node{
		"a": FromMap(map[string]*Node{"x": nil}),
	})
	var seen []string
	root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			seen = append(seen, n.Name)
		}
		return n.Name != "a", nil
	})
	if diff := cmp.Diff([]string{"", "a"}, seen); diff != "" {
		t.Errorf("skip mismatch (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	root := FromMap(map[string]*Node{
		"a": FromMap(map[string]*Node{"b": nil}),
	})
	cl := root.Clone()
	if !Equal(root, cl) {
		t.Fatal("clone not equal to original")
	}
	cl.Ensure("c")
	if Equal(root, cl) {
		t.Error("mutating clone affected original")
	}
	b := cl.Get("a").Get("b")
	if b.Root() != cl {
		t.Error("clone parent links not rewired")
	}
}
