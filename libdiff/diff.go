// Package libdiff computes structural diffs between two shape trees.
//
// A diff is a list of entries mirroring the union of both trees: every
// name present only in the first tree is marked Delete, every name
// present only in the second is marked Insert, and names present in both
// recurse. Child name sequences are aligned with a rune-level diff so
// the usual insert/delete/equal runs fall out directly.
package libdiff

import (
	"github.com/docshape/docshape/shape"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Kind classifies a diff entry.
type Kind int

const (
	Same Kind = iota
	Insert
	Delete
)

func (k Kind) String() string {
	switch k {
	case Same:
		return "Same"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Marker returns the single-character diff marker for this kind.
func (k Kind) Marker() string {
	switch k {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Entry is one node of a shape diff.
type Entry struct {
	Name     string
	Kind     Kind
	Children []*Entry
}

// Diff compares the children of from and to, returning entries in sorted
// name order per level. Identical shapes produce all-Same entries; see
// Changed.
func Diff(from, to *shape.Node) []*Entry {
	nameMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapNamesTo(nameMap, runeMap, from)
	toRunes := mapNamesTo(nameMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []*Entry
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				name := runeMap[r]
				res = append(res, mark(from.Get(name), Delete))
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				name := runeMap[r]
				res = append(res, &Entry{
					Name:     name,
					Kind:     Same,
					Children: Diff(from.Get(name), to.Get(name)),
				})
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				name := runeMap[r]
				res = append(res, mark(to.Get(name), Insert))
			}
		}
	}
	return res
}

// Changed reports whether any entry, recursively, is not Same.
func Changed(entries []*Entry) bool {
	for _, e := range entries {
		if e.Kind != Same {
			return true
		}
		if Changed(e.Children) {
			return true
		}
	}
	return false
}

// mark builds an entry for node with the whole subtree carrying kind.
func mark(node *shape.Node, kind Kind) *Entry {
	res := &Entry{
		Name: node.Name,
		Kind: kind,
	}
	for _, name := range node.Names() {
		res.Children = append(res.Children, mark(node.Get(name), kind))
	}
	return res
}

func mapNamesTo(m map[string]rune, im map[rune]string, node *shape.Node) []rune {
	names := node.Names()
	rs := make([]rune, len(names))
	for i, name := range names {
		r, ok := m[name]
		if !ok {
			r = rune(len(m))
			m[name] = r
			im[r] = name
		}
		rs[i] = r
	}
	return rs
}
