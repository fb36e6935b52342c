package shape

import "testing"

func leaf() *Node { return FromMap(nil) }

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"empty", NewRoot(), NewRoot(), true},
		{"nil both", nil, nil, true},
		{"nil one", nil, NewRoot(), false},
		{
			"single",
			FromMap(map[string]*Node{"parent": nil}),
			FromMap(map[string]*Node{"parent": nil}),
			true,
		},
		{
			"different name",
			FromMap(map[string]*Node{"a": nil}),
			FromMap(map[string]*Node{"b": nil}),
			false,
		},
		{
			"different subtree",
			FromMap(map[string]*Node{"a": FromMap(map[string]*Node{"x": nil})}),
			FromMap(map[string]*Node{"a": nil}),
			false,
		},
		{
			"insertion order irrelevant",
			FromMap(map[string]*Node{"a": nil, "b": nil}),
			func() *Node {
				n := NewRoot()
				n.Ensure("b")
				n.Ensure("a")
				return n
			}(),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			// Equal is symmetric.
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"nil less", nil, NewRoot(), -1},
		{"fewer children less", NewRoot(), FromMap(map[string]*Node{"a": nil}), -1},
		{
			"name order",
			FromMap(map[string]*Node{"a": nil}),
			FromMap(map[string]*Node{"b": nil}),
			-1,
		},
		{
			"subtree order",
			FromMap(map[string]*Node{"a": nil}),
			FromMap(map[string]*Node{"a": FromMap(map[string]*Node{"x": nil})}),
			-1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestCompareSelf(t *testing.T) {
	n := FromMap(map[string]*Node{"a": leaf(), "b": leaf()})
	if got := Compare(n, n); got != 0 {
		t.Errorf("Compare(n, n) = %d, want 0", got)
	}
}
