package stream

import (
	"io"

	"github.com/docshape/docshape/shape"
)

// Builder folds Open/Close events into a shape tree. It keeps the current
// position as a stack of nodes whose bottom element is always the root; a
// Builder is single-pass and not reentrant.
type Builder struct {
	root  *shape.Node
	stack []*shape.Node
	state *State
	opts  *buildOpts
}

// NewBuilder creates a Builder positioned at a fresh root.
func NewBuilder(opts ...BuildOption) *Builder {
	buildOpts := &buildOpts{}
	for _, opt := range opts {
		opt(buildOpts)
	}
	root := shape.NewRoot()
	return &Builder{
		root:  root,
		stack: []*shape.Node{root},
		state: NewState(),
		opts:  buildOpts,
	}
}

// Process consumes one event.
//
// An open event moves the current position to the named child of the
// current node, creating it on first sighting and reusing it afterwards.
// A close event moves back to the parent; the event's name is not checked
// against the node being closed, well-nesting is the tokenizer's
// responsibility. A close while only the root remains is handled per the
// configured ClosePolicy.
func (b *Builder) Process(ev *Event) error {
	switch ev.Type {
	case EventOpenElement:
		cur := b.stack[len(b.stack)-1]
		b.stack = append(b.stack, cur.Ensure(ev.Name))
	case EventCloseElement:
		if len(b.stack) == 1 {
			if b.opts.closePolicy == CloseError {
				return ErrCloseAtRoot
			}
			return nil
		}
		b.stack = b.stack[:len(b.stack)-1]
	}
	b.state.ProcessEvent(ev)
	return nil
}

// Root returns the root of the tree built so far. After the event
// sequence ends the returned node owns the complete shape; unbalanced
// input yields a partially open tree, which is fine because only
// structural shape is recorded.
func (b *Builder) Root() *shape.Node {
	return b.root
}

// Depth returns the current position's depth.
func (b *Builder) Depth() int {
	return len(b.stack) - 1
}

// MaxDepth returns the maximum depth reached during construction.
func (b *Builder) MaxDepth() int {
	return b.state.MaxDepth()
}

// Build drains dec and returns the resulting shape tree. A truncated
// stream (see Decoder) yields the partial tree without error.
func Build(dec *Decoder, opts ...BuildOption) (*shape.Node, error) {
	b := NewBuilder(opts...)
	for {
		ev, err := dec.ReadEvent()
		if err == io.EOF {
			return b.Root(), nil
		}
		if err != nil {
			return nil, err
		}
		if err := b.Process(ev); err != nil {
			return nil, err
		}
	}
}

// BuildEvents folds an event slice into a shape tree.
func BuildEvents(events []Event, opts ...BuildOption) (*shape.Node, error) {
	b := NewBuilder(opts...)
	for i := range events {
		if err := b.Process(&events[i]); err != nil {
			return nil, err
		}
	}
	return b.Root(), nil
}
