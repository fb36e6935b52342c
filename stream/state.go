package stream

// State provides minimal stack/path tracking over Open/Close events.
// Just processes events and tracks nesting, no tokenization, no
// io.Reader. Use this if you already have events and only need depth or
// path information.
type State struct {
	stack    []string
	maxDepth int
}

// NewState creates a State for tracking nesting.
func NewState() *State {
	return &State{}
}

// ProcessEvent updates the state with one event. Call this for each event
// in order. A close event at depth 0 is tolerated and leaves the state
// unchanged.
func (s *State) ProcessEvent(ev *Event) {
	switch ev.Type {
	case EventOpenElement:
		s.stack = append(s.stack, ev.Name)
		if len(s.stack) > s.maxDepth {
			s.maxDepth = len(s.stack)
		}
	case EventCloseElement:
		if len(s.stack) == 0 {
			return
		}
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Depth returns the current nesting depth (0 = document root).
func (s *State) Depth() int {
	return len(s.stack)
}

// MaxDepth returns the maximum depth reached so far.
func (s *State) MaxDepth() int {
	return s.maxDepth
}

// CurrentName returns the name of the innermost open element, or "" at
// the root.
func (s *State) CurrentName() string {
	if len(s.stack) == 0 {
		return ""
	}
	return s.stack[len(s.stack)-1]
}

// CurrentPath returns the slash-joined names of the open elements, e.g.
// "parent/child". At the root it returns "".
func (s *State) CurrentPath() string {
	res := ""
	for i, name := range s.stack {
		if i > 0 {
			res += "/"
		}
		res += name
	}
	return res
}
