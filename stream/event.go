package stream

import "fmt"

// Event is a normalized structural event derived from a raw markup token
// stream.
type Event struct {
	Type EventType
	Name string
}

// Open returns an element-opened event for name.
func Open(name string) Event {
	return Event{Type: EventOpenElement, Name: name}
}

// Close returns an element-closed event for name.
func Close(name string) Event {
	return Event{Type: EventCloseElement, Name: name}
}

func (e Event) String() string {
	return e.Type.String() + "(" + e.Name + ")"
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventOpenElement EventType = iota
	EventCloseElement
)

func (t EventType) String() string {
	switch t {
	case EventOpenElement:
		return "Open"
	case EventCloseElement:
		return "Close"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"Open":  EventOpenElement,
		"Close": EventCloseElement,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown event type %q", k)
}
