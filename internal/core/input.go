package core

import "fmt"

// EventKind classifies a raw input event delivered by the host.
type EventKind int

const (
	EventNone       EventKind = iota
	EventKeyPress             // A key went down; Code names it
	EventClick                // A pointer click; Inside reports whether it hit the widget
	EventTouchStart           // A tap on the widget surface
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventKeyPress:
		return "KeyPress"
	case EventClick:
		return "Click"
	case EventTouchStart:
		return "TouchStart"
	default:
		return "Unknown"
	}
}

// Key codes the host normalizes terminal keys to.
const (
	KeySpace = "Space"
	KeyEnter = "Enter"
	KeyUp    = "ArrowUp"
)

// InputEvent is a single discrete input event, independent of the terminal library.
type InputEvent struct {
	Kind   EventKind
	Code   string // Key code for EventKeyPress
	Inside bool   // Whether an EventClick landed inside the widget
}

// KeyPress builds a key press event.
func KeyPress(code string) InputEvent {
	return InputEvent{Kind: EventKeyPress, Code: code}
}

// Click builds a click event.
func Click(inside bool) InputEvent {
	return InputEvent{Kind: EventClick, Inside: inside}
}

// TouchStart builds a touch-start event.
func TouchStart() InputEvent {
	return InputEvent{Kind: EventTouchStart}
}

// String returns a compact description used in debug logs.
func (e InputEvent) String() string {
	switch e.Kind {
	case EventKeyPress:
		return fmt.Sprintf("KeyPress(%s)", e.Code)
	case EventClick:
		if e.Inside {
			return "Click(inside)"
		}
		return "Click(outside)"
	default:
		return e.Kind.String()
	}
}
