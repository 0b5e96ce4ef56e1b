package widget

import (
	"github.com/vovakirdan/notch-dino/internal/core"
	"github.com/vovakirdan/notch-dino/internal/games/dino"
)

// Intent is what a routed input asks for.
type Intent int

const (
	IntentNone  Intent = iota
	IntentJump         // Make the player jump
	IntentStart        // Begin a fresh game
	IntentView         // Feed Decision.View to the view state machine
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentJump:
		return "jump"
	case IntentStart:
		return "start"
	case IntentView:
		return "view"
	default:
		return "unknown"
	}
}

// Decision is the outcome of routing one input event.
type Decision struct {
	Intent Intent
	View   ViewEvent // Valid when Intent is IntentView

	// Consumed means the widget handled the event and the host must not
	// apply its own default action.
	Consumed bool
}

// Router maps raw input to intents. It holds no state.
type Router struct {
	jumpKey string
}

// NewRouter creates a router accepting jumpKey as the jump key.
func NewRouter(jumpKey string) Router {
	return Router{jumpKey: jumpKey}
}

// Route decides what ev means in the given view and phase.
func (r Router) Route(ev core.InputEvent, view ViewMode, phase dino.Phase) Decision {
	switch ev.Kind {
	case core.EventClick:
		e := ViewClickOutside
		if ev.Inside {
			e = ViewClickInside
		}
		return Decision{Intent: IntentView, View: e, Consumed: true}

	case core.EventKeyPress:
		if view != ViewExpanded || ev.Code != r.jumpKey {
			return Decision{}
		}
		return r.action(phase)

	case core.EventTouchStart:
		if view != ViewExpanded {
			return Decision{}
		}
		return r.action(phase)
	}
	return Decision{}
}

// action handles an accepted jump-key press or touch.
func (r Router) action(phase dino.Phase) Decision {
	switch phase {
	case dino.PhasePlaying:
		return Decision{Intent: IntentJump, Consumed: true}
	case dino.PhaseGameOver:
		return Decision{Intent: IntentStart, Consumed: true}
	default:
		return Decision{Consumed: true}
	}
}
