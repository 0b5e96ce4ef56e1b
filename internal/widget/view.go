// Package widget composes the runner game into a notch island with three
// view modes and routes input to the view state machine or the game.
package widget

// ViewMode is the presentation mode of the island.
type ViewMode int

const (
	ViewCompact  ViewMode = iota // Initial pill, game hidden
	ViewMinimal                  // Collapsed after use, game paused
	ViewExpanded                 // Full canvas, game interactive
	viewCount
)

// String returns a human-readable name for the view mode.
func (v ViewMode) String() string {
	switch v {
	case ViewCompact:
		return "compact"
	case ViewMinimal:
		return "minimal"
	case ViewExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// ViewEvent is a pointer interaction relevant to the view mode.
type ViewEvent int

const (
	ViewClickInside  ViewEvent = iota // Click or tap on the island
	ViewClickOutside                  // Click anywhere else
	viewEventCount
)

// String returns a human-readable name for the view event.
func (e ViewEvent) String() string {
	switch e {
	case ViewClickInside:
		return "click-inside"
	case ViewClickOutside:
		return "click-outside"
	default:
		return "unknown"
	}
}

type viewTransition struct {
	to   ViewMode
	fire bool
}

// viewTable lists every mode x event pair. Nothing ever leads back to compact.
var viewTable = [viewCount][viewEventCount]viewTransition{
	ViewCompact: {
		ViewClickInside:  {to: ViewExpanded, fire: true},
		ViewClickOutside: {to: ViewCompact},
	},
	ViewMinimal: {
		ViewClickInside:  {to: ViewExpanded, fire: true},
		ViewClickOutside: {to: ViewMinimal},
	},
	ViewExpanded: {
		ViewClickInside:  {to: ViewExpanded},
		ViewClickOutside: {to: ViewMinimal, fire: true},
	},
}

// NextView looks up the view table.
func NextView(v ViewMode, e ViewEvent) (ViewMode, bool) {
	if v < 0 || v >= viewCount || e < 0 || e >= viewEventCount {
		return v, false
	}
	t := viewTable[v][e]
	return t.to, t.fire
}
