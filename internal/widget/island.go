package widget

import (
	"github.com/vovakirdan/notch-dino/internal/core"
	"github.com/vovakirdan/notch-dino/internal/games/dino"
)

// ViewSink is notified whenever the island switches view mode.
type ViewSink interface {
	ViewChanged(mode ViewMode)
}

// ViewSinkFunc adapts a function to ViewSink.
type ViewSinkFunc func(mode ViewMode)

// ViewChanged calls f(mode).
func (f ViewSinkFunc) ViewChanged(mode ViewMode) { f(mode) }

// Island is one widget instance: a game controller plus its view mode.
// Like the controller it is driven from a single goroutine.
type Island struct {
	game   *dino.Controller
	router Router
	view   ViewMode
	sink   ViewSink
}

// NewIsland wraps game in a compact island. sink may be nil.
func NewIsland(game *dino.Controller, jumpKey string, sink ViewSink) *Island {
	if sink == nil {
		sink = ViewSinkFunc(func(ViewMode) {})
	}
	return &Island{
		game:   game,
		router: NewRouter(jumpKey),
		view:   ViewCompact,
		sink:   sink,
	}
}

// View returns the current view mode.
func (i *Island) View() ViewMode {
	return i.view
}

// Game returns the hosted controller.
func (i *Island) Game() *dino.Controller {
	return i.game
}

// SetView switches to mode and applies its entry effect on the game, even
// when mode is already current.
func (i *Island) SetView(mode ViewMode) {
	i.view = mode
	i.sink.ViewChanged(mode)

	switch mode {
	case ViewExpanded:
		switch i.game.Phase() {
		case dino.PhaseIdle, dino.PhaseGameOver:
			i.game.Start()
		case dino.PhasePaused:
			i.game.Resume()
		}
	case ViewMinimal:
		i.game.Pause()
	}
}

// Handle routes one input event and reports whether it was consumed.
func (i *Island) Handle(ev core.InputEvent) bool {
	d := i.router.Route(ev, i.view, i.game.Phase())

	switch d.Intent {
	case IntentJump:
		i.game.Jump()
	case IntentStart:
		i.game.Start()
	case IntentView:
		if to, ok := NextView(i.view, d.View); ok {
			i.SetView(to)
		}
	}
	return d.Consumed
}
