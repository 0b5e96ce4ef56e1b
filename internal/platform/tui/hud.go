package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/notch-dino/internal/games/dino"
	"github.com/vovakirdan/notch-dino/internal/widget"
)

// hud holds the text around the canvas. It is the controller's display and
// the island's view sink; View reads it back when drawing.
type hud struct {
	score   string
	high    string
	message string
	visible bool
	view    widget.ViewMode
	logger  *log.Logger
}

func newHUD(logger *log.Logger) *hud {
	return &hud{logger: logger}
}

func (h *hud) ShowScore(text string) { h.score = text }

func (h *hud) ShowHighScore(text string) {
	h.high = text
	h.logger.Info("New high score", "score", text)
}

func (h *hud) ShowMessage(text string) {
	h.message = text
	h.visible = true
}

func (h *hud) HideMessage() { h.visible = false }

// ViewChanged records the mode the island frame is drawn in.
func (h *hud) ViewChanged(mode widget.ViewMode) {
	h.view = mode
	h.logger.Debug("View changed", "view", mode)
}

var (
	_ dino.Display    = (*hud)(nil)
	_ widget.ViewSink = (*hud)(nil)
)
