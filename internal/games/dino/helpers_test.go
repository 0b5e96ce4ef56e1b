package dino

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/notch-dino/internal/config"
	"github.com/vovakirdan/notch-dino/internal/core"
	"github.com/vovakirdan/notch-dino/internal/frame"
)

type fill struct {
	rect  core.Rect
	color core.Color
}

// recordingSurface remembers what was drawn since the last Clear.
type recordingSurface struct {
	w, h   float64
	fills  []fill
	lines  int
	clears int
}

func newRecordingSurface(cfg config.Config) *recordingSurface {
	return &recordingSurface{w: cfg.Surface.Width, h: cfg.Surface.Height}
}

func (s *recordingSurface) Width() float64  { return s.w }
func (s *recordingSurface) Height() float64 { return s.h }

func (s *recordingSurface) Clear() {
	s.fills = s.fills[:0]
	s.lines = 0
	s.clears++
}

func (s *recordingSurface) FillRect(r core.Rect, c core.Color) {
	s.fills = append(s.fills, fill{rect: r, color: c})
}

func (s *recordingSurface) Line(_, _, _, _ float64, _ core.Color) {
	s.lines++
}

func (s *recordingSurface) count(c core.Color) int {
	n := 0
	for _, f := range s.fills {
		if f.color == c {
			n++
		}
	}
	return n
}

// recordingDisplay remembers every text update.
type recordingDisplay struct {
	scores     []string
	highScores []string
	message    string
	visible    bool
}

func (d *recordingDisplay) ShowScore(text string)     { d.scores = append(d.scores, text) }
func (d *recordingDisplay) ShowHighScore(text string) { d.highScores = append(d.highScores, text) }
func (d *recordingDisplay) ShowMessage(text string)   { d.message, d.visible = text, true }
func (d *recordingDisplay) HideMessage()              { d.visible = false }

func (d *recordingDisplay) lastScore() string {
	if len(d.scores) == 0 {
		return ""
	}
	return d.scores[len(d.scores)-1]
}

type harness struct {
	c       *Controller
	queue   *frame.Queue
	surface *recordingSurface
	display *recordingDisplay
}

func newHarness(t *testing.T, cfg config.Config, scores HighScores) *harness {
	t.Helper()
	h := &harness{
		queue:   frame.NewQueue(),
		surface: newRecordingSurface(cfg),
		display: &recordingDisplay{},
	}
	h.c = NewController(cfg, Options{
		Surface:    h.surface,
		Scheduler:  h.queue,
		Display:    h.display,
		HighScores: scores,
		Rand:       rand.New(rand.NewSource(42)),
	})
	return h
}

// frames flushes the queue n times.
func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.queue.Flush()
	}
}

// untilScore flushes frames until the score reaches target or the budget runs out.
func (h *harness) untilScore(t *testing.T, target int) {
	t.Helper()
	for i := 0; i < 10000 && h.c.Session().Score < target; i++ {
		h.queue.Flush()
	}
	if h.c.Session().Score < target {
		t.Fatalf("score stuck at %d, expected %d", h.c.Session().Score, target)
	}
}

// crash puts an obstacle right on top of the standing player so the next
// tick collides.
func (h *harness) crash() {
	p := h.c.player
	o := Obstacle{
		X:      p.X + p.Width/2,
		Y:      h.c.cfg.Physics.GroundY,
		Width:  h.c.cfg.Obstacles.Width,
		Height: h.c.cfg.Obstacles.Height,
	}
	h.c.obstacles.obstacles = append([]Obstacle{o}, h.c.obstacles.obstacles...)
	h.queue.Flush()
}

// safeConfig places the player past the right edge so nothing ever hits it,
// and spawns as often as the gap policy allows.
func safeConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Player.X = cfg.Surface.Width + 100
	cfg.Obstacles.SpawnChance = 1
	return cfg
}
