// Package dino implements the notch endless runner: a character that jumps
// over obstacles scrolling in from the right, with a score-driven speed ramp.
package dino

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/notch-dino/internal/config"
	"github.com/vovakirdan/notch-dino/internal/core"
	"github.com/vovakirdan/notch-dino/internal/frame"
)

// Messages shown by the message display.
const (
	StartMessage    = "TAP TO START"
	GameOverMessage = "GAME OVER\nTAP TO RESTART"
)

// Display receives the text the widget shows around the canvas.
type Display interface {
	ShowScore(text string)
	ShowHighScore(text string)
	ShowMessage(text string)
	HideMessage()
}

// NopDisplay discards everything.
type NopDisplay struct{}

func (NopDisplay) ShowScore(string)     {}
func (NopDisplay) ShowHighScore(string) {}
func (NopDisplay) ShowMessage(string)   {}
func (NopDisplay) HideMessage()         {}

// Options wires a Controller to its collaborators.
type Options struct {
	Surface    core.Surface    // Required
	Scheduler  frame.Scheduler // Required
	Display    Display         // Defaults to NopDisplay
	HighScores HighScores      // Defaults to a private MemoryHighScores
	Rand       *rand.Rand      // Defaults to a time-seeded source
}

// Controller drives the game loop and owns the session state.
// It is not safe for concurrent use; the host serializes input and frames.
type Controller struct {
	cfg       config.Config
	surface   core.Surface
	sched     frame.Scheduler
	display   Display
	scores    HighScores
	player    *Player
	obstacles *ObstacleManager
	renderer  Renderer
	session   Session
	frame     frame.ID // Pending frame, 0 when none
}

// NewController creates an idle controller and renders the still frame.
func NewController(cfg config.Config, opts Options) *Controller {
	if opts.Display == nil {
		opts.Display = NopDisplay{}
	}
	if opts.HighScores == nil {
		opts.HighScores = NewMemoryHighScores()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &Controller{
		cfg:       cfg,
		surface:   opts.Surface,
		sched:     opts.Scheduler,
		display:   opts.Display,
		scores:    opts.HighScores,
		player:    NewPlayer(cfg),
		obstacles: NewObstacleManager(opts.Rand, cfg),
		renderer:  NewRenderer(cfg.Physics.GroundY),
	}
	c.session.Phase = PhaseIdle
	c.session.reset(cfg.Speed.Base)
	c.session.HighScore = c.scores.Best()

	c.display.ShowScore(FormatScore(0))
	if c.session.HighScore > 0 {
		c.display.ShowHighScore(FormatHighScore(c.session.HighScore))
	}
	c.display.ShowMessage(StartMessage)
	c.renderer.Still(c.surface, c.player)

	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.session.Phase
}

// Session returns a snapshot of the session state.
func (c *Controller) Session() Session {
	return c.session
}

// Obstacles returns a copy of the active obstacles in spawn order.
func (c *Controller) Obstacles() []Obstacle {
	return append([]Obstacle(nil), c.obstacles.Obstacles()...)
}

// Player returns a copy of the player state.
func (c *Controller) Player() Player {
	return *c.player
}

// fire applies a phase event and reports whether it changed anything.
func (c *Controller) fire(e Event) bool {
	to, ok := Next(c.session.Phase, e)
	if ok {
		c.session.Phase = to
	}
	return ok
}

// Start begins a fresh game from idle or game over. It resets score, speed
// and obstacles and runs the first tick immediately.
func (c *Controller) Start() bool {
	if !c.fire(EventStart) {
		return false
	}
	c.cancelFrame()

	c.session.reset(c.cfg.Speed.Base)
	c.obstacles.Reset()
	c.player.Land()

	c.display.ShowScore(FormatScore(0))
	c.display.HideMessage()

	c.tick()
	return true
}

// Pause freezes a running game. All simulation state is kept as is.
func (c *Controller) Pause() bool {
	if !c.fire(EventPause) {
		return false
	}
	c.cancelFrame()
	return true
}

// Resume continues a paused game exactly where it stopped.
func (c *Controller) Resume() bool {
	if !c.fire(EventResume) {
		return false
	}
	c.tick()
	return true
}

// Jump makes the player jump. Only meaningful while playing.
func (c *Controller) Jump() bool {
	if c.session.Phase != PhasePlaying {
		return false
	}
	return c.player.Jump()
}

// gameOver ends the game after a collision.
func (c *Controller) gameOver() {
	if !c.fire(EventCrash) {
		return
	}
	c.cancelFrame()
	c.display.ShowMessage(GameOverMessage)

	best, improved := c.scores.Submit(c.session.Score)
	if improved || best > c.session.HighScore {
		c.session.HighScore = best
		c.display.ShowHighScore(FormatHighScore(best))
	}
}

// tick runs one simulation step. Order matters: physics, then spawn and
// collision on moved obstacles, then scoring for removed ones, then drawing,
// then either game over or the next frame request.
func (c *Controller) tick() {
	if c.session.Phase != PhasePlaying {
		return
	}

	c.player.Update()
	c.obstacles.MaybeSpawn(c.surface.Width())
	res := c.obstacles.Advance(c.session.Speed, c.player.Rect())

	for i := 0; i < res.Removed; i++ {
		c.session.addPoint(c.cfg.Speed.Every, c.cfg.Speed.Step)
		c.display.ShowScore(FormatScore(c.session.Score))
	}

	c.renderer.Frame(c.surface, c.player, c.obstacles)

	if res.Collided {
		c.gameOver()
		return
	}
	c.schedule()
}

// schedule requests the next frame. The callback carries its own ID so a
// frame that outlived a cancel is recognized and dropped.
func (c *Controller) schedule() {
	var id frame.ID
	id = c.sched.Request(func() { c.onFrame(id) })
	c.frame = id
}

// onFrame is the scheduled entry point.
func (c *Controller) onFrame(id frame.ID) {
	if id != c.frame {
		return
	}
	c.frame = 0
	c.tick()
}

// cancelFrame drops the pending frame, if any.
func (c *Controller) cancelFrame() {
	if c.frame != 0 {
		c.sched.Cancel(c.frame)
		c.frame = 0
	}
}
