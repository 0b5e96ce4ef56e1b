package dino

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/notch-dino/internal/config"
)

func TestNewControllerIdle(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), nil)

	if h.c.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", h.c.Phase())
	}
	if h.display.lastScore() != "00000" {
		t.Errorf("score display = %q, expected 00000", h.display.lastScore())
	}
	if !h.display.visible || h.display.message != StartMessage {
		t.Errorf("message = %q (visible %v), expected %q", h.display.message, h.display.visible, StartMessage)
	}
	if len(h.display.highScores) != 0 {
		t.Errorf("high score shown with no record: %v", h.display.highScores)
	}
	if h.queue.Pending() != 0 {
		t.Errorf("idle controller has %d pending frames", h.queue.Pending())
	}

	// Still frame: ground and player, no obstacles
	if h.surface.lines != 1 || h.surface.count(PlayerColor) != 1 || h.surface.count(ObstacleColor) != 0 {
		t.Errorf("still frame drew lines=%d fills=%+v", h.surface.lines, h.surface.fills)
	}
}

func TestNewControllerShowsExistingHighScore(t *testing.T) {
	scores := NewMemoryHighScores()
	scores.Submit(9)

	h := newHarness(t, config.DefaultConfig(), scores)
	if h.c.Session().HighScore != 9 {
		t.Errorf("high score = %d, expected 9", h.c.Session().HighScore)
	}
	if len(h.display.highScores) != 1 || h.display.highScores[0] != "HI 00009" {
		t.Errorf("high score display = %v, expected [HI 00009]", h.display.highScores)
	}
}

func TestIdleIgnoresPauseResumeJump(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), nil)

	if h.c.Pause() || h.c.Resume() || h.c.Jump() {
		t.Error("pause, resume and jump should be no-ops while idle")
	}
	if h.c.Phase() != PhaseIdle || h.queue.Pending() != 0 {
		t.Errorf("phase = %v pending = %d, expected idle with nothing scheduled", h.c.Phase(), h.queue.Pending())
	}
}

func TestStartRunsLoop(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), nil)

	if !h.c.Start() {
		t.Fatal("start from idle should fire")
	}
	if h.c.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected playing", h.c.Phase())
	}
	if h.display.visible {
		t.Error("message should be hidden once playing")
	}
	if h.queue.Pending() != 1 {
		t.Errorf("pending frames = %d, expected exactly 1", h.queue.Pending())
	}
	if h.c.Start() {
		t.Error("start while playing should be a no-op")
	}
	if h.queue.Pending() != 1 {
		t.Errorf("repeated start left %d pending frames", h.queue.Pending())
	}

	clears := h.surface.clears
	h.frames(3)
	if h.surface.clears != clears+3 {
		t.Errorf("redrew %d times in 3 frames", h.surface.clears-clears)
	}
	if h.queue.Pending() != 1 {
		t.Errorf("pending frames = %d after flushing, expected 1", h.queue.Pending())
	}
}

func TestJumpOnlyWhilePlaying(t *testing.T) {
	cfg := config.DefaultConfig()
	h := newHarness(t, cfg, nil)
	h.c.Start()

	if !h.c.Jump() {
		t.Fatal("jump on the ground while playing should succeed")
	}
	if h.c.Player().VY != cfg.Physics.JumpImpulse {
		t.Errorf("vy = %v, expected %v", h.c.Player().VY, cfg.Physics.JumpImpulse)
	}

	h.frames(1)
	h.c.Pause()
	vy := h.c.Player().VY
	if h.c.Jump() {
		t.Error("jump while paused should be ignored")
	}
	if h.c.Player().VY != vy {
		t.Error("ignored jump changed velocity")
	}
}

func TestScoreRampsSpeed(t *testing.T) {
	cfg := safeConfig()
	h := newHarness(t, cfg, nil)
	h.c.Start()

	for i := 0; i < 10000 && h.c.Session().Score < 12; i++ {
		h.queue.Flush()

		s := h.c.Session()
		if s.Ramps != s.Score/cfg.Speed.Every {
			t.Fatalf("score %d: ramps = %d, expected %d", s.Score, s.Ramps, s.Score/cfg.Speed.Every)
		}
		want := cfg.Speed.Base + float64(s.Ramps)*cfg.Speed.Step
		if math.Abs(s.Speed-want) > 1e-9 {
			t.Fatalf("score %d: speed = %v, expected %v", s.Score, s.Speed, want)
		}
		if h.display.lastScore() != FormatScore(s.Score) {
			t.Fatalf("score display = %q, expected %q", h.display.lastScore(), FormatScore(s.Score))
		}
	}

	if h.c.Session().Score < 12 {
		t.Fatalf("score stuck at %d", h.c.Session().Score)
	}
	if h.c.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected playing", h.c.Phase())
	}
}

func TestPauseResumePreservesState(t *testing.T) {
	cfg := safeConfig()
	h := newHarness(t, cfg, nil)
	h.c.Start()
	h.untilScore(t, 7)

	if !h.c.Pause() {
		t.Fatal("pause while playing should fire")
	}
	if h.queue.Pending() != 0 {
		t.Errorf("paused controller has %d pending frames", h.queue.Pending())
	}

	session := h.c.Session()
	obstacles := h.c.Obstacles()
	player := h.c.Player()

	h.frames(20)

	if h.c.Session() != session {
		t.Errorf("session changed while paused: %+v -> %+v", session, h.c.Session())
	}
	if !reflect.DeepEqual(h.c.Obstacles(), obstacles) {
		t.Error("obstacles moved while paused")
	}
	if h.c.Player() != player {
		t.Error("player moved while paused")
	}

	if !h.c.Resume() {
		t.Fatal("resume while paused should fire")
	}
	if h.c.Phase() != PhasePlaying || h.queue.Pending() != 1 {
		t.Fatalf("after resume: phase %v pending %d", h.c.Phase(), h.queue.Pending())
	}
	if h.c.Session().Score < session.Score {
		t.Errorf("score dropped from %d to %d on resume", session.Score, h.c.Session().Score)
	}

	// Resume runs one tick right away from the preserved positions
	var expected []float64
	for _, o := range obstacles {
		if x := o.X - session.Speed; x+o.Width >= 0 {
			expected = append(expected, x)
		}
	}
	got := h.c.Obstacles()
	if len(got) < len(expected) {
		t.Fatalf("resume lost obstacles: got %d, expected at least %d", len(got), len(expected))
	}
	for i, x := range expected {
		if got[i].X != x {
			t.Errorf("obstacle %d at %v, expected %v", i, got[i].X, x)
		}
	}
}

func TestPauseResumeKeepsSingleFrame(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), nil)
	h.c.Start()

	for i := 0; i < 5; i++ {
		h.c.Pause()
		h.c.Resume()
	}
	if h.queue.Pending() != 1 {
		t.Errorf("pending frames = %d after pause/resume cycles, expected 1", h.queue.Pending())
	}
}

func TestStaleFrameDropped(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), nil)
	h.c.Start()
	stale := h.c.frame

	h.c.Pause()
	h.c.Resume()

	session := h.c.Session()
	obstacles := h.c.Obstacles()
	player := h.c.Player()
	clears := h.surface.clears

	h.c.onFrame(stale)

	if h.c.Session() != session || h.c.Player() != player || !reflect.DeepEqual(h.c.Obstacles(), obstacles) {
		t.Error("stale frame advanced the simulation")
	}
	if h.surface.clears != clears {
		t.Error("stale frame redrew the surface")
	}
}

func TestCrashEndsGame(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), nil)
	h.c.Start()
	h.crash()

	if h.c.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected gameover", h.c.Phase())
	}
	if !h.display.visible || h.display.message != GameOverMessage {
		t.Errorf("message = %q (visible %v), expected game over", h.display.message, h.display.visible)
	}
	if h.queue.Pending() != 0 {
		t.Errorf("game over left %d pending frames", h.queue.Pending())
	}

	obstacles := h.c.Obstacles()
	h.frames(10)
	if !reflect.DeepEqual(h.c.Obstacles(), obstacles) {
		t.Error("simulation kept running after game over")
	}
	if h.c.Pause() || h.c.Resume() || h.c.Jump() {
		t.Error("pause, resume and jump should be no-ops after game over")
	}
}

func TestTouchingObstacleDoesNotEndGame(t *testing.T) {
	cfg := config.DefaultConfig()
	h := newHarness(t, cfg, nil)
	h.c.Start()

	p := h.c.Player()
	o := Obstacle{
		X:      p.X + p.Width + h.c.Session().Speed,
		Y:      cfg.Physics.GroundY,
		Width:  cfg.Obstacles.Width,
		Height: cfg.Obstacles.Height,
	}
	h.c.obstacles.obstacles = append([]Obstacle{o}, h.c.obstacles.obstacles...)

	h.frames(1)
	if h.c.Phase() != PhasePlaying {
		t.Fatalf("edge contact ended the game")
	}
	h.frames(1)
	if h.c.Phase() != PhaseGameOver {
		t.Errorf("overlap should end the game, phase = %v", h.c.Phase())
	}
}

func TestStartAfterGameOverResets(t *testing.T) {
	cfg := safeConfig()
	h := newHarness(t, cfg, nil)
	h.c.Start()
	h.untilScore(t, 6)
	h.crash()

	if h.c.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected gameover", h.c.Phase())
	}
	if h.c.Session().HighScore < 6 {
		t.Errorf("high score = %d, expected at least 6", h.c.Session().HighScore)
	}

	if !h.c.Start() {
		t.Fatal("start from gameover should fire")
	}

	s := h.c.Session()
	if s.Score != 0 || s.Ramps != 0 || s.Speed != cfg.Speed.Base {
		t.Errorf("session not reset: %+v", s)
	}
	if h.display.visible {
		t.Error("game over message still visible")
	}

	// Only the obstacle the first tick may have spawned survives
	obs := h.c.Obstacles()
	if len(obs) > 1 || (len(obs) == 1 && obs[0].X != cfg.Surface.Width-cfg.Speed.Base) {
		t.Errorf("obstacles after restart = %+v", obs)
	}
	if !h.c.player.OnGround() {
		t.Error("player should be back on the ground")
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	scores := NewMemoryHighScores()
	h := newHarness(t, config.DefaultConfig(), scores)

	h.c.Start()
	h.c.session.Score = 12
	h.crash()

	if h.c.Session().HighScore != 12 || scores.Best() != 12 {
		t.Fatalf("high score = %d (keeper %d), expected 12", h.c.Session().HighScore, scores.Best())
	}
	if len(h.display.highScores) != 1 || h.display.highScores[0] != "HI 00012" {
		t.Errorf("high score display = %v, expected [HI 00012]", h.display.highScores)
	}

	h.c.Start()
	h.c.session.Score = 7
	h.crash()

	if h.c.Session().HighScore != 12 || scores.Best() != 12 {
		t.Errorf("high score = %d (keeper %d), expected 12 to stand", h.c.Session().HighScore, scores.Best())
	}
	if len(h.display.highScores) != 1 {
		t.Errorf("high score display updated without a new record: %v", h.display.highScores)
	}
}

func TestHighScoreSharedBetweenControllers(t *testing.T) {
	scores := NewMemoryHighScores()
	a := newHarness(t, config.DefaultConfig(), scores)
	b := newHarness(t, config.DefaultConfig(), scores)

	a.c.Start()
	a.c.session.Score = 12
	a.crash()

	// b picks up the shared record at its own game over
	b.c.Start()
	b.c.session.Score = 3
	b.crash()

	if b.c.Session().HighScore != 12 {
		t.Errorf("b high score = %d, expected 12", b.c.Session().HighScore)
	}
	if len(b.display.highScores) != 1 || b.display.highScores[0] != "HI 00012" {
		t.Errorf("b high score display = %v, expected [HI 00012]", b.display.highScores)
	}
}
