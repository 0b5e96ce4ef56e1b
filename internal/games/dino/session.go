package dino

import (
	"fmt"
	"sync"
)

// Session holds the mutable state of one widget's game.
// It is owned by the Controller; callers get copies via Controller.Session.
type Session struct {
	Phase     Phase
	Score     int     // Obstacles cleared this game
	HighScore int     // Best score seen, never decreases
	Speed     float64 // Scroll speed in world units per tick
	Ramps     int     // Speed increments applied this game
}

// reset prepares the session for a new game. HighScore survives.
func (s *Session) reset(baseSpeed float64) {
	s.Score = 0
	s.Speed = baseSpeed
	s.Ramps = 0
}

// addPoint scores one cleared obstacle and applies the speed ramp when the
// new score is a multiple of every.
func (s *Session) addPoint(every int, step float64) {
	s.Score++
	if s.Score%every == 0 {
		s.Speed += step
		s.Ramps++
	}
}

// FormatScore renders a score the way the score display shows it.
func FormatScore(score int) string {
	return fmt.Sprintf("%05d", score)
}

// FormatHighScore renders a high score the way the high-score display shows it.
func FormatHighScore(score int) string {
	return "HI " + FormatScore(score)
}

// HighScores keeps the best score. Implementations may be shared between
// widgets running on different goroutines and must be safe for that.
type HighScores interface {
	// Best returns the current high score.
	Best() int

	// Submit records a finished game and returns the resulting high score and
	// whether score raised it.
	Submit(score int) (best int, improved bool)
}

// MemoryHighScores is a process-wide in-memory HighScores.
type MemoryHighScores struct {
	mu   sync.Mutex
	best int
}

// NewMemoryHighScores creates an empty keeper.
func NewMemoryHighScores() *MemoryHighScores {
	return &MemoryHighScores{}
}

// Best returns the current high score.
func (m *MemoryHighScores) Best() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// Submit raises the high score if score beats it.
func (m *MemoryHighScores) Submit(score int) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.best {
		m.best = score
		return m.best, true
	}
	return m.best, false
}
