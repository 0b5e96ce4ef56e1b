package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/notch-dino/internal/games/dino"
)

// Board is the high-score keeper of one widget session backed by the shared
// ledger. If the ledger fails it logs and keeps going on an in-process keeper,
// so a game over never fails.
type Board struct {
	store    *Store
	session  string
	logger   *log.Logger
	fallback *dino.MemoryHighScores
}

// NewBoard creates a keeper that records runs under session.
func NewBoard(store *Store, session string, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	return &Board{
		store:    store,
		session:  session,
		logger:   logger,
		fallback: dino.NewMemoryHighScores(),
	}
}

// Best returns the shared high score.
func (b *Board) Best() int {
	best, err := b.store.HighScore()
	if err != nil {
		b.logger.Warn("Ledger unavailable, using local high score", "error", err)
		return b.fallback.Best()
	}
	if local := b.fallback.Best(); local > best {
		return local
	}
	return best
}

// Submit records a finished run.
func (b *Board) Submit(score int) (int, bool) {
	localBest, localImproved := b.fallback.Submit(score)

	best, improved, err := b.store.SubmitRun(b.session, score)
	if err != nil {
		b.logger.Warn("Cannot record run", "session", b.session, "score", score, "error", err)
		return localBest, localImproved
	}

	b.logger.Debug("Run recorded", "session", b.session, "score", score, "best", best, "record", improved)
	return best, improved
}

// Ensure Board keeps high scores for the game
var _ dino.HighScores = (*Board)(nil)
