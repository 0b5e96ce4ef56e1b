package dino

import (
	"math/rand"

	"github.com/vovakirdan/notch-dino/internal/config"
	"github.com/vovakirdan/notch-dino/internal/core"
)

// Obstacle represents a ground hazard the player must jump over.
// Y is the ground-aligned feet line, like Player.Y.
type Obstacle struct {
	X      float64 // Left edge
	Y      float64 // Feet line
	Width  float64
	Height float64

	removed bool // Scrolled past the left edge this tick
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y-o.Height, o.Width, o.Height)
}

// offscreen reports whether the obstacle's right edge has passed the left edge.
func (o Obstacle) offscreen() bool {
	return o.X+o.Width < 0
}

// AdvanceResult summarizes one obstacle pass.
type AdvanceResult struct {
	Collided bool // An obstacle overlapped the player
	Removed  int  // Obstacles that scrolled off and were dropped
}

// ObstacleManager handles spawning, movement, collision and removal of obstacles.
// Obstacles are kept in spawn order, which is also left-to-right screen order.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.Obstacles
	groundY   float64
}

// NewObstacleManager creates a new obstacle manager drawing from rng.
func NewObstacleManager(rng *rand.Rand, cfg config.Config) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg.Obstacles,
		groundY:   cfg.Physics.GroundY,
	}
}

// Reset clears all obstacles. The random source keeps its sequence.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
}

// Obstacles returns the active obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// eligible reports whether the gap policy allows a spawn at the right edge.
// The jitter is drawn fresh on every call.
func (om *ObstacleManager) eligible(surfaceW float64) bool {
	if len(om.obstacles) == 0 {
		return true
	}
	last := om.obstacles[len(om.obstacles)-1]
	gap := om.cfg.MinGap + om.rng.Float64()*om.cfg.GapJitter
	return surfaceW-last.X > gap
}

// MaybeSpawn spawns an obstacle at the right edge when the gap policy allows it
// and the per-tick spawn roll succeeds. It reports whether one was spawned.
func (om *ObstacleManager) MaybeSpawn(surfaceW float64) bool {
	if !om.eligible(surfaceW) {
		return false
	}
	if om.rng.Float64() >= om.cfg.SpawnChance {
		return false
	}

	om.obstacles = append(om.obstacles, Obstacle{
		X:      surfaceW,
		Y:      om.groundY,
		Width:  om.cfg.Width,
		Height: om.cfg.Height,
	})
	return true
}

// Advance moves every obstacle left by speed, tests each against the player
// box, and drops those that scrolled off. Collision is evaluated on the moved
// positions before anything is removed.
func (om *ObstacleManager) Advance(speed float64, player core.Rect) AdvanceResult {
	var res AdvanceResult

	for i := range om.obstacles {
		o := &om.obstacles[i]
		o.X -= speed

		if player.Intersects(o.Rect()) {
			res.Collided = true
		}
		if o.offscreen() {
			o.removed = true
			res.Removed++
		}
	}

	if res.Removed > 0 {
		kept := om.obstacles[:0]
		for _, o := range om.obstacles {
			if !o.removed {
				kept = append(kept, o)
			}
		}
		om.obstacles = kept
	}

	return res
}

// Draw renders all active obstacles.
func (om *ObstacleManager) Draw(s core.Surface) {
	for _, o := range om.obstacles {
		s.FillRect(o.Rect(), ObstacleColor)
	}
}
