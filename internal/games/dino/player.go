package dino

import (
	"github.com/vovakirdan/notch-dino/internal/config"
	"github.com/vovakirdan/notch-dino/internal/core"
)

// Player is the runner. X is fixed; Y is the feet line, so the hitbox spans
// [Y-Height, Y) vertically. Y never exceeds GroundY.
type Player struct {
	X      float64 // Left edge
	Y      float64 // Feet line (larger = lower)
	VY     float64 // Vertical velocity (negative = up)
	Width  float64
	Height float64

	groundY     float64
	gravity     float64
	jumpImpulse float64
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(cfg config.Config) *Player {
	return &Player{
		X:           cfg.Player.X,
		Y:           cfg.Physics.GroundY,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		groundY:     cfg.Physics.GroundY,
		gravity:     cfg.Physics.Gravity,
		jumpImpulse: cfg.Physics.JumpImpulse,
	}
}

// Land puts the player back on the ground at rest.
func (p *Player) Land() {
	p.Y = p.groundY
	p.VY = 0
}

// OnGround reports whether the player stands on the ground.
func (p *Player) OnGround() bool {
	return p.Y == p.groundY
}

// Jump applies the jump impulse. Jumping is only possible from the ground;
// the return value reports whether the impulse was applied.
func (p *Player) Jump() bool {
	if !p.OnGround() {
		return false
	}
	p.VY = p.jumpImpulse
	return true
}

// Update integrates one tick of vertical motion.
func (p *Player) Update() {
	p.Y += p.VY
	if p.Y < p.groundY {
		p.VY += p.gravity
	} else {
		p.Land()
	}
}

// Rect returns the player's hitbox in world coordinates.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y-p.Height, p.Width, p.Height)
}

// Draw renders the player onto the surface.
func (p *Player) Draw(s core.Surface) {
	s.FillRect(p.Rect(), PlayerColor)
}
