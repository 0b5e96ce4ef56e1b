package dino

import "github.com/vovakirdan/notch-dino/internal/core"

// Colors of the flat-filled shapes.
const (
	PlayerColor   = core.ColorWhite
	ObstacleColor = core.ColorBrightRed
	GroundColor   = core.ColorWhite
)

// Renderer redraws a whole frame onto a surface. It keeps no state besides
// the ground line position.
type Renderer struct {
	groundY float64
}

// NewRenderer creates a renderer for the given ground line.
func NewRenderer(groundY float64) Renderer {
	return Renderer{groundY: groundY}
}

// Ground draws the ground line across the full surface width.
func (r Renderer) Ground(s core.Surface) {
	s.Line(0, r.groundY, s.Width(), r.groundY, GroundColor)
}

// Frame clears the surface and draws ground, player and obstacles.
func (r Renderer) Frame(s core.Surface, p *Player, om *ObstacleManager) {
	s.Clear()
	r.Ground(s)
	p.Draw(s)
	om.Draw(s)
}

// Still draws the pre-game frame: ground and player only.
func (r Renderer) Still(s core.Surface, p *Player) {
	s.Clear()
	r.Ground(s)
	p.Draw(s)
}
