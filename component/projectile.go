package component

import (
	"github.com/itwt/space-battle/physics"
	"github.com/itwt/space-battle/render"
	"github.com/itwt/space-battle/vmath"
)

// Projectile is a straight-line shot with constant velocity
// It lives until its position leaves the play field
type Projectile struct {
	physics.Body

	Radius float64
	Color  render.RGB
}

// NewProjectile creates a projectile; velocity is fixed for its lifetime
func NewProjectile(pos, vel vmath.Vec2, radius float64, color render.RGB) *Projectile {
	return &Projectile{
		Body:   physics.Body{Pos: pos, Vel: vel},
		Radius: radius,
		Color:  color,
	}
}

// Move advances one frame: (x, y) -> (x+dx, y+dy)
func (p *Projectile) Move() {
	p.Step()
}

// InBounds reports whether the projectile is inside the play field, edges included
func (p *Projectile) InBounds(bounds vmath.Rect) bool {
	return bounds.Contains(p.Pos)
}

// DrawPos is the integer pixel position the projectile is drawn at
func (p *Projectile) DrawPos() vmath.Vec2 {
	return vmath.V2Trunc(p.Pos)
}
