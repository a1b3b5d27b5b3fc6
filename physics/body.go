package physics

import "github.com/itwt/space-battle/vmath"

// Body is the kinematic state shared by ships and projectiles
// Integration is per frame, not per second: game speed follows the achieved frame rate
type Body struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Step performs one frame of integration: p = p + v
func (b *Body) Step() {
	b.Pos = vmath.V2Add(b.Pos, b.Vel)
}

// Advance displaces the body by dist along a heading in degrees without touching velocity
func (b *Body) Advance(headingDeg, dist float64) {
	b.Pos = vmath.V2Add(b.Pos, vmath.V2Scale(vmath.Heading(headingDeg), dist))
}

// Launch returns the velocity of magnitude speed along a heading in degrees
func Launch(headingDeg, speed float64) vmath.Vec2 {
	return vmath.V2Scale(vmath.Heading(headingDeg), speed)
}
