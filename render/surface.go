package render

import "github.com/itwt/space-battle/vmath"

// Surface is the drawing target of one frame, injected into the loop
// Coordinates are logical play field units; backends scale to their device
type Surface interface {
	// Clear fills the whole frame with c
	Clear(c RGB)
	// FillPolygon draws a filled polygon, closing the last point to the first
	FillPolygon(points []vmath.Vec2, c RGB)
	// FillCircle draws a filled disc
	FillCircle(center vmath.Vec2, radius float64, c RGB)
	// Present makes the frame visible
	Present()
}
