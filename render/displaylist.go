package render

import "github.com/itwt/space-battle/vmath"

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpPolygon
	OpCircle
)

// Op is one recorded draw call
type Op struct {
	Kind   OpKind
	Points []vmath.Vec2 // OpPolygon
	Center vmath.Vec2   // OpCircle
	Radius float64      // OpCircle
	Color  RGB
}

// DisplayList is a Surface that records draw calls instead of rasterizing them
// Present swaps the pending list into the visible frame; backends with their own
// draw callback replay Frame, tests inspect it
type DisplayList struct {
	pending   []Op
	frame     []Op
	presented int
}

// NewDisplayList creates an empty display list
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// Clear discards everything drawn since the last Present and records a fill
func (d *DisplayList) Clear(c RGB) {
	d.pending = append(d.pending[:0], Op{Kind: OpClear, Color: c})
}

func (d *DisplayList) FillPolygon(points []vmath.Vec2, c RGB) {
	pts := make([]vmath.Vec2, len(points))
	copy(pts, points)
	d.pending = append(d.pending, Op{Kind: OpPolygon, Points: pts, Color: c})
}

func (d *DisplayList) FillCircle(center vmath.Vec2, radius float64, c RGB) {
	d.pending = append(d.pending, Op{Kind: OpCircle, Center: center, Radius: radius, Color: c})
}

// Present publishes the pending ops as the visible frame
func (d *DisplayList) Present() {
	d.frame, d.pending = d.pending, d.frame[:0]
	d.presented++
}

// Frame returns the last presented ops; valid until the next Present
func (d *DisplayList) Frame() []Op {
	return d.frame
}

// Pending returns ops recorded since the last Present
func (d *DisplayList) Pending() []Op {
	return d.pending
}

// Presented returns the number of frames presented so far
func (d *DisplayList) Presented() int {
	return d.presented
}

// Replay draws the visible frame onto another surface without presenting it
func (d *DisplayList) Replay(dst Surface) {
	for _, op := range d.frame {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.Color)
		case OpPolygon:
			dst.FillPolygon(op.Points, op.Color)
		case OpCircle:
			dst.FillCircle(op.Center, op.Radius, op.Color)
		}
	}
}
