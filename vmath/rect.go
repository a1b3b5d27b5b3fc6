package vmath

// Rect is an axis-aligned rectangle with inclusive edges
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect returns the rectangle [0,width]×[0,height]
func NewRect(width, height float64) Rect {
	return Rect{MaxX: width, MaxY: height}
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }
