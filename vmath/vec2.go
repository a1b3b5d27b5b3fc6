package vmath

import "math"

// Vec2 is a float64 2D vector in play-field units
// Screen space: x grows right, y grows down
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Trunc drops the fractional part of both components, matching integer pixel placement
func V2Trunc(v Vec2) Vec2 {
	return Vec2{math.Trunc(v.X), math.Trunc(v.Y)}
}
