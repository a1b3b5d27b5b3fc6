package vmath

import "math"

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// WrapDegrees maps any angle into [0, 360)
// Trig functions are periodic so simulation never needs this; display and logs do
func WrapDegrees(deg float64) float64 {
	w := math.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	return w
}

// FromAngle returns the unit vector for an angle in radians, counter-clockwise on screen
// The y component is negated because screen y grows downward
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), -math.Sin(rad)}
}

// Heading returns the unit vector for a heading in degrees
func Heading(deg float64) Vec2 {
	return FromAngle(Radians(deg))
}
