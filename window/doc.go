// Package window runs the play field in a desktop window through ebiten.
//
// Ebiten owns the main loop: Update advances one simulation frame, which draws
// into a render.DisplayList, and Draw replays the last presented frame onto the
// screen image. The package is only built with the "window" tag.
package window
