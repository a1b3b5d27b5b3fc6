// Package terminal runs the play field inside a text terminal through tcell.
//
// The logical field is rasterized onto a render.Canvas twice as tall as the
// screen and blitted with upper-half-block glyphs, so each cell shows two
// vertically stacked pixels. Terminals report key presses and auto-repeats but
// not releases, so held keys are emulated with an input.HoldTracker.
package terminal
