package render

import "image/color"

// RGB is a 24-bit opaque color
type RGB struct {
	R, G, B uint8
}

// RGBA converts to the image/color representation used by window backends
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Play field palette
var (
	RgbBackground = RGB{255, 255, 255} // White
	RgbTerrain    = RGB{0, 200, 0}     // Grass green
	RgbPlayerOne  = RGB{255, 0, 0}     // Red
	RgbPlayerTwo  = RGB{0, 0, 255}     // Blue
	RGBBlack      = RGB{0, 0, 0}
)

// PlayerColor returns the ship color for a zero-based player index
func PlayerColor(player int) RGB {
	if player%2 == 0 {
		return RgbPlayerOne
	}
	return RgbPlayerTwo
}
