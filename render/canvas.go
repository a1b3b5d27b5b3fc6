package render

import (
	"math"
	"slices"

	"github.com/itwt/space-battle/vmath"
)

// Canvas is a software raster of RGB pixels with a fixed logical coordinate space
// Logical units are mapped onto the pixel grid by independent x/y scale factors
// Sampling is at pixel centers
type Canvas struct {
	pix      []RGB
	width    int
	height   int
	logicalW float64
	logicalH float64
	scaleX   float64
	scaleY   float64
	xs       []float64 // scanline intersection scratch
}

// NewCanvas creates a width×height pixel canvas covering logicalW×logicalH units
func NewCanvas(width, height int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{logicalW: logicalW, logicalH: logicalH}
	c.Resize(width, height)
	return c
}

// Resize adjusts pixel dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]RGB, size)
	} else {
		c.pix = c.pix[:size]
	}
	c.width = width
	c.height = height
	c.scaleX = float64(width) / c.logicalW
	c.scaleY = float64(height) / c.logicalH
}

// Bounds returns pixel dimensions
func (c *Canvas) Bounds() (int, int) {
	return c.width, c.height
}

// At returns the pixel at (x, y); out of range reads black
func (c *Canvas) At(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return c.pix[y*c.width+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Clear fills every pixel using exponential copy
func (c *Canvas) Clear(col RGB) {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = col
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
}

// FillPolygon fills with the even-odd rule by scanline
func (c *Canvas) FillPolygon(points []vmath.Vec2, col RGB) {
	n := len(points)
	if n < 3 || c.width == 0 || c.height == 0 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	rowStart := max(0, int(math.Ceil(minY*c.scaleY-0.5)))
	rowEnd := min(c.height-1, int(math.Floor(maxY*c.scaleY-0.5)))

	for py := rowStart; py <= rowEnd; py++ {
		y := (float64(py) + 0.5) / c.scaleY

		c.xs = c.xs[:0]
		for i := 0; i < n; i++ {
			a := points[i]
			b := points[(i+1)%n]
			// Half-open on y so shared vertices count once
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				c.xs = append(c.xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		slices.Sort(c.xs)

		for i := 0; i+1 < len(c.xs); i += 2 {
			c.fillSpan(py, c.xs[i], c.xs[i+1], col)
		}
	}
}

// fillSpan paints pixels of row py whose centers fall in [x0, x1)
func (c *Canvas) fillSpan(py int, x0, x1 float64, col RGB) {
	start := max(0, int(math.Ceil(x0*c.scaleX-0.5)))
	end := min(c.width, int(math.Ceil(x1*c.scaleX-0.5)))
	row := c.pix[py*c.width : (py+1)*c.width]
	for px := start; px < end; px++ {
		row[px] = col
	}
}

// FillCircle paints pixels whose centers lie within radius of center
// The pixel containing the center is always painted so small discs stay visible on coarse grids
func (c *Canvas) FillCircle(center vmath.Vec2, radius float64, col RGB) {
	if c.width == 0 || c.height == 0 {
		return
	}

	cx := int(math.Floor(center.X * c.scaleX))
	cy := int(math.Floor(center.Y * c.scaleY))
	if c.inBounds(cx, cy) {
		c.pix[cy*c.width+cx] = col
	}

	r2 := radius * radius
	x0 := max(0, int(math.Floor((center.X-radius)*c.scaleX)))
	x1 := min(c.width-1, int(math.Ceil((center.X+radius)*c.scaleX)))
	y0 := max(0, int(math.Floor((center.Y-radius)*c.scaleY)))
	y1 := min(c.height-1, int(math.Ceil((center.Y+radius)*c.scaleY)))

	for py := y0; py <= y1; py++ {
		dy := (float64(py)+0.5)/c.scaleY - center.Y
		for px := x0; px <= x1; px++ {
			dx := (float64(px)+0.5)/c.scaleX - center.X
			if dx*dx+dy*dy <= r2 {
				c.pix[py*c.width+px] = col
			}
		}
	}
}

// Present is a no-op; owners of the canvas flush it to their device
func (c *Canvas) Present() {}
