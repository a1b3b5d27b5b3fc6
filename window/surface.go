//go:build window

package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/itwt/space-battle/render"
	"github.com/itwt/space-battle/vmath"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// imageSurface draws onto an ebiten image
type imageSurface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *imageSurface) Clear(c render.RGB) {
	s.dst.Fill(c.RGBA())
}

// FillPolygon fills with the even-odd rule so concave outlines render correctly
func (s *imageSurface) FillPolygon(points []vmath.Vec2, c render.RGB) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = 1
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.EvenOdd
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *imageSurface) FillCircle(center vmath.Vec2, radius float64, c render.RGB) {
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c.RGBA(), true)
}

// Present is a no-op; ebiten presents after Draw returns
func (s *imageSurface) Present() {}
