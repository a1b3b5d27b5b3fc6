package component

import (
	"math"
	"math/rand"

	"github.com/itwt/space-battle/parameter"
	"github.com/itwt/space-battle/vmath"
)

// TerrainConfig holds terrain generation and erosion tuning
type TerrainConfig struct {
	Width, Height float64

	Step     int
	FirstX   int
	MinDepth int
	MaxDepth int

	AnchorDepth float64
	Tolerance   float64
	CraterDepth float64

	// Clamp skips erosion writes that would raise the surface
	Clamp bool
}

// DefaultTerrainConfig returns the classic tuning for a width×height field
func DefaultTerrainConfig(width, height float64) TerrainConfig {
	return TerrainConfig{
		Width:       width,
		Height:      height,
		Step:        parameter.TerrainStep,
		FirstX:      parameter.TerrainFirstX,
		MinDepth:    parameter.TerrainMinDepth,
		MaxDepth:    parameter.TerrainMaxDepth,
		AnchorDepth: parameter.TerrainAnchorDepth,
		Tolerance:   parameter.ErosionTolerance,
		CraterDepth: parameter.CraterDepth,
		Clamp:       parameter.ErosionClamp,
	}
}

// Terrain is the destructible ground profile
// Samples are ordered by x; x never changes, only y is rewritten by erosion
type Terrain struct {
	points []vmath.Vec2
	cfg    TerrainConfig
}

// NewTerrain generates a random profile: an anchor at x=0, interior samples every Step
// starting at FirstX, and an anchor at x=Width
func NewTerrain(cfg TerrainConfig, rng *rand.Rand) *Terrain {
	step := max(cfg.Step, 1)
	anchorY := cfg.Height - cfg.AnchorDepth
	span := max(cfg.MaxDepth-cfg.MinDepth, 0) + 1

	points := make([]vmath.Vec2, 0, int(cfg.Width)/step+3)
	points = append(points, vmath.Vec2{X: 0, Y: anchorY})
	for x := cfg.FirstX; float64(x) < cfg.Width; x += step {
		depth := cfg.MinDepth + rng.Intn(span)
		points = append(points, vmath.Vec2{X: float64(x), Y: cfg.Height - float64(depth)})
	}
	points = append(points, vmath.Vec2{X: cfg.Width, Y: anchorY})

	return &Terrain{points: points, cfg: cfg}
}

// NewTerrainFromPoints builds a terrain over an explicit sample sequence
func NewTerrainFromPoints(cfg TerrainConfig, points []vmath.Vec2) *Terrain {
	pts := make([]vmath.Vec2, len(points))
	copy(pts, points)
	return &Terrain{points: pts, cfg: cfg}
}

// Len returns the number of samples, anchors included
func (t *Terrain) Len() int {
	return len(t.points)
}

// At returns sample i
func (t *Terrain) At(i int) vmath.Vec2 {
	return t.points[i]
}

// Points returns a copy of the samples
func (t *Terrain) Points() []vmath.Vec2 {
	pts := make([]vmath.Vec2, len(t.points))
	copy(pts, t.points)
	return pts
}

// Destruct erodes every sample within Tolerance horizontally of the projectile whose
// surface lies below it on screen, setting the surface CraterDepth below the projectile
// Linear scan over all samples; at one sample per Step units this is cheap enough per frame
// Returns the number of samples whose height changed
func (t *Terrain) Destruct(p *Projectile) int {
	changed := 0
	for i := range t.points {
		s := &t.points[i]
		if math.Abs(p.Pos.X-s.X) >= t.cfg.Tolerance || p.Pos.Y >= s.Y {
			continue
		}
		y := p.Pos.Y + t.cfg.CraterDepth
		if t.cfg.Clamp && y <= s.Y {
			continue
		}
		if y != s.Y {
			s.Y = y
			changed++
		}
	}
	return changed
}

// Polygon returns the filled ground outline: the profile followed by the
// bottom-right and bottom-left corners of the field
func (t *Terrain) Polygon() []vmath.Vec2 {
	poly := make([]vmath.Vec2, 0, len(t.points)+2)
	poly = append(poly, t.points...)
	return append(poly,
		vmath.Vec2{X: t.cfg.Width, Y: t.cfg.Height},
		vmath.Vec2{X: 0, Y: t.cfg.Height},
	)
}
