package component

import (
	"github.com/itwt/space-battle/parameter"
	"github.com/itwt/space-battle/physics"
	"github.com/itwt/space-battle/render"
	"github.com/itwt/space-battle/vmath"
)

// Direction is a rotation sense for Ship.Rotate
type Direction int

const (
	RotateLeft  Direction = iota // counter-clockwise on screen, heading increases
	RotateRight                  // clockwise on screen, heading decreases
)

// ShipConfig holds per-match ship tuning
type ShipConfig struct {
	Speed        float64
	Fuel         float64
	FuelBurn     float64
	RotateStep   float64
	BulletSpeed  float64
	BulletRadius float64
	Ammo         int
	Health       int
	Width        float64
	Height       float64
	ConsumeAmmo  bool
}

// DefaultShipConfig returns the classic tuning
func DefaultShipConfig() ShipConfig {
	return ShipConfig{
		Speed:        parameter.ShipSpeed,
		Fuel:         parameter.ShipFuel,
		FuelBurn:     parameter.ShipFuelBurn,
		RotateStep:   parameter.ShipRotateStep,
		BulletSpeed:  parameter.BulletSpeed,
		BulletRadius: parameter.BulletRadius,
		Ammo:         parameter.ShipAmmo,
		Health:       parameter.ShipHealth,
		Width:        parameter.ShipWidth,
		Height:       parameter.ShipHeight,
		ConsumeAmmo:  parameter.ShipConsumeAmmo,
	}
}

// Ship is one player's craft
// Heading is in degrees and never wrapped; Body.Vel is unused, ships move by heading and speed
type Ship struct {
	physics.Body

	Player  int
	Heading float64
	Speed   float64
	Color   render.RGB

	Fuel float64
	Ammo int
	// Health is carried for completeness; no rule reads or lowers it
	Health int

	Width, Height float64

	cfg ShipConfig
}

// NewShip creates a ship at pos facing heading 0 with full supplies
func NewShip(player int, pos vmath.Vec2, color render.RGB, cfg ShipConfig) *Ship {
	return &Ship{
		Body:   physics.Body{Pos: pos},
		Player: player,
		Speed:  cfg.Speed,
		Color:  color,
		Fuel:   cfg.Fuel,
		Ammo:   cfg.Ammo,
		Health: cfg.Health,
		Width:  cfg.Width,
		Height: cfg.Height,
		cfg:    cfg,
	}
}

// Rotate turns the ship by one rotation step
func (s *Ship) Rotate(dir Direction) {
	switch dir {
	case RotateLeft:
		s.Heading += s.cfg.RotateStep
	case RotateRight:
		s.Heading -= s.cfg.RotateStep
	}
}

// Move thrusts one frame along the heading, burning fuel
// Returns false without side effects once fuel is exhausted
func (s *Ship) Move() bool {
	if s.Fuel <= 0 {
		return false
	}
	s.Fuel = max(0, s.Fuel-s.cfg.FuelBurn)
	s.Advance(s.Heading, s.Speed)
	return true
}

// Shoot spawns a projectile from the ship position along the heading
// Returns nil, false when out of ammo; ammo is only spent when ConsumeAmmo is set
func (s *Ship) Shoot() (*Projectile, bool) {
	if s.Ammo <= 0 {
		return nil, false
	}
	if s.cfg.ConsumeAmmo {
		s.Ammo--
	}
	vel := physics.Launch(s.Heading, s.cfg.BulletSpeed)
	return NewProjectile(s.Pos, vel, s.cfg.BulletRadius, s.Color), true
}

// NormalizedHeading returns the heading in [0, 360) for display and logs
func (s *Ship) NormalizedHeading() float64 {
	return vmath.WrapDegrees(s.Heading)
}

// Outline returns the ship triangle: nose at the position, two wings swept back
func (s *Ship) Outline() []vmath.Vec2 {
	rad := vmath.Radians(s.Heading)
	wing := s.Width / 2
	return []vmath.Vec2{
		s.Pos,
		vmath.V2Add(s.Pos, vmath.V2Scale(vmath.FromAngle(rad+parameter.ShipWingAngle), wing)),
		vmath.V2Add(s.Pos, vmath.V2Scale(vmath.FromAngle(rad-parameter.ShipWingAngle), wing)),
	}
}
