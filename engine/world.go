package engine

import (
	"math/rand"

	"github.com/itwt/space-battle/component"
	"github.com/itwt/space-battle/config"
	"github.com/itwt/space-battle/parameter"
	"github.com/itwt/space-battle/render"
	"github.com/itwt/space-battle/vmath"
)

// World is the match state owned by the loop
// Terrain and the active projectiles belong to the world; ships are referenced
type World struct {
	Bounds      vmath.Rect
	Terrain     *component.Terrain
	Ships       []*component.Ship
	Projectiles []*component.Projectile
}

// NewWorld sets up a match: random terrain and one ship per player at the start positions
func NewWorld(cfg *config.Config, rng *rand.Rand) *World {
	width := float64(cfg.Display.Width)
	height := float64(cfg.Display.Height)

	shipCfg := ShipConfig(cfg)
	startY := height - parameter.PlayerStartDepth
	ships := []*component.Ship{
		component.NewShip(0, vmath.Vec2{X: parameter.PlayerStartInset, Y: startY}, render.PlayerColor(0), shipCfg),
		component.NewShip(1, vmath.Vec2{X: width - parameter.PlayerStartInset, Y: startY}, render.PlayerColor(1), shipCfg),
	}

	return &World{
		Bounds:  vmath.NewRect(width, height),
		Terrain: component.NewTerrain(TerrainConfig(cfg), rng),
		Ships:   ships,
	}
}

// ShipConfig maps configuration onto ship tuning
func ShipConfig(cfg *config.Config) component.ShipConfig {
	sc := component.DefaultShipConfig()
	sc.Speed = cfg.Ship.Speed
	sc.Fuel = cfg.Ship.Fuel
	sc.FuelBurn = cfg.Ship.FuelBurn
	sc.RotateStep = cfg.Ship.RotateStep
	sc.BulletSpeed = cfg.Ship.BulletSpeed
	sc.Ammo = cfg.Ship.Ammo
	sc.Health = cfg.Ship.Health
	sc.ConsumeAmmo = cfg.Ship.ConsumeAmmo
	return sc
}

// TerrainConfig maps configuration onto terrain tuning
func TerrainConfig(cfg *config.Config) component.TerrainConfig {
	tc := component.DefaultTerrainConfig(float64(cfg.Display.Width), float64(cfg.Display.Height))
	tc.Step = cfg.Terrain.Step
	tc.MinDepth = cfg.Terrain.MinDepth
	tc.MaxDepth = cfg.Terrain.MaxDepth
	tc.AnchorDepth = cfg.Terrain.AnchorDepth
	tc.Tolerance = cfg.Terrain.Tolerance
	tc.CraterDepth = cfg.Terrain.CraterDepth
	tc.Clamp = cfg.Terrain.ClampErosion
	return tc
}
