package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itwt/space-battle/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "space-battle.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, BackendTerminal, cfg.Display.Backend)
	assert.Equal(t, 800, cfg.Display.Width)
	assert.Equal(t, 600, cfg.Display.Height)
	assert.Equal(t, 60, cfg.Display.FPS)

	assert.False(t, cfg.Log.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, "space-battle.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)

	assert.Equal(t, int64(0), cfg.World.Seed)

	assert.Equal(t, 2.0, cfg.Ship.Speed)
	assert.Equal(t, 100.0, cfg.Ship.Fuel)
	assert.Equal(t, 0.1, cfg.Ship.FuelBurn)
	assert.Equal(t, 5.0, cfg.Ship.RotateStep)
	assert.Equal(t, 5.0, cfg.Ship.BulletSpeed)
	assert.Equal(t, 5, cfg.Ship.Ammo)
	assert.Equal(t, 100, cfg.Ship.Health)
	assert.False(t, cfg.Ship.ConsumeAmmo)

	assert.Equal(t, 10, cfg.Terrain.Step)
	assert.Equal(t, 50, cfg.Terrain.MinDepth)
	assert.Equal(t, 150, cfg.Terrain.MaxDepth)
	assert.Equal(t, 100.0, cfg.Terrain.AnchorDepth)
	assert.Equal(t, 10.0, cfg.Terrain.Tolerance)
	assert.Equal(t, 20.0, cfg.Terrain.CraterDepth)
	assert.False(t, cfg.Terrain.ClampErosion)

	assert.Equal(t, 600*time.Millisecond, cfg.Input.InitialHold)
	assert.Equal(t, 120*time.Millisecond, cfg.Input.RepeatHold)

	controls, err := cfg.ControlBindings()
	require.NoError(t, err)
	assert.Equal(t, input.DefaultControls(), controls)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Display.FPS)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := writeConfig(t, `
[display]
backend = "window"
fps = 30

[log]
enabled = true
level = "debug"

[world]
seed = 1234

[ship]
consumeAmmo = true
speed = 3

[terrain]
clampErosion = true

[input]
initialHold = "450ms"

[controls.player2]
fire = "space"
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, BackendWindow, cfg.Display.Backend)
	assert.Equal(t, 30, cfg.Display.FPS)
	assert.Equal(t, 800, cfg.Display.Width, "unset keys keep defaults")
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(1234), cfg.World.Seed)
	assert.True(t, cfg.Ship.ConsumeAmmo)
	assert.Equal(t, 3.0, cfg.Ship.Speed)
	assert.True(t, cfg.Terrain.ClampErosion)
	assert.Equal(t, 450*time.Millisecond, cfg.Input.InitialHold)

	controls, err := cfg.ControlBindings()
	require.NoError(t, err)
	assert.Equal(t, input.KeySpace, controls[1].Fire)
	assert.Equal(t, input.KeyUp, controls[1].Thrust)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[display\nfps = ")
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SPACEBATTLE_DISPLAY_FPS", "25")
	t.Setenv("SPACEBATTLE_SHIP_CONSUMEAMMO", "true")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Display.FPS)
	assert.True(t, cfg.Ship.ConsumeAmmo)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "[world]\nseed = 5\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", BackendTerminal, "")
	flags.Int64("seed", 0, "")
	flags.Int("fps", 60, "")
	require.NoError(t, flags.Parse([]string{"--seed", "99"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.World.Seed)
	assert.Equal(t, 60, cfg.Display.FPS, "unchanged flag does not override")
	assert.Equal(t, BackendTerminal, cfg.Display.Backend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"backend", func(c *Config) { c.Display.Backend = "vga" }, "unknown display backend"},
		{"size", func(c *Config) { c.Display.Width = 0 }, "display size"},
		{"fps", func(c *Config) { c.Display.FPS = -1 }, "fps"},
		{"step", func(c *Config) { c.Terrain.Step = 0 }, "terrain step"},
		{"depth", func(c *Config) { c.Terrain.MinDepth = 200 }, "exceeds maxDepth"},
		{"ammo", func(c *Config) { c.Ship.Ammo = -1 }, "must not be negative"},
		{"fuel burn negative", func(c *Config) { c.Ship.FuelBurn = -0.1 }, "fuelBurn must be positive"},
		{"fuel burn zero", func(c *Config) { c.Ship.FuelBurn = 0 }, "fuelBurn must be positive"},
		{"speed", func(c *Config) { c.Ship.Speed = -2 }, "ship speed must not be negative"},
		{"rotate step", func(c *Config) { c.Ship.RotateStep = -5 }, "ship rotateStep"},
		{"bullet speed", func(c *Config) { c.Ship.BulletSpeed = -5 }, "ship bulletSpeed"},
		{"tolerance", func(c *Config) { c.Terrain.Tolerance = -1 }, "terrain tolerance"},
		{"crater depth", func(c *Config) { c.Terrain.CraterDepth = -20 }, "terrain craterDepth"},
		{"log dir", func(c *Config) { c.Log.Dir = "" }, "log dir"},
		{"key", func(c *Config) { c.Controls.Player1.Fire = "hyper" }, "controls.player1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefault_Validates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad_NegativeFuelBurnFromEnvRejected(t *testing.T) {
	t.Setenv("SPACEBATTLE_SHIP_FUELBURN", "-0.1")
	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuelBurn")
}

func TestDefault_IgnoresEnvironment(t *testing.T) {
	t.Setenv("SPACEBATTLE_DISPLAY_FPS", "25")
	t.Setenv("SPACEBATTLE_SHIP_FUELBURN", "-1")

	var cfg *Config
	require.NotPanics(t, func() { cfg = Default() })
	assert.Equal(t, 60, cfg.Display.FPS)
	assert.Equal(t, 0.1, cfg.Ship.FuelBurn)
}
