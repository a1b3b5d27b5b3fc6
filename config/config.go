package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/itwt/space-battle/input"
	"github.com/itwt/space-battle/parameter"
)

// Display backends
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// EnvPrefix prefixes environment overrides, e.g. SPACEBATTLE_DISPLAY_FPS=30
const EnvPrefix = "SPACEBATTLE"

// DisplayConfig selects the backend and frame pacing
type DisplayConfig struct {
	Backend string `mapstructure:"backend"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	FPS     int    `mapstructure:"fps"`
}

// LogConfig controls the log file
type LogConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Level     string `mapstructure:"level"`
	Dir       string `mapstructure:"dir"`
	File      string `mapstructure:"file"`
	MaxSizeMB int    `mapstructure:"maxSizeMB"`
}

// WorldConfig seeds match setup; Seed 0 means time-based
type WorldConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// ShipConfig is ship tuning
type ShipConfig struct {
	Speed       float64 `mapstructure:"speed"`
	Fuel        float64 `mapstructure:"fuel"`
	FuelBurn    float64 `mapstructure:"fuelBurn"`
	RotateStep  float64 `mapstructure:"rotateStep"`
	BulletSpeed float64 `mapstructure:"bulletSpeed"`
	Ammo        int     `mapstructure:"ammo"`
	Health      int     `mapstructure:"health"`
	ConsumeAmmo bool    `mapstructure:"consumeAmmo"`
}

// TerrainConfig is terrain generation and erosion tuning
type TerrainConfig struct {
	Step         int     `mapstructure:"step"`
	MinDepth     int     `mapstructure:"minDepth"`
	MaxDepth     int     `mapstructure:"maxDepth"`
	AnchorDepth  float64 `mapstructure:"anchorDepth"`
	Tolerance    float64 `mapstructure:"tolerance"`
	CraterDepth  float64 `mapstructure:"craterDepth"`
	ClampErosion bool    `mapstructure:"clampErosion"`
}

// InputConfig tunes terminal held-key emulation
type InputConfig struct {
	InitialHold time.Duration `mapstructure:"initialHold"`
	RepeatHold  time.Duration `mapstructure:"repeatHold"`
}

// Binding names one player's keys
type Binding struct {
	Thrust      string `mapstructure:"thrust"`
	RotateLeft  string `mapstructure:"rotateLeft"`
	RotateRight string `mapstructure:"rotateRight"`
	Fire        string `mapstructure:"fire"`
}

// ControlsConfig holds both players' bindings
type ControlsConfig struct {
	Player1 Binding `mapstructure:"player1"`
	Player2 Binding `mapstructure:"player2"`
}

// Config is the full runtime configuration
type Config struct {
	Display  DisplayConfig  `mapstructure:"display"`
	Log      LogConfig      `mapstructure:"log"`
	World    WorldConfig    `mapstructure:"world"`
	Ship     ShipConfig     `mapstructure:"ship"`
	Terrain  TerrainConfig  `mapstructure:"terrain"`
	Input    InputConfig    `mapstructure:"input"`
	Controls ControlsConfig `mapstructure:"controls"`
}

// setDefaults registers every key so env overrides and Unmarshal see them
func setDefaults(v *viper.Viper) {
	v.SetDefault("display.backend", parameter.DefaultBackend)
	v.SetDefault("display.width", parameter.ScreenWidth)
	v.SetDefault("display.height", parameter.ScreenHeight)
	v.SetDefault("display.fps", parameter.TargetFPS)

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", parameter.LogLevel)
	v.SetDefault("log.dir", parameter.LogDir)
	v.SetDefault("log.file", parameter.LogFileName)
	v.SetDefault("log.maxSizeMB", parameter.LogMaxSizeMB)

	v.SetDefault("world.seed", 0)

	v.SetDefault("ship.speed", parameter.ShipSpeed)
	v.SetDefault("ship.fuel", parameter.ShipFuel)
	v.SetDefault("ship.fuelBurn", parameter.ShipFuelBurn)
	v.SetDefault("ship.rotateStep", parameter.ShipRotateStep)
	v.SetDefault("ship.bulletSpeed", parameter.BulletSpeed)
	v.SetDefault("ship.ammo", parameter.ShipAmmo)
	v.SetDefault("ship.health", parameter.ShipHealth)
	v.SetDefault("ship.consumeAmmo", parameter.ShipConsumeAmmo)

	v.SetDefault("terrain.step", parameter.TerrainStep)
	v.SetDefault("terrain.minDepth", parameter.TerrainMinDepth)
	v.SetDefault("terrain.maxDepth", parameter.TerrainMaxDepth)
	v.SetDefault("terrain.anchorDepth", parameter.TerrainAnchorDepth)
	v.SetDefault("terrain.tolerance", parameter.ErosionTolerance)
	v.SetDefault("terrain.craterDepth", parameter.CraterDepth)
	v.SetDefault("terrain.clampErosion", parameter.ErosionClamp)

	v.SetDefault("input.initialHold", parameter.KeyInitialHold)
	v.SetDefault("input.repeatHold", parameter.KeyRepeatHold)

	defaults := input.DefaultControls()
	for i, c := range defaults {
		prefix := fmt.Sprintf("controls.player%d.", i+1)
		v.SetDefault(prefix+"thrust", c.Thrust.String())
		v.SetDefault(prefix+"rotateLeft", c.RotateLeft.String())
		v.SetDefault(prefix+"rotateRight", c.RotateRight.String())
		v.SetDefault(prefix+"fire", c.Fire.String())
	}
}

// flagKeys maps command-line flags onto config keys
var flagKeys = map[string]string{
	"backend": "display.backend",
	"seed":    "world.seed",
	"fps":     "display.fps",
}

// Load reads configuration from a TOML file at path, environment overrides and flags
// A missing file is not an error; defaults apply. flags may be nil
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration, ignoring files, flags and environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects configurations the simulation cannot run with
func (c *Config) Validate() error {
	switch c.Display.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("unknown display backend %q", c.Display.Backend)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("display fps must be positive, got %d", c.Display.FPS)
	}
	if c.Terrain.Step <= 0 {
		return fmt.Errorf("terrain step must be positive, got %d", c.Terrain.Step)
	}
	if c.Terrain.MinDepth > c.Terrain.MaxDepth {
		return fmt.Errorf("terrain minDepth %d exceeds maxDepth %d", c.Terrain.MinDepth, c.Terrain.MaxDepth)
	}
	if c.Log.Dir == "" || c.Log.File == "" {
		return errors.New("log dir and file must not be empty")
	}
	if c.Ship.Ammo < 0 || c.Ship.Fuel < 0 {
		return errors.New("ship ammo and fuel must not be negative")
	}
	if c.Ship.FuelBurn <= 0 {
		return fmt.Errorf("ship fuelBurn must be positive, got %g", c.Ship.FuelBurn)
	}
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"ship speed", c.Ship.Speed},
		{"ship rotateStep", c.Ship.RotateStep},
		{"ship bulletSpeed", c.Ship.BulletSpeed},
		{"terrain tolerance", c.Terrain.Tolerance},
		{"terrain craterDepth", c.Terrain.CraterDepth},
	} {
		if f.val < 0 {
			return fmt.Errorf("%s must not be negative, got %g", f.name, f.val)
		}
	}
	if _, err := c.ControlBindings(); err != nil {
		return err
	}
	return nil
}

// ControlBindings resolves key names into per-player controls
func (c *Config) ControlBindings() ([]input.Controls, error) {
	bindings := []Binding{c.Controls.Player1, c.Controls.Player2}
	out := make([]input.Controls, 0, len(bindings))
	for i, b := range bindings {
		var ctl input.Controls
		for _, f := range []struct {
			dst  *input.Key
			name string
		}{
			{&ctl.Thrust, b.Thrust},
			{&ctl.RotateLeft, b.RotateLeft},
			{&ctl.RotateRight, b.RotateRight},
			{&ctl.Fire, b.Fire},
		} {
			k, err := input.ParseKey(f.name)
			if err != nil {
				return nil, fmt.Errorf("controls.player%d: %w", i+1, err)
			}
			*f.dst = k
		}
		out = append(out, ctl)
	}
	return out, nil
}
