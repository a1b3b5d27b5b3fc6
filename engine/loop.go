package engine

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/itwt/space-battle/component"
	"github.com/itwt/space-battle/input"
	"github.com/itwt/space-battle/parameter"
	"github.com/itwt/space-battle/render"
	"github.com/itwt/space-battle/status"
)

// State is the loop lifecycle
type State int32

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// LoopOptions configures NewLoop; zero fields take defaults
type LoopOptions struct {
	// Controls per player, indexed like World.Ships; nil means input.DefaultControls
	Controls []input.Controls
	// Clock paces Run; nil means a real-time clock
	Clock *Clock
	// FPS is the Run frame target; 0 means parameter.TargetFPS
	FPS int
	// Stats receives frame counters; nil allocates a private registry
	Stats *status.Registry
	// SummaryInterval is the debug summary period in frames; 0 means parameter.SummaryIntervalFrames
	SummaryInterval int
	Logger          zerolog.Logger
}

// Loop drives one match frame by frame
// Step and Run must be called from a single goroutine; State and Stop are safe anywhere
type Loop struct {
	world    *World
	surface  render.Surface
	source   input.Source
	controls []input.Controls
	clock    *Clock
	fps      int
	summary  int
	logger   zerolog.Logger

	state atomic.Int32

	stats           *status.Registry
	frames          *atomic.Int64
	shots           *atomic.Int64
	active          *atomic.Int64
	removed         *atomic.Int64
	eroded          *atomic.Int64
	fuelBurned      *status.AtomicFloat
	fpsGauge        *status.AtomicFloat
	playerShots     []*atomic.Int64
	playerFuel      []*status.AtomicFloat
	lastElapsedSecs float64

	cmds []input.Command
}

// NewLoop wires a world to its surface and input source
func NewLoop(world *World, surface render.Surface, source input.Source, opts LoopOptions) *Loop {
	if opts.Controls == nil {
		opts.Controls = input.DefaultControls()
	}
	if opts.Clock == nil {
		opts.Clock = NewClock(NewMonotonicTimeProvider())
	}
	if opts.FPS <= 0 {
		opts.FPS = parameter.TargetFPS
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}
	if opts.SummaryInterval <= 0 {
		opts.SummaryInterval = parameter.SummaryIntervalFrames
	}

	l := &Loop{
		world:    world,
		surface:  surface,
		source:   source,
		controls: opts.Controls,
		clock:    opts.Clock,
		fps:      opts.FPS,
		summary:  opts.SummaryInterval,
		logger:   opts.Logger.With().Str("component", "loop").Logger(),
		stats:    opts.Stats,
		cmds:     make([]input.Command, 0, 4),
	}

	// Cache metric pointers
	l.frames = l.stats.Ints.Get(status.MetricFrames)
	l.shots = l.stats.Ints.Get(status.MetricShots)
	l.active = l.stats.Ints.Get(status.MetricProjectilesActive)
	l.removed = l.stats.Ints.Get(status.MetricProjectilesRemoved)
	l.eroded = l.stats.Ints.Get(status.MetricTerrainEroded)
	l.fuelBurned = l.stats.Floats.Get(status.MetricFuelBurned)
	l.fpsGauge = l.stats.Floats.Get(status.MetricFPS)
	for _, ship := range world.Ships {
		l.playerShots = append(l.playerShots, l.stats.Ints.Get(status.PlayerKey(ship.Player, status.MetricShots)))
		l.playerFuel = append(l.playerFuel, l.stats.Floats.Get(status.PlayerKey(ship.Player, status.MetricFuelBurned)))
	}

	l.state.Store(int32(StateRunning))
	return l
}

// World returns the simulated world
func (l *Loop) World() *World { return l.world }

// Stats returns the registry the loop writes to
func (l *Loop) Stats() *status.Registry { return l.stats }

// State returns the current lifecycle state
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Stop moves the loop to Stopped; later calls are no-ops
func (l *Loop) Stop() {
	if l.state.CompareAndSwap(int32(StateRunning), int32(StateStopped)) {
		l.logger.Debug().
			Stringer("from", StateRunning).
			Stringer("to", StateStopped).
			Int64("frame", l.frames.Load()).
			Msg("state transition")
	}
}

// Run paces Step at the configured FPS until the loop stops or ctx is done
// Cancellation is treated as a quit
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug().Int("fps", l.fps).Msg("loop started")
	for l.State() == StateRunning {
		elapsed := l.clock.Tick(l.fps)
		if ctx.Err() != nil {
			l.Stop()
			break
		}
		l.lastElapsedSecs = elapsed
		if elapsed > 0 {
			l.fpsGauge.Set(1 / elapsed)
		}
		l.Step()
	}
	return nil
}

// Step runs one frame without pacing and reports whether the loop is still running
// A quit snapshot stops the loop before any entity is touched
func (l *Loop) Step() bool {
	if l.State() != StateRunning {
		return false
	}

	l.surface.Clear(render.RgbBackground)

	snap := l.source.Poll()
	if snap.Quit {
		l.Stop()
		return false
	}

	w := l.world
	for i, ship := range w.Ships {
		if i >= len(l.controls) {
			break
		}
		l.cmds = l.controls[i].Decode(snap.Keys, l.cmds[:0])
		for _, cmd := range l.cmds {
			l.apply(i, ship, cmd)
		}
	}

	l.surface.FillPolygon(w.Terrain.Polygon(), render.RgbTerrain)
	for _, ship := range w.Ships {
		l.surface.FillPolygon(ship.Outline(), ship.Color)
	}

	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Move()
		if !p.InBounds(w.Bounds) {
			l.removed.Add(1)
			continue
		}
		l.surface.FillCircle(p.DrawPos(), p.Radius, p.Color)
		if n := w.Terrain.Destruct(p); n > 0 {
			l.eroded.Add(int64(n))
		}
		kept = append(kept, p)
	}
	// Release dropped pointers held past the new length
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept

	l.surface.Present()

	frame := l.frames.Add(1)
	l.active.Store(int64(len(w.Projectiles)))
	if frame%int64(l.summary) == 0 {
		l.logSummary(frame)
	}
	return true
}

func (l *Loop) apply(i int, ship *component.Ship, cmd input.Command) {
	switch cmd {
	case input.CmdMove:
		before := ship.Fuel
		if ship.Move() {
			l.fuelBurned.Add(before - ship.Fuel)
			l.playerFuel[i].Add(before - ship.Fuel)
		}
	case input.CmdRotateLeft:
		ship.Rotate(component.RotateLeft)
	case input.CmdRotateRight:
		ship.Rotate(component.RotateRight)
	case input.CmdFire:
		if p, ok := ship.Shoot(); ok {
			l.world.Projectiles = append(l.world.Projectiles, p)
			l.shots.Add(1)
			l.playerShots[i].Add(1)
		}
	}
}

func (l *Loop) logSummary(frame int64) {
	if l.logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	ev := l.logger.Debug().
		Int64("frame", frame).
		Int("projectiles", len(l.world.Projectiles)).
		Float64("elapsed", l.lastElapsedSecs)
	for i, ship := range l.world.Ships {
		ev = ev.Dict("p"+strconv.Itoa(ship.Player+1), zerolog.Dict().
			Int64("shots", l.playerShots[i].Load()).
			Float64("x", ship.Pos.X).
			Float64("y", ship.Pos.Y).
			Float64("heading", ship.NormalizedHeading()).
			Float64("fuel", ship.Fuel).
			Int("ammo", ship.Ammo))
	}
	ev.Msg("frame summary")
}
