//go:build window

package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/itwt/space-battle/input"
	"github.com/itwt/space-battle/parameter"
	"github.com/itwt/space-battle/render"
)

// Stepper advances the simulation one frame and reports whether it should continue
type Stepper interface {
	Step() bool
}

// Options configures the window; zero fields take defaults
type Options struct {
	Width, Height int
	FPS           int
	Title         string
}

// Backend is an input.Source and, through DisplayList, a render.Surface
// All methods run on the ebiten update goroutine
type Backend struct {
	*render.DisplayList

	opts    Options
	surface imageSurface
	logger  zerolog.Logger
}

// New creates a window backend; nothing is opened until Run
func New(opts Options, logger zerolog.Logger) *Backend {
	if opts.Width <= 0 {
		opts.Width = parameter.ScreenWidth
	}
	if opts.Height <= 0 {
		opts.Height = parameter.ScreenHeight
	}
	if opts.FPS <= 0 {
		opts.FPS = parameter.TargetFPS
	}
	if opts.Title == "" {
		opts.Title = parameter.WindowTitle
	}
	return &Backend{
		DisplayList: render.NewDisplayList(),
		opts:        opts,
		logger:      logger.With().Str("component", "window").Logger(),
	}
}

// Poll samples held keys; closing the window requests quit
func (b *Backend) Poll() input.Snapshot {
	return input.Snapshot{
		Keys: pressedKeys(),
		Quit: ebiten.IsWindowBeingClosed(),
	}
}

// Run opens the window and drives stepper at the configured TPS until it stops
// Blocks on the calling goroutine, which must be the main goroutine
func (b *Backend) Run(stepper Stepper) error {
	ebiten.SetWindowSize(b.opts.Width, b.opts.Height)
	ebiten.SetWindowTitle(b.opts.Title)
	ebiten.SetTPS(b.opts.FPS)
	ebiten.SetWindowClosingHandled(true)

	b.logger.Debug().
		Int("width", b.opts.Width).
		Int("height", b.opts.Height).
		Int("tps", b.opts.FPS).
		Msg("window opening")

	err := ebiten.RunGame(&game{backend: b, stepper: stepper})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window loop failed: %w", err)
	}
	b.logger.Debug().Int("frames", b.Presented()).Msg("window closed")
	return nil
}

// game adapts the backend to ebiten.Game
type game struct {
	backend *Backend
	stepper Stepper
}

func (g *game) Update() error {
	if !g.stepper.Step() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	s := &g.backend.surface
	s.dst = screen
	g.backend.Replay(s)
	s.dst = nil
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.backend.opts.Width, g.backend.opts.Height
}
