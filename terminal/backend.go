package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/itwt/space-battle/input"
	"github.com/itwt/space-battle/parameter"
	"github.com/itwt/space-battle/render"
	"github.com/itwt/space-battle/vmath"
)

// Options configures a terminal Backend; zero fields take defaults
type Options struct {
	// Logical play field size
	Width, Height float64

	InitialHold time.Duration
	RepeatHold  time.Duration

	// Now is the hold tracker time source; nil means time.Now
	Now func() time.Time
}

// Backend is a render.Surface and input.Source over a tcell screen
// Surface and Source methods must be called from the loop goroutine
type Backend struct {
	screen tcell.Screen
	canvas *render.Canvas
	held   *input.HoldTracker
	logger zerolog.Logger

	events chan tcell.Event
	done   chan struct{}
	wg     sync.WaitGroup

	quit      bool
	closeOnce sync.Once
}

// New initializes screen and starts the event reader
// The caller must Close the backend to restore the terminal
func New(screen tcell.Screen, opts Options, logger zerolog.Logger) (*Backend, error) {
	if opts.Width <= 0 {
		opts.Width = parameter.ScreenWidth
	}
	if opts.Height <= 0 {
		opts.Height = parameter.ScreenHeight
	}
	if opts.InitialHold <= 0 {
		opts.InitialHold = parameter.KeyInitialHold
	}
	if opts.RepeatHold <= 0 {
		opts.RepeatHold = parameter.KeyRepeatHold
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	b := &Backend{
		screen: screen,
		canvas: render.NewCanvas(cols, rows*2, opts.Width, opts.Height),
		held:   input.NewHoldTracker(opts.InitialHold, opts.RepeatHold, opts.Now),
		logger: logger.With().Str("component", "terminal").Logger(),
		events: make(chan tcell.Event, parameter.EventQueueSize),
		done:   make(chan struct{}),
	}
	b.logger.Debug().Int("cols", cols).Int("rows", rows).Msg("screen initialized")

	b.wg.Add(1)
	go b.readEvents()
	return b, nil
}

// readEvents blocks in PollEvent and forwards to the loop; exits when the screen is finalized
func (b *Backend) readEvents() {
	defer b.wg.Done()
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

// Close restores the terminal; safe to call more than once
func (b *Backend) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
		b.screen.Fini()
		b.wg.Wait()
		b.logger.Debug().Msg("screen finalized")
	})
	return nil
}

// Poll drains pending events without blocking and reports the held keys
// Quit is sticky once requested
func (b *Backend) Poll() input.Snapshot {
	for {
		select {
		case ev := <-b.events:
			if !b.handleEvent(ev) {
				b.quit = true
			}
		default:
			return input.Snapshot{Keys: b.held.Held(), Quit: b.quit}
		}
	}
}

// handleEvent applies one event and returns false if the game should exit
func (b *Backend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return b.handleKeyEvent(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		b.canvas.Resize(cols, rows*2)
		b.screen.Sync()
		b.logger.Debug().Int("cols", cols).Int("rows", rows).Msg("screen resized")
	}
	return true
}

func (b *Backend) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		if ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0 {
			return false
		}
		if k, ok := input.KeyFromRune(ev.Rune()); ok {
			b.held.Press(k)
		}
	default:
		if k, ok := specialKeys[ev.Key()]; ok {
			b.held.Press(k)
		}
	}
	return true
}

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:    input.KeyUp,
	tcell.KeyDown:  input.KeyDown,
	tcell.KeyLeft:  input.KeyLeft,
	tcell.KeyRight: input.KeyRight,
	tcell.KeyEnter: input.KeyEnter,
}

func (b *Backend) Clear(c render.RGB) {
	b.canvas.Clear(c)
}

func (b *Backend) FillPolygon(points []vmath.Vec2, c render.RGB) {
	b.canvas.FillPolygon(points, c)
}

func (b *Backend) FillCircle(center vmath.Vec2, radius float64, c render.RGB) {
	b.canvas.FillCircle(center, radius, c)
}

// Present blits the canvas, two pixel rows per cell, and shows the screen
func (b *Backend) Present() {
	w, h := b.canvas.Bounds()
	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			b.screen.SetContent(x, y/2, halfBlock, nil, cellStyle(b.canvas.At(x, y), b.canvas.At(x, y+1)))
		}
	}
	b.screen.Show()
}
