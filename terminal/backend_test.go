package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itwt/space-battle/input"
	"github.com/itwt/space-battle/render"
	"github.com/itwt/space-battle/vmath"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBackend(t *testing.T) (*Backend, tcell.SimulationScreen, *fakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	b, err := New(screen, Options{
		InitialHold: 600 * time.Millisecond,
		RepeatHold:  120 * time.Millisecond,
		Now:         clock.now,
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b, screen, clock
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestBackend_CanvasCoversScreen(t *testing.T) {
	b, screen, _ := newTestBackend(t)
	cols, rows := screen.Size()
	w, h := b.canvas.Bounds()
	assert.Equal(t, cols, w)
	assert.Equal(t, rows*2, h)
}

func TestBackend_PresentBlitsHalfBlocks(t *testing.T) {
	b, screen, _ := newTestBackend(t)
	_, rows := screen.Size()

	b.Clear(render.RgbPlayerOne)
	// Top half of the field
	b.FillPolygon([]vmath.Vec2{{X: 0, Y: 0}, {X: 800, Y: 0}, {X: 800, Y: 300}, {X: 0, Y: 300}}, render.RgbPlayerTwo)
	b.Present()

	mainc, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, halfBlock, mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, toTcell(render.RgbPlayerTwo), fg)
	assert.Equal(t, toTcell(render.RgbPlayerTwo), bg)

	mainc, _, style, _ = screen.GetContent(5, rows-1)
	assert.Equal(t, halfBlock, mainc)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, toTcell(render.RgbPlayerOne), fg)
	assert.Equal(t, toTcell(render.RgbPlayerOne), bg)
}

func TestBackend_FillCircleVisible(t *testing.T) {
	b, screen, _ := newTestBackend(t)

	b.Clear(render.RgbBackground)
	b.FillCircle(vmath.Vec2{X: 400, Y: 300}, 5, render.RgbPlayerOne)
	b.Present()

	found := false
	cols, rows := screen.Size()
	for y := 0; y < rows && !found; y++ {
		for x := 0; x < cols; x++ {
			_, _, style, _ := screen.GetContent(x, y)
			fg, bg, _ := style.Decompose()
			if fg == toTcell(render.RgbPlayerOne) || bg == toTcell(render.RgbPlayerOne) {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "projectile must paint at least one pixel")
}

func TestBackend_KeyHeldForInitialWindow(t *testing.T) {
	b, _, clock := newTestBackend(t)

	assert.True(t, b.handleEvent(runeKey('W')))
	assert.True(t, b.Poll().Keys.Has(input.KeyW))

	clock.advance(599 * time.Millisecond)
	assert.True(t, b.Poll().Keys.Has(input.KeyW))

	clock.advance(2 * time.Millisecond)
	assert.False(t, b.Poll().Keys.Has(input.KeyW))
}

func TestBackend_AutoRepeatKeepsKeyHeld(t *testing.T) {
	b, _, clock := newTestBackend(t)

	b.handleEvent(runeKey(' '))
	clock.advance(550 * time.Millisecond)
	b.handleEvent(runeKey(' '))
	clock.advance(100 * time.Millisecond)
	assert.True(t, b.Poll().Keys.Has(input.KeySpace))

	clock.advance(30 * time.Millisecond)
	assert.False(t, b.Poll().Keys.Has(input.KeySpace))
}

func TestBackend_SpecialKeys(t *testing.T) {
	b, _, _ := newTestBackend(t)

	for _, k := range []tcell.Key{tcell.KeyUp, tcell.KeyLeft, tcell.KeyRight, tcell.KeyEnter} {
		require.True(t, b.handleEvent(key(k)))
	}
	snap := b.Poll()
	for _, k := range []input.Key{input.KeyUp, input.KeyLeft, input.KeyRight, input.KeyEnter} {
		assert.True(t, snap.Keys.Has(k), k.String())
	}
	assert.False(t, snap.Keys.Has(input.KeyDown))
	assert.False(t, snap.Quit)
}

func TestBackend_UnmappedRuneIgnored(t *testing.T) {
	b, _, _ := newTestBackend(t)
	assert.True(t, b.handleEvent(runeKey('7')))
	assert.True(t, b.Poll().Keys.Empty())
}

func TestBackend_QuitKeys(t *testing.T) {
	b, _, _ := newTestBackend(t)

	assert.False(t, b.handleEvent(key(tcell.KeyEscape)))
	assert.False(t, b.handleEvent(key(tcell.KeyCtrlC)))
	assert.False(t, b.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModCtrl)))
	assert.True(t, b.handleEvent(runeKey('c')))
}

func TestBackend_QuitIsSticky(t *testing.T) {
	b, screen, _ := newTestBackend(t)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.Eventually(t, func() bool { return b.Poll().Quit }, time.Second, 5*time.Millisecond)
	assert.True(t, b.Poll().Quit)
}

func TestBackend_EventsFlowThroughReader(t *testing.T) {
	b, screen, _ := newTestBackend(t)

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	require.Eventually(t, func() bool {
		return b.Poll().Keys.Has(input.KeyUp)
	}, time.Second, 5*time.Millisecond)
}

func TestBackend_ResizeRescalesCanvas(t *testing.T) {
	b, _, _ := newTestBackend(t)

	assert.True(t, b.handleEvent(tcell.NewEventResize(20, 10)))
	w, h := b.canvas.Bounds()
	assert.Equal(t, 20, w)
	assert.Equal(t, 20, h)
}

func TestBackend_CloseIsIdempotent(t *testing.T) {
	b, _, _ := newTestBackend(t)
	assert.NoError(t, b.Close())
	assert.NoError(t, b.Close())
}
