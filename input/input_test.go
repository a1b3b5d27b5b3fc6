package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultControls_Mapping(t *testing.T) {
	c := DefaultControls()
	require.Len(t, c, 2)

	assert.Equal(t, Controls{Thrust: KeyW, RotateLeft: KeyA, RotateRight: KeyD, Fire: KeySpace}, c[0])
	assert.Equal(t, Controls{Thrust: KeyUp, RotateLeft: KeyLeft, RotateRight: KeyRight, Fire: KeyEnter}, c[1])
	assert.Equal(t, "w", KeyW.String())
	assert.Equal(t, "d", KeyD.String())
}

func TestDecode_FixedOrder(t *testing.T) {
	c := DefaultControls()[0]
	keys := NewKeySet(KeySpace, KeyD, KeyA, KeyW)
	got := c.Decode(keys, nil)
	assert.Equal(t, []Command{CmdMove, CmdRotateLeft, CmdRotateRight, CmdFire}, got)
}

func TestDecode_OnlyOwnKeys(t *testing.T) {
	controls := DefaultControls()
	keys := NewKeySet(KeyW, KeyEnter)

	assert.Equal(t, []Command{CmdMove}, controls[0].Decode(keys, nil))
	assert.Equal(t, []Command{CmdFire}, controls[1].Decode(keys, nil))
	assert.Empty(t, controls[1].Decode(NewKeySet(), nil))
}

func TestDecode_ReusesBuffer(t *testing.T) {
	c := DefaultControls()[1]
	buf := make([]Command, 0, 4)
	buf = c.Decode(NewKeySet(KeyLeft), buf[:0])
	assert.Equal(t, []Command{CmdRotateLeft}, buf)
	buf = c.Decode(NewKeySet(KeyRight, KeyUp), buf[:0])
	assert.Equal(t, []Command{CmdMove, CmdRotateRight}, buf)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "move", CmdMove.String())
	assert.Equal(t, "rotate-left", CmdRotateLeft.String())
	assert.Equal(t, "rotate-right", CmdRotateRight.String())
	assert.Equal(t, "fire", CmdFire.String())
}

func TestKeyFromRune(t *testing.T) {
	k, ok := KeyFromRune('w')
	assert.True(t, ok)
	assert.Equal(t, KeyW, k)

	k, ok = KeyFromRune('W')
	assert.True(t, ok)
	assert.Equal(t, KeyW, k)

	k, ok = KeyFromRune(' ')
	assert.True(t, ok)
	assert.Equal(t, KeySpace, k)

	_, ok = KeyFromRune('1')
	assert.False(t, ok)
}

func TestParseKey(t *testing.T) {
	tests := map[string]Key{
		"w":     KeyW,
		"A":     KeyA,
		"space": KeySpace,
		"Enter": KeyEnter,
		" up ":  KeyUp,
		"left":  KeyLeft,
		"right": KeyRight,
		"z":     KeyZ,
	}
	for name, want := range tests {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKey("f13")
	assert.Error(t, err)
	_, err = ParseKey("")
	assert.Error(t, err)
}

func TestKeySet(t *testing.T) {
	s := NewKeySet(KeyW, KeyEnter)
	assert.True(t, s.Has(KeyW))
	assert.True(t, s.Has(KeyEnter))
	assert.False(t, s.Has(KeyA))
	assert.False(t, s.Has(KeyNone))
	assert.False(t, s.Empty())
	assert.True(t, NewKeySet().Empty())
	assert.Equal(t, s, s.With(KeyNone))
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestHoldTracker_InitialWindow(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	h := NewHoldTracker(600*time.Millisecond, 120*time.Millisecond, clk.now)

	h.Press(KeyW)
	assert.True(t, h.Held().Has(KeyW))

	clk.advance(599 * time.Millisecond)
	assert.True(t, h.Held().Has(KeyW))

	clk.advance(time.Millisecond)
	assert.False(t, h.Held().Has(KeyW), "released after initial window")
}

func TestHoldTracker_RepeatsExtend(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	h := NewHoldTracker(600*time.Millisecond, 120*time.Millisecond, clk.now)

	h.Press(KeySpace)
	clk.advance(500 * time.Millisecond)
	h.Press(KeySpace) // first auto-repeat extends past the initial window
	assert.True(t, h.Held().Has(KeySpace))

	// steady auto-repeat every 33ms keeps the key held
	for i := 0; i < 30; i++ {
		clk.advance(33 * time.Millisecond)
		h.Press(KeySpace)
		require.True(t, h.Held().Has(KeySpace), "repeat %d", i)
	}

	clk.advance(120 * time.Millisecond)
	assert.False(t, h.Held().Has(KeySpace), "released once repeats stop")
}

func TestHoldTracker_ReleaseAndReset(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	h := NewHoldTracker(time.Second, time.Second, clk.now)

	h.Press(KeyA)
	h.Press(KeyUp)
	h.Release(KeyA)
	assert.Equal(t, NewKeySet(KeyUp), h.Held())

	h.Reset()
	assert.True(t, h.Held().Empty())

	h.Press(KeyNone)
	assert.True(t, h.Held().Empty())
}
