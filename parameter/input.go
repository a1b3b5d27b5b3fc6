package parameter

import "time"

// Terminal held-key emulation
// Terminals deliver presses and auto-repeats but never releases
const (
	// KeyInitialHold covers the OS delay before auto-repeat starts
	KeyInitialHold = 600 * time.Millisecond
	// KeyRepeatHold keeps a key held between auto-repeat events
	KeyRepeatHold = 120 * time.Millisecond

	// EventQueueSize buffers terminal events between the poller goroutine and the loop
	EventQueueSize = 256
)
