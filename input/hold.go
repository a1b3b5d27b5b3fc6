package input

import "time"

// HoldTracker reconstructs held keys from press and auto-repeat events
// Terminals report presses and repeats but no releases: a key stays held for
// initial after its first press and for repeat after each later event
// Not safe for concurrent use; owned by the frame loop
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	now     func() time.Time

	until [KeyCount]time.Time
}

// NewHoldTracker creates a tracker reading time from now
func NewHoldTracker(initial, repeat time.Duration, now func() time.Time) *HoldTracker {
	return &HoldTracker{initial: initial, repeat: repeat, now: now}
}

// Press registers a press or auto-repeat of k
func (h *HoldTracker) Press(k Key) {
	if k == KeyNone || int(k) >= KeyCount {
		return
	}
	now := h.now()
	if now.Before(h.until[k]) {
		// Repeat while held: extend, never shorten the initial window
		if next := now.Add(h.repeat); next.After(h.until[k]) {
			h.until[k] = next
		}
		return
	}
	h.until[k] = now.Add(h.initial)
}

// Release forgets k immediately
func (h *HoldTracker) Release(k Key) {
	if k == KeyNone || int(k) >= KeyCount {
		return
	}
	h.until[k] = time.Time{}
}

// Reset releases every key
func (h *HoldTracker) Reset() {
	h.until = [KeyCount]time.Time{}
}

// Held returns the keys currently considered held
func (h *HoldTracker) Held() KeySet {
	now := h.now()
	var s KeySet
	for k := KeyNone + 1; int(k) < KeyCount; k++ {
		if now.Before(h.until[k]) {
			s = s.With(k)
		}
	}
	return s
}
