package engine

import "time"

// Clock limits the frame rate
// Tick blocks until one frame duration has passed since the previous tick
type Clock struct {
	time  TimeProvider
	sleep func(time.Duration)
	last  time.Time
}

// NewClock creates a clock sleeping on the real timer
func NewClock(tp TimeProvider) *Clock {
	return NewClockWithSleep(tp, time.Sleep)
}

// NewClockWithSleep creates a clock with an injected sleep, for mocked time
func NewClockWithSleep(tp TimeProvider, sleep func(time.Duration)) *Clock {
	return &Clock{time: tp, sleep: sleep, last: tp.Now()}
}

// Tick waits out the rest of the frame at targetFPS and returns the seconds since the
// previous tick, wait included. targetFPS <= 0 disables limiting
// The wait is not cancellable
func (c *Clock) Tick(targetFPS int) float64 {
	now := c.time.Now()
	if targetFPS > 0 {
		frame := time.Second / time.Duration(targetFPS)
		if wait := frame - now.Sub(c.last); wait > 0 {
			c.sleep(wait)
			now = c.time.Now()
		}
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed.Seconds()
}
