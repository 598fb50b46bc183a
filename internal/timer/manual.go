package timer

import (
	"sync"
	"time"
)

// ManualClock is a Clock that only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*ManualTimer
}

// NewManualClock creates a clock at offset zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// ManualTimer is a pending callback on a ManualClock.
type ManualTimer struct {
	clock   *ManualClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
	stops   int
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &ManualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *ManualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stops++
	pending := !t.stopped && !t.fired
	t.stopped = true
	return pending
}

// Stops returns how many times Stop was called on this timer.
func (t *ManualTimer) Stops() int {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.stops
}

// Advance moves the clock forward by d, running every callback that
// becomes due, in order.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *ManualTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.fired = true
		f := next.f
		c.mu.Unlock()

		f()
	}
}

// Timers returns every timer scheduled so far, in creation order.
func (c *ManualClock) Timers() []*ManualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*ManualTimer, len(c.timers))
	copy(out, c.timers)
	return out
}

// Pending returns the timers that have neither fired nor been stopped.
func (c *ManualClock) Pending() []*ManualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*ManualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}
