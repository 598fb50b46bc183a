// Package timer provides the press-and-hold repeat timers used by the
// dashboard's metric editors.
package timer

import (
	"sync"
	"time"
)

// Stopper is a cancellable pending callback, as returned by time.AfterFunc.
type Stopper interface {
	Stop() bool
}

// Clock schedules callbacks. The zero value of Hold uses the real clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

// RealClock schedules callbacks with time.AfterFunc.
type RealClock struct{}

// AfterFunc calls f in its own goroutine after d.
func (RealClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Default hold timings.
const (
	DefaultDelay    = 400 * time.Millisecond
	DefaultInterval = 120 * time.Millisecond
)

// Hold repeats a callback while a press is held: the first call happens after
// Delay, then one every Interval until Stop. A stopped hold never fires again,
// even if its timer was already due.
type Hold struct {
	mu       sync.Mutex
	clock    Clock
	delay    time.Duration
	interval time.Duration
	timer    Stopper
	gen      uint64
	repeats  int
}

// NewHold creates a hold on clock. A nil clock uses RealClock.
func NewHold(clock Clock, delay, interval time.Duration) *Hold {
	if clock == nil {
		clock = RealClock{}
	}
	if delay < 0 {
		delay = 0
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Hold{
		clock:    clock,
		delay:    delay,
		interval: interval,
	}
}

// Start arms the hold with fn. Starting an armed hold restarts it.
func (h *Hold) Start(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopLocked()
	h.repeats = 0
	h.armLocked(h.gen, h.delay, fn)
}

func (h *Hold) armLocked(gen uint64, d time.Duration, fn func()) {
	h.timer = h.clock.AfterFunc(d, func() { h.fire(gen, fn) })
}

func (h *Hold) fire(gen uint64, fn func()) {
	h.mu.Lock()
	if gen != h.gen || h.timer == nil {
		// Stopped or restarted after this timer became due.
		h.mu.Unlock()
		return
	}
	h.repeats++
	h.armLocked(gen, h.interval, fn)
	h.mu.Unlock()

	fn()
}

// Stop disarms the hold. It reports whether the hold was armed.
func (h *Hold) Stop() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopLocked()
}

func (h *Hold) stopLocked() bool {
	if h.timer == nil {
		return false
	}
	h.timer.Stop()
	h.timer = nil
	h.gen++
	return true
}

// Repeats returns how many times the callback ran since the last Start.
func (h *Hold) Repeats() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.repeats
}
