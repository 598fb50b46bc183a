package state

import (
	"github.com/manav03panchal/lifedash/internal/logging"
)

// HoldKind names one of the press-and-hold interactions.
type HoldKind int

const (
	HoldWater HoldKind = iota
	HoldSleep
	HoldSteps

	holdKindCount
)

// HoldKinds lists every hold kind.
var HoldKinds = []HoldKind{HoldWater, HoldSleep, HoldSteps}

func (k HoldKind) String() string {
	switch k {
	case HoldWater:
		return "water"
	case HoldSleep:
		return "sleep"
	case HoldSteps:
		return "steps"
	}
	return "unknown"
}

func (k HoldKind) valid() bool {
	return k >= 0 && k < holdKindCount
}

// StartHold arms the hold timer of the given kind. step runs on every
// repeat until EndHold or Close; each run is followed by a change
// notification. Starting an armed hold restarts it. It reports false once
// the aggregator is closed.
func (a *Aggregator) StartHold(kind HoldKind, step func()) bool {
	if !kind.valid() {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return false
	}
	a.holding[kind] = true
	a.holds[kind].Start(func() {
		if a.Closed() {
			return
		}
		step()
		a.notify()
	})
	logging.DebugLog("hold started", "hold", kind.String())
	return true
}

// EndHold disarms the hold timer of the given kind. It reports whether the
// hold was armed.
func (a *Aggregator) EndHold(kind HoldKind) bool {
	if !kind.valid() {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.holding[kind] = false
	return a.holds[kind].Stop()
}

// IsHolding reports whether a hold interaction of the given kind is in
// progress.
func (a *Aggregator) IsHolding(kind HoldKind) bool {
	if !kind.valid() {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.holding[kind]
}

// HoldRepeats returns how many times the hold's step ran since it started.
func (a *Aggregator) HoldRepeats(kind HoldKind) int {
	if !kind.valid() {
		return 0
	}
	return a.holds[kind].Repeats()
}
