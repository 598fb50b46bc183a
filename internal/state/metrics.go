package state

import (
	"time"

	"github.com/manav03panchal/lifedash/internal/parser"
	"github.com/manav03panchal/lifedash/internal/validate"
)

// Metric bounds.
const (
	MaxWaterIntake = 40
	MaxSteps       = 200000
	MaxWaterGoal   = 40
	MaxStepsGoal   = 200000
)

// Metrics is a snapshot of the life metrics widget.
type Metrics struct {
	WaterIntake int    `json:"waterIntake"`
	WaterGoal   int    `json:"waterGoal"`
	SleepTime   string `json:"sleepTime"`
	WakeTime    string `json:"wakeTime"`
	StepsToday  int    `json:"stepsToday"`
	StepsGoal   int    `json:"stepsGoal"`
}

// SleepDuration returns the time between SleepTime and WakeTime.
func (m Metrics) SleepDuration() time.Duration {
	d, err := parser.SleepDuration(m.SleepTime, m.WakeTime)
	if err != nil {
		return 0
	}
	return d
}

// WaterProgress returns intake as a fraction of the goal, capped at 1.
func (m Metrics) WaterProgress() float64 {
	return fraction(m.WaterIntake, m.WaterGoal)
}

// StepsProgress returns steps as a fraction of the goal, capped at 1.
func (m Metrics) StepsProgress() float64 {
	return fraction(m.StepsToday, m.StepsGoal)
}

func fraction(v, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	f := float64(v) / float64(goal)
	if f > 1 {
		return 1
	}
	return f
}

// Metrics returns a snapshot of the life metrics.
func (a *Aggregator) Metrics() Metrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.metrics
}

// SetWaterIntake replaces the water intake.
func (a *Aggregator) SetWaterIntake(glasses int) error {
	if err := validate.InRange("water intake", glasses, 0, MaxWaterIntake); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics.WaterIntake = glasses
	return nil
}

// SetWaterGoal replaces the water goal.
func (a *Aggregator) SetWaterGoal(glasses int) error {
	if err := validate.InRange("water goal", glasses, 1, MaxWaterGoal); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics.WaterGoal = glasses
	return nil
}

// AdjustWater adds delta glasses, clamped to the valid range.
func (a *Aggregator) AdjustWater(delta int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics.WaterIntake = clamp(a.metrics.WaterIntake+delta, 0, MaxWaterIntake)
	return a.metrics.WaterIntake
}

// SetSleepTime replaces the bedtime. The value must be "HH:MM".
func (a *Aggregator) SetSleepTime(clock string) error {
	offset, err := parser.ParseClock(clock)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics.SleepTime = parser.FormatClock(offset)
	return nil
}

// SetWakeTime replaces the wake-up time. The value must be "HH:MM".
func (a *Aggregator) SetWakeTime(clock string) error {
	offset, err := parser.ParseClock(clock)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics.WakeTime = parser.FormatClock(offset)
	return nil
}

// AdjustSleepTime shifts the bedtime by delta, wrapping around midnight.
func (a *Aggregator) AdjustSleepTime(delta time.Duration) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if next, err := parser.AddClock(a.metrics.SleepTime, delta); err == nil {
		a.metrics.SleepTime = next
	}
	return a.metrics.SleepTime
}

// AdjustWakeTime shifts the wake-up time by delta, wrapping around midnight.
func (a *Aggregator) AdjustWakeTime(delta time.Duration) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if next, err := parser.AddClock(a.metrics.WakeTime, delta); err == nil {
		a.metrics.WakeTime = next
	}
	return a.metrics.WakeTime
}

// SetStepsToday replaces today's step count.
func (a *Aggregator) SetStepsToday(steps int) error {
	if err := validate.InRange("steps", steps, 0, MaxSteps); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics.StepsToday = steps
	return nil
}

// SetStepsGoal replaces the daily step goal.
func (a *Aggregator) SetStepsGoal(steps int) error {
	if err := validate.InRange("steps goal", steps, 1, MaxStepsGoal); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics.StepsGoal = steps
	return nil
}

// AdjustSteps adds delta steps, clamped to the valid range.
func (a *Aggregator) AdjustSteps(delta int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics.StepsToday = clamp(a.metrics.StepsToday+delta, 0, MaxSteps)
	return a.metrics.StepsToday
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
