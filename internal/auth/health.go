package auth

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/manav03panchal/lifedash/internal/errors"
)

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status        string       `json:"status"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	MemoryMB      float64      `json:"memory_mb"`
	Goroutines    int          `json:"goroutines"`
	Version       string       `json:"version,omitempty"`
	Logins        LoginMetrics `json:"logins"`
}

// LoginMetrics counts login outcomes since the server started.
type LoginMetrics struct {
	Succeeded        int64            `json:"succeeded"`
	Failed           int64            `json:"failed"`
	ErrorsByCategory map[string]int64 `json:"errors_by_category,omitempty"`
}

// Health tracks server uptime and login counters.
type Health struct {
	startTime time.Time
	version   string

	succeeded atomic.Int64
	failed    atomic.Int64

	mu               sync.Mutex
	errorsByCategory map[string]int64
}

// NewHealth creates a health tracker started now.
func NewHealth(version string) *Health {
	return &Health{
		startTime:        time.Now(),
		version:          version,
		errorsByCategory: make(map[string]int64),
	}
}

// Record counts the outcome of one login call.
func (h *Health) Record(err error) {
	if err == nil {
		h.succeeded.Add(1)
		return
	}
	h.failed.Add(1)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.errorsByCategory[errors.Classify(err).String()]++
}

// Check returns the current status.
func (h *Health) Check() *HealthStatus {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	h.mu.Lock()
	byCategory := make(map[string]int64, len(h.errorsByCategory))
	for k, v := range h.errorsByCategory {
		byCategory[k] = v
	}
	h.mu.Unlock()

	return &HealthStatus{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		MemoryMB:      float64(memStats.Alloc) / 1024 / 1024,
		Goroutines:    runtime.NumGoroutine(),
		Version:       h.version,
		Logins: LoginMetrics{
			Succeeded:        h.succeeded.Load(),
			Failed:           h.failed.Load(),
			ErrorsByCategory: byCategory,
		},
	}
}

// Uptime returns how long the server has been running.
func (h *Health) Uptime() time.Duration {
	return time.Since(h.startTime)
}
