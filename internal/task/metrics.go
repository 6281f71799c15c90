package task

import (
	"sync"
	"time"
)

// Metrics tracks basic execution counters across a runner's lifetime.
type Metrics struct {
	runs     int64
	errors   int64
	duration time.Duration
	mu       sync.RWMutex
}

// NewMetrics creates a new metrics tracker
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordRun records a completed task run
func (m *Metrics) RecordRun(duration time.Duration) {
	m.mu.Lock()
	m.runs++
	m.duration += duration
	m.mu.Unlock()
}

// RecordError records a failed or unresolvable run
func (m *Metrics) RecordError() {
	m.mu.Lock()
	m.errors++
	m.mu.Unlock()
}

// GetStats returns current metrics
func (m *Metrics) GetStats() (int64, int64, time.Duration) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.runs, m.errors, m.duration
}
