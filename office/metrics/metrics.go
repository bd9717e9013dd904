// Package metrics provides lightweight in-process counters and timers.
//
// Values are best-effort telemetry: the accumulator is deliberately
// unsynchronized and must not be read as an exact audit trail.
package metrics

import (
	"time"
)

type timerEntry struct {
	Count int
	Total time.Duration
}

// Metrics accumulates counters and simple timers.
type Metrics struct {
	counters map[string]int64
	timers   map[string]*timerEntry
}

// New creates an empty metrics accumulator.
func New() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timers:   make(map[string]*timerEntry),
	}
}

// Inc increments a counter.
func (m *Metrics) Inc(key string, value int64) {
	m.counters[key] += value
}

// Observe records one timed run.
func (m *Metrics) Observe(name string, elapsed time.Duration) {
	entry, ok := m.timers[name]
	if !ok {
		entry = &timerEntry{}
		m.timers[name] = entry
	}
	entry.Count++
	entry.Total += elapsed
}

// Time runs fn and records its duration under name.
func (m *Metrics) Time(name string, fn func()) {
	start := time.Now()
	defer func() {
		m.Observe(name, time.Since(start))
	}()
	fn()
}

// TimerStats summarizes one timer.
type TimerStats struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
	Avg   float64 `json:"avg"`
}

// Snapshot returns a copy of all counters and timer aggregates. Timer values
// are reported in seconds.
type Snapshot struct {
	Counters map[string]int64      `json:"counters"`
	Timers   map[string]TimerStats `json:"timers"`
}

// Snapshot returns the current counters and timer aggregates.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		Counters: make(map[string]int64, len(m.counters)),
		Timers:   make(map[string]TimerStats, len(m.timers)),
	}
	for k, v := range m.counters {
		snap.Counters[k] = v
	}
	for k, v := range m.timers {
		total := v.Total.Seconds()
		avg := 0.0
		if v.Count > 0 {
			avg = total / float64(v.Count)
		}
		snap.Timers[k] = TimerStats{Count: v.Count, Total: total, Avg: avg}
	}
	return snap
}
