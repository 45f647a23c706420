package bitarray

import "sync/atomic"

// MetricsCollector defines an interface for collecting buffer metrics.
// Implement this interface to integrate with monitoring systems; package
// prometheus provides a Prometheus-backed implementation.
type MetricsCollector interface {
	// RecordAlloc is called after each buffer allocation attempt.
	// words is the requested size, err is nil if successful.
	RecordAlloc(words int, err error)

	// RecordRelease is called when an owned buffer of words is released.
	RecordRelease(words int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int, error) {}
func (NoopMetricsCollector) RecordRelease(int)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount    atomic.Int64
	AllocErrors   atomic.Int64
	AllocWords    atomic.Int64
	ReleaseCount  atomic.Int64
	ReleasedWords atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(words int, err error) {
	b.AllocCount.Add(1)
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocWords.Add(int64(words))
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(words int) {
	b.ReleaseCount.Add(1)
	b.ReleasedWords.Add(int64(words))
}

// LiveWords returns words allocated and not yet released.
func (b *BasicMetricsCollector) LiveWords() int64 {
	return b.AllocWords.Load() - b.ReleasedWords.Load()
}
