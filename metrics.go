package tiercache

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    getCounter    prometheus.Counter
//	    loadHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGet(duration time.Duration, hitLevel int, err error) {
//	    p.getCounter.Inc()
//	    // ... record hit level, duration, etc.
//	}
type MetricsCollector interface {
	// RecordGet is called after each chain read. hitLevel is the level
	// index that served the value, or -1 when the backing store did.
	// err is nil unless the backing store failed.
	RecordGet(duration time.Duration, hitLevel int, err error)

	// RecordPut is called after each chain write.
	RecordPut(duration time.Duration)

	// RecordLoad is called after each backing-store load.
	RecordLoad(duration time.Duration, err error)

	// RecordDrop is called when an entry falls off the bottom of the
	// chain and is discarded.
	RecordDrop()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGet(time.Duration, int, error) {}
func (NoopMetricsCollector) RecordPut(time.Duration)             {}
func (NoopMetricsCollector) RecordLoad(time.Duration, error)     {}
func (NoopMetricsCollector) RecordDrop()                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GetCount       atomic.Int64
	GetErrors      atomic.Int64
	GetHits        atomic.Int64
	GetTotalNanos  atomic.Int64
	PutCount       atomic.Int64
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadTotalNanos atomic.Int64
	DropCount      atomic.Int64
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(duration time.Duration, hitLevel int, err error) {
	b.GetCount.Add(1)
	b.GetTotalNanos.Add(duration.Nanoseconds())
	if hitLevel >= 0 {
		b.GetHits.Add(1)
	}
	if err != nil {
		b.GetErrors.Add(1)
	}
}

// RecordPut implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPut(duration time.Duration) {
	b.PutCount.Add(1)
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordDrop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDrop() {
	b.DropCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GetCount:     b.GetCount.Load(),
		GetErrors:    b.GetErrors.Load(),
		GetHits:      b.GetHits.Load(),
		GetAvgNanos:  b.getAvgGetNanos(),
		PutCount:     b.PutCount.Load(),
		LoadCount:    b.LoadCount.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		LoadAvgNanos: b.getAvgLoadNanos(),
		DropCount:    b.DropCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgGetNanos() int64 {
	count := b.GetCount.Load()
	if count == 0 {
		return 0
	}
	return b.GetTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgLoadNanos() int64 {
	count := b.LoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.LoadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GetCount     int64
	GetErrors    int64
	GetHits      int64
	GetAvgNanos  int64
	PutCount     int64
	LoadCount    int64
	LoadErrors   int64
	LoadAvgNanos int64
	DropCount    int64
}
