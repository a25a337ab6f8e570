package lexgo

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
//	    loadCounter       prometheus.Counter
//	    evaluateHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordEvaluate(matches int, duration time.Duration, err error) {
//	    p.evaluateHistogram.Observe(duration.Seconds())
//	    // ... record error state, match counts, etc.
//	}
type MetricsCollector interface {
	// RecordLoad is called after each corpus load.
	// tokens is the corpus length, err is nil if successful.
	RecordLoad(tokens int, duration time.Duration, err error)

	// RecordCompile is called after each query compilation.
	RecordCompile(duration time.Duration, err error)

	// RecordEvaluate is called after each evaluation.
	// matches is the number of matches returned, err is nil if successful.
	RecordEvaluate(matches int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordCompile(time.Duration, error)       {}
func (NoopMetricsCollector) RecordEvaluate(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount          atomic.Int64
	LoadErrors         atomic.Int64
	CompileCount       atomic.Int64
	CompileErrors      atomic.Int64
	EvaluateCount      atomic.Int64
	EvaluateErrors     atomic.Int64
	EvaluateMatches    atomic.Int64
	EvaluateTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(tokens int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordCompile implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompile(duration time.Duration, err error) {
	b.CompileCount.Add(1)
	if err != nil {
		b.CompileErrors.Add(1)
	}
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(matches int, duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvaluateErrors.Add(1)
	} else {
		b.EvaluateMatches.Add(int64(matches))
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:        b.LoadCount.Load(),
		LoadErrors:       b.LoadErrors.Load(),
		CompileCount:     b.CompileCount.Load(),
		CompileErrors:    b.CompileErrors.Load(),
		EvaluateCount:    b.EvaluateCount.Load(),
		EvaluateErrors:   b.EvaluateErrors.Load(),
		EvaluateMatches:  b.EvaluateMatches.Load(),
		EvaluateAvgNanos: b.getAvgEvaluateNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgEvaluateNanos() int64 {
	count := b.EvaluateCount.Load()
	if count == 0 {
		return 0
	}
	return b.EvaluateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount        int64
	LoadErrors       int64
	CompileCount     int64
	CompileErrors    int64
	EvaluateCount    int64
	EvaluateErrors   int64
	EvaluateMatches  int64
	EvaluateAvgNanos int64
}
