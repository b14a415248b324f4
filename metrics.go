package mapper

import (
	"sync/atomic"
	"time"
)

// RunStats summarizes one pipeline run.
type RunStats struct {
	Points    int
	Cells     int
	LevelSets int
	Nodes     int
	Edges     int
	Duration  time.Duration
}

// MetricsCollector defines an interface for collecting pipeline metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordRun is called after each pipeline run.
	// err is nil if the run produced a graph.
	RecordRun(stats RunStats, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(RunStats, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount      atomic.Int64
	RunErrors     atomic.Int64
	RunTotalNanos atomic.Int64
	NodesTotal    atomic.Int64
	EdgesTotal    atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(stats RunStats, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(stats.Duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.NodesTotal.Add(int64(stats.Nodes))
	b.EdgesTotal.Add(int64(stats.Edges))
}
