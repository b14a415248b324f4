// Package mapper provides the Mapper graph construction pipeline.
//
// This file implements the fluent builder API for configuring a Mapper.
// The builder is immutable - each method returns a new builder with the
// updated configuration; results are never stored on it.
package mapper

import (
	"log/slog"

	"github.com/hupe1980/mappergo/cluster"
	"github.com/hupe1980/mappergo/distance"
)

// Configure creates a new immutable pipeline builder with defaults
// (10 intervals, 10% overlap, single-linkage clustering with 10 bins,
// Euclidean metric).
//
// Example:
//
//	m, err := mapper.Configure().
//	    Intervals(5).
//	    OverlapPercent(20).
//	    Bins(10).
//	    Workers(4).
//	    Build()
func Configure() Builder {
	return Builder{}
}

// Builder is an immutable fluent builder for creating Mapper instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	opts []Option
}

func (b Builder) with(opt Option) Builder {
	opts := make([]Option, len(b.opts), len(b.opts)+1)
	copy(opts, b.opts)
	return Builder{opts: append(opts, opt)}
}

// Intervals sets the cover interval count per filter dimension
// (single value broadcasts).
func (b Builder) Intervals(counts ...int) Builder {
	return b.with(WithIntervals(counts...))
}

// OverlapPercent sets the cover overlap per filter dimension, each in
// [0, 100) (single value broadcasts).
func (b Builder) OverlapPercent(percents ...float64) Builder {
	return b.with(WithOverlapPercent(percents...))
}

// Bins sets the histogram bin count for the default clusterer.
func (b Builder) Bins(bins int) Builder {
	return b.with(WithBins(bins))
}

// Clusterer sets the clustering strategy.
func (b Builder) Clusterer(c cluster.Clusterer) Builder {
	return b.with(WithClusterer(c))
}

// ClustererName selects a builtin clustering strategy by name.
func (b Builder) ClustererName(name string) Builder {
	return b.with(WithClustererName(name))
}

// Euclidean sets the coordinate metric to L2 distance.
func (b Builder) Euclidean() Builder {
	return b.with(WithMetric(distance.MetricEuclidean))
}

// SquaredL2 sets the coordinate metric to squared L2 distance.
func (b Builder) SquaredL2() Builder {
	return b.with(WithMetric(distance.MetricSquaredL2))
}

// Manhattan sets the coordinate metric to L1 distance.
func (b Builder) Manhattan() Builder {
	return b.with(WithMetric(distance.MetricManhattan))
}

// Cosine sets the coordinate metric to cosine distance.
func (b Builder) Cosine() Builder {
	return b.with(WithMetric(distance.MetricCosine))
}

// Metric sets the coordinate metric explicitly.
func (b Builder) Metric(m distance.Metric) Builder {
	return b.with(WithMetric(m))
}

// Workers sets the parallel worker count.
func (b Builder) Workers(n int) Builder {
	return b.with(WithWorkers(n))
}

// Logger configures structured logging.
func (b Builder) Logger(l *Logger) Builder {
	return b.with(WithLogger(l))
}

// LogLevel configures a text logger at the given level.
func (b Builder) LogLevel(level slog.Level) Builder {
	return b.with(WithLogLevel(level))
}

// Metrics configures a metrics collector.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	return b.with(WithMetricsCollector(mc))
}

// Build validates the configuration and creates the Mapper.
func (b Builder) Build() (*Mapper, error) {
	return New(b.opts...)
}
