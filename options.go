package mapper

import (
	"log/slog"

	"github.com/hupe1980/mappergo/cluster"
	"github.com/hupe1980/mappergo/distance"
)

type options struct {
	intervals        []int
	overlap          []float64
	bins             int
	clusterer        cluster.Clusterer
	clustererName    string
	metric           distance.Metric
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Mapper construction.
type Option func(*options)

// WithIntervals sets the number of cover intervals per filter dimension.
// A single value broadcasts to every dimension; otherwise one value per
// dimension is required.
func WithIntervals(counts ...int) Option {
	return func(o *options) {
		o.intervals = counts
	}
}

// WithOverlapPercent sets the cover overlap percentage per filter dimension,
// each in [0, 100). A single value broadcasts to every dimension.
func WithOverlapPercent(percents ...float64) Option {
	return func(o *options) {
		o.overlap = percents
	}
}

// WithBins sets the histogram bin count for the default single-linkage
// clusterer.
func WithBins(bins int) Option {
	return func(o *options) {
		o.bins = bins
	}
}

// WithClusterer sets the clustering strategy. Takes precedence over
// WithClustererName.
func WithClusterer(c cluster.Clusterer) Option {
	return func(o *options) {
		o.clusterer = c
	}
}

// WithClustererName selects a builtin clustering strategy by name
// (see cluster.ByName).
func WithClustererName(name string) Option {
	return func(o *options) {
		o.clustererName = name
	}
}

// WithMetric sets the distance metric used when points are supplied as raw
// coordinates. Ignored for precomputed distance matrices.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithWorkers sets the number of parallel workers for per-cell clustering and
// edge testing. Values <= 0 use runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures structured logging for pipeline runs.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for pipeline runs.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		intervals:        []int{10},
		overlap:          []float64{10},
		bins:             10,
		metric:           distance.MetricEuclidean,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
