package mapper

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/mappergo/cluster"
	"github.com/hupe1980/mappergo/cover"
	"github.com/hupe1980/mappergo/distance"
	"github.com/hupe1980/mappergo/graph"
)

// Mapper is a configured, reusable Mapper pipeline. It holds configuration
// only; every Map call is an independent run over immutable inputs, so a
// Mapper is safe for concurrent use.
type Mapper struct {
	intervals []int
	overlap   []float64
	clusterer cluster.Clusterer
	metric    distance.Metric
	workers   int
	logger    *Logger
	metrics   MetricsCollector
}

// New creates a Mapper from the given options. Static configuration is
// validated here, before any data is seen; input-dependent validation happens
// at the start of Map.
func New(optFns ...Option) (*Mapper, error) {
	o := applyOptions(optFns)

	for k, v := range o.intervals {
		if v <= 0 {
			return nil, configErr("num_intervals", fmt.Sprintf("entry %d is %d, must be positive", k, v))
		}
	}
	for k, v := range o.overlap {
		if v < 0 || v >= 100 {
			return nil, configErr("percent_overlap", fmt.Sprintf("entry %d is %g, must be in [0, 100)", k, v))
		}
	}
	if o.bins <= 0 {
		return nil, configErr("num_bins_when_clustering", fmt.Sprintf("%d, must be positive", o.bins))
	}

	clusterer := o.clusterer
	if clusterer == nil {
		name := o.clustererName
		if name == "" {
			name = "single-linkage"
		}
		var err error
		clusterer, err = cluster.ByName(name, o.bins)
		if err != nil {
			return nil, translateError(err)
		}
	}

	return &Mapper{
		intervals: o.intervals,
		overlap:   o.overlap,
		clusterer: clusterer,
		metric:    o.metric,
		workers:   o.workers,
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}, nil
}

// Map runs the pipeline: build the cover of the filter image, extract level
// sets, cluster each level set, materialize nodes and connect those that
// share points. The returned graph is immutable and fully owned by the
// caller.
//
// input supplies the points (coordinates or distance matrix); filter is the
// n x d FilterSpace, one row per point, d >= 1. Cancelling ctx discards the
// run; a partial graph is never returned.
func (m *Mapper) Map(ctx context.Context, input Input, filter [][]float64) (*graph.Graph, error) {
	start := time.Now()

	g, stats, err := m.run(ctx, input, filter)
	stats.Duration = time.Since(start)

	m.metrics.RecordRun(stats, err)
	m.logger.LogRun(ctx, stats, err)
	return g, err
}

func (m *Mapper) run(ctx context.Context, input Input, filter [][]float64) (*graph.Graph, RunStats, error) {
	var stats RunStats

	provider, err := input.provider(m.metric)
	if err != nil {
		return nil, stats, err
	}
	n := provider.Len()
	stats.Points = n

	dim, err := validateFilter(filter, n)
	if err != nil {
		return nil, stats, err
	}
	intervals, err := broadcastInts(m.intervals, dim, "num_intervals")
	if err != nil {
		return nil, stats, err
	}
	overlap, err := broadcastFloats(m.overlap, dim, "percent_overlap")
	if err != nil {
		return nil, stats, err
	}
	m.warnZeroRange(ctx, filter, dim)

	cov, err := cover.Build(filter, intervals, overlap)
	if err != nil {
		return nil, stats, translateError(err)
	}
	stats.Cells = cov.NumCells()

	levelSets := cov.LevelSets(filter)
	stats.LevelSets = len(levelSets)
	for _, ls := range levelSets {
		if ls.Size() == 1 {
			m.logger.LogDegenerate(ctx, "level set of size 1", "cell", ls.Cell.Index.String())
		}
	}

	partitions, err := m.clusterLevelSets(ctx, levelSets, provider)
	if err != nil {
		return nil, stats, err
	}

	nodes := buildNodes(levelSets, partitions, filter, dim)
	stats.Nodes = len(nodes)

	edges, err := m.buildEdges(ctx, nodes, cov.Reach())
	if err != nil {
		return nil, stats, err
	}
	stats.Edges = len(edges)

	g, err := graph.New(nodes, edges)
	if err != nil {
		return nil, stats, err
	}
	return g, stats, nil
}

// clusterLevelSets runs the clustering strategy on every level set in
// parallel. Results land in a slice indexed by level-set position, so worker
// completion order never influences node enumeration.
func (m *Mapper) clusterLevelSets(ctx context.Context, levelSets []cover.LevelSet, provider distance.Provider) ([][][]int, error) {
	dist := cluster.DistanceFunc(provider.Distance)
	partitions := make([][][]int, len(levelSets))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(m.workerLimit())
	for ci := range levelSets {
		ci := ci
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			ls := levelSets[ci]
			members := ls.MemberSlice()

			clusters, err := m.clusterer.Cluster(members, dist)
			if err != nil {
				return &ClusteringContractError{
					Cell:   ls.Cell.Index.String(),
					Reason: "clusterer failed",
					cause:  err,
				}
			}
			if err := cluster.ValidatePartition(members, clusters); err != nil {
				return &ClusteringContractError{
					Cell:   ls.Cell.Index.String(),
					Reason: "result is not a partition",
					cause:  err,
				}
			}
			partitions[ci] = clusters
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return partitions, nil
}

// buildNodes materializes one node per (cell, cluster) pair in fixed
// enumeration order: cells in multi-index lexicographic order, clusters in
// clusterer order. Ids increase monotonically.
func buildNodes(levelSets []cover.LevelSet, partitions [][][]int, filter [][]float64, dim int) []graph.Node {
	var nodes []graph.Node
	for ci, ls := range levelSets {
		for _, members := range partitions[ci] {
			bm := roaring.New()
			mean := make([]float64, dim)
			for _, p := range members {
				bm.Add(uint32(p))
				for k := 0; k < dim; k++ {
					mean[k] += filter[p][k]
				}
			}
			for k := range mean {
				mean[k] /= float64(len(members))
			}
			nodes = append(nodes, graph.NewNode(len(nodes), ls.Cell.Index, bm, mean))
		}
	}
	return nodes
}

// buildEdges tests candidate node pairs for shared members. Candidates are
// pruned to nodes whose cells lie within the cover's per-dimension reach
// (overlap above 50% makes cells intersect beyond their direct neighbors);
// pairs are iterated with ascending ids. Work is partitioned by source-node
// ranges and the per-range results concatenated in order, keeping the edge
// list reproducible.
func (m *Mapper) buildEdges(ctx context.Context, nodes []graph.Node, reach []int) ([]graph.Edge, error) {
	numNodes := len(nodes)
	workers := m.workerLimit()
	if workers > numNodes {
		workers = numNodes
	}
	if workers == 0 {
		return nil, nil
	}

	chunks := make([][]graph.Edge, workers)
	chunkSize := (numNodes + workers - 1) / workers

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunkSize
		hi := min(lo+chunkSize, numNodes)
		eg.Go(func() error {
			var local []graph.Edge
			for i := lo; i < hi; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				for j := i + 1; j < numNodes; j++ {
					if !nodes[i].Cell().WithinReach(nodes[j].Cell(), reach) {
						continue
					}
					if nodes[i].Intersects(nodes[j]) {
						local = append(local, graph.Edge{Source: i, Target: j})
					}
				}
			}
			chunks[w] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var edges []graph.Edge
	for _, c := range chunks {
		edges = append(edges, c...)
	}
	return edges, nil
}

func (m *Mapper) workerLimit() int {
	if m.workers > 0 {
		return m.workers
	}
	return runtime.GOMAXPROCS(0)
}

// warnZeroRange logs a degenerate-input warning for every constant filter
// dimension. The cover still handles these (single minimal-width interval).
func (m *Mapper) warnZeroRange(ctx context.Context, filter [][]float64, dim int) {
	for k := 0; k < dim; k++ {
		lo, hi := filter[0][k], filter[0][k]
		for _, row := range filter[1:] {
			if row[k] < lo {
				lo = row[k]
			}
			if row[k] > hi {
				hi = row[k]
			}
		}
		if lo == hi {
			m.logger.LogDegenerate(ctx, "filter dimension has zero range", "dimension", k, "value", lo)
		}
	}
}

func validateFilter(filter [][]float64, n int) (int, error) {
	if len(filter) == 0 {
		return 0, configErr("filter", "filter space is empty")
	}
	if len(filter) != n {
		return 0, configErr("filter", fmt.Sprintf("filter has %d rows for %d points", len(filter), n))
	}
	dim := len(filter[0])
	if dim == 0 {
		return 0, configErr("filter", "filter dimensionality is zero")
	}
	for i, row := range filter {
		if len(row) != dim {
			return 0, configErr("filter", fmt.Sprintf("row %d has dimension %d, want %d", i, len(row), dim))
		}
	}
	return dim, nil
}

func broadcastInts(vals []int, dim int, field string) ([]int, error) {
	switch len(vals) {
	case dim:
		return vals, nil
	case 1:
		out := make([]int, dim)
		for k := range out {
			out[k] = vals[0]
		}
		return out, nil
	default:
		return nil, configErr(field, fmt.Sprintf("got %d values for filter dimension %d", len(vals), dim))
	}
}

func broadcastFloats(vals []float64, dim int, field string) ([]float64, error) {
	switch len(vals) {
	case dim:
		return vals, nil
	case 1:
		out := make([]float64, dim)
		for k := range out {
			out[k] = vals[0]
		}
		return out, nil
	default:
		return nil, configErr(field, fmt.Sprintf("got %d values for filter dimension %d", len(vals), dim))
	}
}
