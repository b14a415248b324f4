// Package mapper computes Mapper graphs: topological summaries of a point
// cloud obtained by covering the image of a filter function with overlapping
// cells, clustering the points of each cell, and connecting clusters that
// share points.
//
// The pipeline is a one-shot batch computation over immutable inputs. A
// configured Mapper is reusable and safe for concurrent Map calls; the
// resulting Graph is immutable and owned by the caller.
//
// # Quick Start
//
//	m, err := mapper.New(
//	    mapper.WithIntervals(5),
//	    mapper.WithOverlapPercent(20),
//	    mapper.WithBins(10),
//	)
//	if err != nil {
//	    panic(err)
//	}
//
//	filter, _ := lens.Projection(points, 0) // 1-D filter: first coordinate
//	g, err := m.Map(ctx, mapper.Coordinates(points), filter)
//	if err != nil {
//	    panic(err)
//	}
//	adjacency, memberships := g.Legacy()
//
// Points can be supplied as raw coordinates or as a precomputed pairwise
// distance matrix; exactly one of the two. The filter is an n x d matrix with
// one row per point, d >= 1, and the cover construction runs the same code
// path for every d.
//
// # Custom Clustering
//
// Any implementation of cluster.Clusterer is a drop-in strategy:
//
//	m, err := mapper.New(mapper.WithClusterer(cluster.Func(myClustering)))
//
// A strategy must return an exact partition of its input; violations abort
// the run with a ClusteringContractError.
package mapper
