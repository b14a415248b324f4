// Package distance supplies pairwise distances between point indices.
//
// A Provider answers Distance(i, j) for any two point indices, either from a
// caller-supplied precomputed matrix or lazily from raw coordinates with
// write-once memoization. Providers never mutate after construction and are
// safe for concurrent reads, which is what allows per-cell clustering to run
// on parallel workers.
//
// # Supported Metrics
//
//   - MetricEuclidean: L2 distance (default)
//   - MetricSquaredL2: squared L2 distance
//   - MetricManhattan: L1 distance
//   - MetricChebyshev: L-infinity distance
//   - MetricCosine: cosine distance (1 - cosine similarity)
package distance
