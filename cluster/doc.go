// Package cluster defines the pluggable clustering seam of the Mapper
// pipeline and its builtin strategies.
//
// A Clusterer partitions a level set's point indices into disjoint nonempty
// clusters using only a pairwise distance accessor. Any implementation of the
// interface is a drop-in replacement; plain functions can be adapted via
// Func. The default builtin is single-linkage hierarchical clustering with a
// histogram-gap cut-height heuristic.
//
// A clusterer that returns something other than an exact partition of its
// input violates the contract; the pipeline aborts rather than repairing the
// result, because a repaired partition could silently change the graph.
package cluster
