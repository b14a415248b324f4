// Package graph holds the immutable result of a Mapper pipeline run.
//
// A Graph is built once from its node and edge lists and never mutated
// afterwards. Nodes carry their member point indices as roaring bitmaps
// (references into the original point set, never coordinate copies) plus a
// deterministic summary statistic. Edges are unordered pairs of node ids with
// no self-loops or duplicates; adjacency is derived once at construction.
//
// Because nodes from overlapping cover cells may share member points, nodes
// are not a partition of the point set. That is the Mapper algorithm working
// as intended.
package graph
