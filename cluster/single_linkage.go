package cluster

import (
	"fmt"
)

// SingleLinkage is the default clustering strategy: single-linkage
// hierarchical clustering with a histogram-gap cut-height heuristic.
//
// The induced pairwise-distance multiset of the level set is binned into
// Bins equal-width bins over the observed range. The cut height is the lower
// edge of the widest run of empty bins (ties prefer the smaller height);
// clusters are the connected components of the "distance <= cut" graph.
// If no bin is empty, the whole level set is one cluster.
type SingleLinkage struct {
	bins int
}

// NewSingleLinkage creates a single-linkage clusterer with the given
// histogram bin count.
func NewSingleLinkage(bins int) (*SingleLinkage, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBins, bins)
	}
	return &SingleLinkage{bins: bins}, nil
}

// Bins returns the configured histogram bin count.
func (s *SingleLinkage) Bins() int { return s.bins }

// Cluster partitions members into single-linkage clusters.
func (s *SingleLinkage) Cluster(members []int, dist DistanceFunc) ([][]int, error) {
	n := len(members)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		return [][]int{{members[0]}}, nil
	}

	dists := make([]float64, 0, n*(n-1)/2)
	minD, maxD := dist(members[0], members[1]), dist(members[0], members[1])
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist(members[i], members[j])
			dists = append(dists, d)
			if d < minD {
				minD = d
			}
			if d > maxD {
				maxD = d
			}
		}
	}

	cut := cutHeight(dists, minD, maxD, s.bins)
	return components(members, dist, cut), nil
}

// cutHeight picks the merge threshold: the lower edge of the widest run of
// empty histogram bins. Ties between equally wide runs resolve to the
// earlier run, i.e. the smaller height. With no empty bin (or a zero-range
// multiset) the cut sits at the maximum distance, keeping everything in one
// cluster.
func cutHeight(dists []float64, minD, maxD float64, bins int) float64 {
	if maxD == minD {
		return maxD
	}

	width := (maxD - minD) / float64(bins)
	counts := make([]int, bins)
	for _, d := range dists {
		b := int((d - minD) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	bestStart, bestLen := -1, 0
	run := 0
	for b := 0; b <= bins; b++ {
		if b < bins && counts[b] == 0 {
			run++
			continue
		}
		if run > bestLen {
			bestLen = run
			bestStart = b - run
		}
		run = 0
	}
	if bestStart < 0 {
		return maxD
	}
	return minD + width*float64(bestStart)
}

// components extracts connected components of the "dist <= cut" graph using
// union-find with path compression and union by rank. Components are ordered
// by their smallest member; members stay in ascending order.
func components(members []int, dist DistanceFunc, cut float64) [][]int {
	n := len(members)
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dist(members[i], members[j]) <= cut {
				union(i, j)
			}
		}
	}

	// Group positions by root, preserving ascending member order within and
	// first-appearance (smallest member) order across clusters.
	order := make([]int, 0, n)
	groups := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		r := find(i)
		if _, ok := groups[r]; !ok {
			order = append(order, r)
		}
		groups[r] = append(groups[r], members[i])
	}

	out := make([][]int, 0, len(order))
	for _, r := range order {
		out = append(out, groups[r])
	}
	return out
}
