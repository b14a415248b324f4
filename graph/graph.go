package graph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrBadNodeIDs indicates node ids that are not 0..n-1 in ascending order.
	ErrBadNodeIDs = errors.New("graph: node ids must be 0..n-1 ascending")

	// ErrBadEdge indicates a self-loop, duplicate, reversed or out-of-range edge.
	ErrBadEdge = errors.New("graph: invalid edge")
)

// Graph is the immutable Mapper result: nodes, edges and derived adjacency.
type Graph struct {
	nodes []Node
	edges []Edge
	adj   [][]int
}

// New builds a graph from its node and edge lists.
//
// Node ids must be 0..n-1 in slice order. Edges must satisfy
// Source < Target, reference existing nodes, and contain no duplicates; they
// may arrive in any order and are sorted by (Source, Target).
func New(nodes []Node, edges []Edge) (*Graph, error) {
	for i, n := range nodes {
		if n.id != i {
			return nil, fmt.Errorf("%w: node at position %d has id %d", ErrBadNodeIDs, i, n.id)
		}
	}

	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Source != sorted[j].Source {
			return sorted[i].Source < sorted[j].Source
		}
		return sorted[i].Target < sorted[j].Target
	})

	adj := make([][]int, len(nodes))
	for i, e := range sorted {
		if e.Source >= e.Target {
			return nil, fmt.Errorf("%w: (%d,%d) is not source < target", ErrBadEdge, e.Source, e.Target)
		}
		if e.Source < 0 || e.Target >= len(nodes) {
			return nil, fmt.Errorf("%w: (%d,%d) references missing node", ErrBadEdge, e.Source, e.Target)
		}
		if i > 0 && sorted[i-1] == e {
			return nil, fmt.Errorf("%w: duplicate (%d,%d)", ErrBadEdge, e.Source, e.Target)
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	for _, neighbors := range adj {
		sort.Ints(neighbors)
	}

	return &Graph{nodes: nodes, edges: sorted, adj: adj}, nil
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Node returns the node with the given id.
func (g *Graph) Node(id int) Node { return g.nodes[id] }

// Nodes returns all nodes in ascending id order.
// The returned slice must not be mutated.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns all edges sorted by (Source, Target).
// The returned slice must not be mutated.
func (g *Graph) Edges() []Edge { return g.edges }

// Neighbors returns the ids adjacent to the given node, ascending.
// The returned slice must not be mutated.
func (g *Graph) Neighbors(id int) []int { return g.adj[id] }

// Degree returns the number of edges incident to the given node.
func (g *Graph) Degree(id int) int { return len(g.adj[id]) }

// HasEdge reports whether nodes i and j are connected, in either order.
func (g *Graph) HasEdge(i, j int) bool {
	if i == j {
		return false
	}
	neighbors := g.adj[i]
	k := sort.SearchInts(neighbors, j)
	return k < len(neighbors) && neighbors[k] == j
}

// AdjacencyMatrix returns a fresh symmetric 0/1 matrix with zero diagonal.
func (g *Graph) AdjacencyMatrix() [][]int {
	n := len(g.nodes)
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for _, e := range g.edges {
		m[e.Source][e.Target] = 1
		m[e.Target][e.Source] = 1
	}
	return m
}

// Memberships returns, indexed by node id, each node's member point indices.
func (g *Graph) Memberships() [][]int {
	out := make([][]int, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Members()
	}
	return out
}

// Legacy returns the backward-compatible result shape: the adjacency matrix
// plus a list, indexed by node id, of member point indices.
func (g *Graph) Legacy() (adjacency [][]int, memberships [][]int) {
	return g.AdjacencyMatrix(), g.Memberships()
}

// Components returns the connected components of the graph as slices of node
// ids, each ascending, ordered by smallest contained id. BFS from every
// unvisited node.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int
	for start := range g.nodes {
		if seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}
