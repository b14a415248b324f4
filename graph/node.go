package graph

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/mappergo/cover"
)

// Node is one cluster of points within one level set.
type Node struct {
	id      int
	cell    cover.MultiIndex
	members *roaring.Bitmap
	mean    []float64
}

// NewNode creates a node. The bitmap and mean are owned by the node after
// construction; callers must not mutate them.
func NewNode(id int, cell cover.MultiIndex, members *roaring.Bitmap, mean []float64) Node {
	return Node{id: id, cell: cell, members: members, mean: mean}
}

// ID returns the node's stable id.
func (n Node) ID() int { return n.id }

// Cell returns the multi-index of the cover cell the node originated from.
func (n Node) Cell() cover.MultiIndex { return n.cell }

// Size returns the number of member points.
func (n Node) Size() int { return int(n.members.GetCardinality()) }

// Members returns the member point indices in ascending order.
func (n Node) Members() []int {
	out := make([]int, 0, n.members.GetCardinality())
	it := n.members.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Contains reports whether point p is a member of the node.
func (n Node) Contains(p int) bool { return n.members.Contains(uint32(p)) }

// Intersects reports whether two nodes share at least one member point.
func (n Node) Intersects(o Node) bool { return n.members.Intersects(o.members) }

// Mean returns the mean filter coordinate of the node's members.
func (n Node) Mean() []float64 {
	out := make([]float64, len(n.mean))
	copy(out, n.mean)
	return out
}

// Edge is an unordered pair of node ids with Source < Target.
type Edge struct {
	Source int `json:"source"`
	Target int `json:"target"`
}
