package cover

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// LevelSet pairs a surviving cover cell with the points whose filter
// coordinates fall inside it. Members is a roaring bitmap of point indices;
// a point may appear in several level sets when overlap > 0.
type LevelSet struct {
	Cell    Cell
	Members *roaring.Bitmap
}

// Size returns the number of member points.
func (ls LevelSet) Size() int {
	return int(ls.Members.GetCardinality())
}

// MemberSlice returns the member point indices in ascending order.
func (ls LevelSet) MemberSlice() []int {
	out := make([]int, 0, ls.Members.GetCardinality())
	it := ls.Members.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// LevelSets scans the filter space once per cell and returns the nonempty
// level sets in multi-index lexicographic order. Empty cells are dropped.
//
// filter must be the same matrix the cover was built from (n x Dim()).
func (c *Cover) LevelSets(filter [][]float64) []LevelSet {
	sets := make([]LevelSet, 0, len(c.cells))
	for _, cell := range c.cells {
		members := roaring.New()
		for i, coord := range filter {
			if cell.Contains(coord) {
				members.Add(uint32(i))
			}
		}
		if members.IsEmpty() {
			continue
		}
		sets = append(sets, LevelSet{Cell: cell, Members: members})
	}
	return sets
}
