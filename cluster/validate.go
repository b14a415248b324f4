package cluster

import (
	"errors"
	"fmt"
)

// ErrNonPartition indicates a clustering result that is not an exact
// partition of its input.
var ErrNonPartition = errors.New("cluster: result is not a partition of the input")

// ValidatePartition verifies that clusters form an exact partition of
// members: no empty cluster, no index outside members, no duplicates, and
// full coverage. members must be sorted ascending.
func ValidatePartition(members []int, clusters [][]int) error {
	allowed := make(map[int]bool, len(members))
	for _, m := range members {
		allowed[m] = true
	}

	seen := make(map[int]bool, len(members))
	total := 0
	for ci, c := range clusters {
		if len(c) == 0 {
			return fmt.Errorf("%w: cluster %d is empty", ErrNonPartition, ci)
		}
		for _, m := range c {
			if !allowed[m] {
				return fmt.Errorf("%w: cluster %d contains foreign index %d", ErrNonPartition, ci, m)
			}
			if seen[m] {
				return fmt.Errorf("%w: index %d appears in more than one cluster", ErrNonPartition, m)
			}
			seen[m] = true
			total++
		}
	}
	if total != len(members) {
		return fmt.Errorf("%w: clusters cover %d of %d indices", ErrNonPartition, total, len(members))
	}
	return nil
}
