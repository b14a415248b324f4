// Package cover builds overlapping hyperrectangular covers of a filter
// function's image and extracts per-cell level sets.
//
// A cover is the cartesian product of per-dimension interval lists: each
// dimension of the filter space is divided into equal-width base intervals
// which are then symmetrically expanded so that back-to-back cells overlap by
// exactly the configured percentage of their width. Construction is
// dimension-agnostic: the same odometer walk over multi-indices produces the
// cells for d = 1, 2, ..., n with no per-dimension branching.
//
// Level-set membership uses closed intervals in every dimension, so a point
// lying exactly on a shared boundary belongs to both cells. Cells whose level
// set is empty are dropped; that is expected, not an error.
package cover
