package cover

import "errors"

var (
	// ErrNoPoints indicates an empty filter space.
	ErrNoPoints = errors.New("cover: filter space has no points")

	// ErrRaggedFilter indicates filter rows of differing dimensionality.
	ErrRaggedFilter = errors.New("cover: filter rows have differing dimensionality")

	// ErrInvalidIntervals indicates a non-positive interval count.
	ErrInvalidIntervals = errors.New("cover: interval count must be positive")

	// ErrInvalidOverlap indicates an overlap percentage outside [0, 100).
	ErrInvalidOverlap = errors.New("cover: overlap percentage must be in [0, 100)")

	// ErrDimensionMismatch indicates interval/overlap vectors whose length
	// differs from the filter dimensionality.
	ErrDimensionMismatch = errors.New("cover: parameter length does not match filter dimensionality")
)
