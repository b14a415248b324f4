// Package testutil provides deterministic data generators for tests and
// benchmarks.
package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a normally distributed pseudo-random number.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// Intn returns a non-negative pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// NoisyCircle samples n points from a circle of the given radius centered at
// the origin, with gaussian coordinate noise of the given standard deviation.
func (r *RNG) NoisyCircle(n int, radius, noise float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * r.rand.Float64()
		points[i] = []float64{
			radius*math.Cos(theta) + noise*r.rand.NormFloat64(),
			radius*math.Sin(theta) + noise*r.rand.NormFloat64(),
		}
	}
	return points
}

// Blobs samples perCenter points around each center with gaussian spread.
// Points are emitted center by center, so the first perCenter indices belong
// to centers[0] and so on.
func (r *RNG) Blobs(centers [][]float64, perCenter int, spread float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float64, 0, len(centers)*perCenter)
	for _, c := range centers {
		for i := 0; i < perCenter; i++ {
			p := make([]float64, len(c))
			for k := range c {
				p[k] = c[k] + spread*r.rand.NormFloat64()
			}
			points = append(points, p)
		}
	}
	return points
}
