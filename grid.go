package govfi

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is an immutable, uniformly spaced discretization of the admissible
// capital stock. Points are strictly increasing with exact endpoints; the
// ascending order is a construction invariant that the solvers rely on for
// the monotone early exit of the Bellman scan.
type Grid struct {
	lower  float64
	upper  float64
	points []float64
}

// NewGrid builds a uniform grid of size points on [lower, upper].
//
// lower must be strictly positive: the feasibility term lower^alpha - lower
// degenerates at zero, and the reference scenarios all use positive bounds.
// Fails with an InvalidRange error on inconsistent bounds or size < 2.
func NewGrid(lower, upper float64, size int) (Grid, error) {
	if size < 2 {
		return Grid{}, NewInvalidRangeError("NewGrid",
			fmt.Sprintf("size must be at least 2, got %d", size))
	}
	if lower <= 0 {
		return Grid{}, NewInvalidRangeError("NewGrid",
			fmt.Sprintf("lower bound must be positive, got %g", lower))
	}
	if upper <= lower {
		return Grid{}, NewInvalidRangeError("NewGrid",
			fmt.Sprintf("upper bound %g must exceed lower bound %g", upper, lower))
	}

	points := make([]float64, size)
	floats.Span(points, lower, upper)
	// Endpoints are exact regardless of step rounding
	points[0] = lower
	points[size-1] = upper

	return Grid{
		lower:  lower,
		upper:  upper,
		points: points,
	}, nil
}

// Len returns the number of grid points
func (g Grid) Len() int {
	return len(g.points)
}

// Lower returns the smallest grid point
func (g Grid) Lower() float64 {
	return g.lower
}

// Upper returns the largest grid point
func (g Grid) Upper() float64 {
	return g.upper
}

// At returns the i-th grid point
func (g Grid) At(i int) float64 {
	return g.points[i]
}

// Step returns the uniform spacing between consecutive points
func (g Grid) Step() float64 {
	return (g.upper - g.lower) / float64(len(g.points)-1)
}

// Points returns a copy of the grid points. The grid itself stays immutable.
func (g Grid) Points() []float64 {
	out := make([]float64, len(g.points))
	copy(out, g.points)
	return out
}
