package govfi

import (
	"math"
	"testing"
)

func TestGridInvariants(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper float64
		size         int
	}{
		{"Minimal", 0.001, 10, 2},
		{"Small", 0.5, 2.5, 11},
		{"Reference", 0.001, 10, 1000},
		{"TightRange", 1, 1.001, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(tt.lower, tt.upper, tt.size)
			if err != nil {
				t.Fatalf("NewGrid(%g, %g, %d) failed: %v", tt.lower, tt.upper, tt.size, err)
			}

			if grid.Len() != tt.size {
				t.Errorf("Expected %d points, got %d", tt.size, grid.Len())
			}
			if grid.At(0) != tt.lower {
				t.Errorf("First point %g, want exactly %g", grid.At(0), tt.lower)
			}
			if grid.At(tt.size-1) != tt.upper {
				t.Errorf("Last point %g, want exactly %g", grid.At(tt.size-1), tt.upper)
			}

			// Strictly increasing with uniform spacing
			step := grid.Step()
			for i := 1; i < grid.Len(); i++ {
				gap := grid.At(i) - grid.At(i-1)
				if gap <= 0 {
					t.Fatalf("Points not strictly increasing at %d: %g -> %g", i, grid.At(i-1), grid.At(i))
				}
				if math.Abs(gap-step) > 1e-12*math.Max(1, math.Abs(step)) {
					t.Errorf("Non-uniform spacing at %d: gap %g, step %g", i, gap, step)
				}
			}
		})
	}
}

func TestGridErrors(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper float64
		size         int
	}{
		{"SwappedBounds", 5, 1, 10},
		{"EqualBounds", 2, 2, 10},
		{"SizeOne", 0.001, 10, 1},
		{"SizeZero", 0.001, 10, 0},
		{"NegativeSize", 0.001, 10, -3},
		// Zero lower bound is rejected: the feasibility term degenerates
		{"ZeroLower", 0, 1, 10},
		{"NegativeLower", -1, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.lower, tt.upper, tt.size)
			if err == nil {
				t.Fatalf("NewGrid(%g, %g, %d) should have failed", tt.lower, tt.upper, tt.size)
			}
			if !IsInvalidRangeError(err) {
				t.Errorf("Expected InvalidRange error, got %v", err)
			}
		})
	}
}

func TestGridPointsImmutable(t *testing.T) {
	grid, err := NewGrid(0.001, 10, 8)
	if err != nil {
		t.Fatal(err)
	}

	pts := grid.Points()
	pts[0] = 42

	if grid.At(0) != 0.001 {
		t.Errorf("Mutating the Points copy changed the grid: %g", grid.At(0))
	}
}
