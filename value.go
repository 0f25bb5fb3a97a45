package govfi

import (
	"math"
)

// ValueFunction holds one value per grid point, indexed 1:1 with the grid.
// Entries are finite or negative infinity (no feasible choice at that
// point); positive infinity and NaN never occur under valid inputs.
type ValueFunction []float64

// NewInitialGuess returns the all-ones starting value function used by the
// reference implementation.
func NewInitialGuess(n int) ValueFunction {
	v := make(ValueFunction, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// Len returns the number of entries
func (v ValueFunction) Len() int {
	return len(v)
}

// Clone returns an independent copy
func (v ValueFunction) Clone() ValueFunction {
	out := make(ValueFunction, len(v))
	copy(out, v)
	return out
}

// MaxAbsDiff returns the L-infinity distance to w. Slots that are negative
// infinity in both operands count as equal rather than NaN.
func (v ValueFunction) MaxAbsDiff(w ValueFunction) float64 {
	n := len(v)
	if len(w) < n {
		n = len(w)
	}
	max := 0.0
	for i := 0; i < n; i++ {
		if math.IsInf(v[i], -1) && math.IsInf(w[i], -1) {
			continue
		}
		if d := math.Abs(v[i] - w[i]); d > max {
			max = d
		}
	}
	return max
}

// Checksum returns the sum of all finite entries, a cheap fingerprint for
// run-to-run comparison in timing logs.
func (v ValueFunction) Checksum() float64 {
	sum := 0.0
	for _, x := range v {
		if !math.IsInf(x, 0) && !math.IsNaN(x) {
			sum += x
		}
	}
	return sum
}
