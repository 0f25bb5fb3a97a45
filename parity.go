package govfi

import (
	"fmt"
	"math"
)

// NumericalParity accumulates error statistics when comparing the parallel
// solver's output against the sequential baseline.
type NumericalParity struct {
	MaxAbsError float64
	MaxRelError float64
	MaxULPError int
	NumErrors   int
}

// Compare compares one pair of values and updates error statistics
func (np *NumericalParity) Compare(expected, actual float64) {
	// Slots infeasible in both runs agree exactly
	if math.IsInf(expected, -1) && math.IsInf(actual, -1) {
		return
	}

	absErr := math.Abs(expected - actual)
	if absErr > np.MaxAbsError {
		np.MaxAbsError = absErr
	}

	// Relative error (avoid division by zero)
	if expected != 0 {
		relErr := absErr / math.Abs(expected)
		if relErr > np.MaxRelError {
			np.MaxRelError = relErr
		}
	}

	ulpErr := Float64ULPDiff(expected, actual)
	if ulpErr > np.MaxULPError {
		np.MaxULPError = ulpErr
	}

	// Count errors above thresholds
	if absErr > 1e-12 || (expected != 0 && absErr/math.Abs(expected) > 1e-10) {
		np.NumErrors++
	}
}

// CompareSlices compares two slices element-wise
func (np *NumericalParity) CompareSlices(expected, actual []float64) {
	n := len(expected)
	if len(actual) < n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		np.Compare(expected[i], actual[i])
	}
}

// String summarizes the accumulated statistics
func (np *NumericalParity) String() string {
	return fmt.Sprintf("max abs err %.3e, max rel err %.3e, max ULP diff %d, %d over threshold",
		np.MaxAbsError, np.MaxRelError, np.MaxULPError, np.NumErrors)
}
