package govfi

import (
	"math"
	"testing"
)

func TestFloat64NearEqual(t *testing.T) {
	tol := DefaultTolerance()

	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"Exact", 1.5, 1.5, true},
		{"Zero", 0, 0, true},
		{"SignedZero", 0, math.Copysign(0, -1), true},
		{"WithinRel", 1e6, 1e6 * (1 + 1e-12), true},
		{"OutsideRel", 1.0, 1.0001, false},
		{"WithinAbs", 1e-15, 2e-15, true},
		{"BothNegInf", math.Inf(-1), math.Inf(-1), true},
		{"BothPosInf", math.Inf(1), math.Inf(1), true},
		{"OppositeInf", math.Inf(1), math.Inf(-1), false},
		{"BothNaN", math.NaN(), math.NaN(), true},
		{"NaNVsNumber", math.NaN(), 1.0, false},
		{"OppositeSigns", 1.0, -1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float64NearEqual(tt.a, tt.b, tol); got != tt.want {
				t.Errorf("Float64NearEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFloat64ULPDiff(t *testing.T) {
	if got := Float64ULPDiff(1.0, 1.0); got != 0 {
		t.Errorf("ULP diff of equal values = %d", got)
	}

	next := math.Nextafter(1.0, 2.0)
	if got := Float64ULPDiff(1.0, next); got != 1 {
		t.Errorf("ULP diff to next representable = %d, want 1", got)
	}

	if got := Float64ULPDiff(1.0, -1.0); got != math.MaxInt32 {
		t.Errorf("ULP diff across signs = %d, want MaxInt32", got)
	}
	if got := Float64ULPDiff(math.NaN(), 1.0); got != math.MaxInt32 {
		t.Errorf("ULP diff with NaN = %d, want MaxInt32", got)
	}
}

func TestVerifyFloat64Array(t *testing.T) {
	expected := []float64{1, 2, 3, 4}

	result := VerifyFloat64Array(expected, []float64{1, 2, 3, 4}, StrictTolerance())
	if result.NumErrors != 0 {
		t.Errorf("Identical arrays reported %d errors", result.NumErrors)
	}

	actual := []float64{1, 2.5, 3, 4}
	result = VerifyFloat64Array(expected, actual, StrictTolerance())
	if result.NumErrors != 1 {
		t.Errorf("Expected 1 error, got %d", result.NumErrors)
	}
	if result.FirstError != 1 {
		t.Errorf("First error at %d, want 1", result.FirstError)
	}
	if result.IsAcceptable(StrictTolerance()) {
		t.Error("Result with a 0.5 absolute error should not be acceptable")
	}

	// Length mismatch counts everything as failed
	result = VerifyFloat64Array(expected, []float64{1, 2}, StrictTolerance())
	if result.NumErrors != len(expected) {
		t.Errorf("Length mismatch reported %d errors, want %d", result.NumErrors, len(expected))
	}
}

func TestNumericalParity(t *testing.T) {
	np := &NumericalParity{}
	np.CompareSlices(
		[]float64{1, 2, math.Inf(-1), 4},
		[]float64{1, 2, math.Inf(-1), 4.1},
	)

	if np.NumErrors != 1 {
		t.Errorf("Expected 1 error, got %d", np.NumErrors)
	}
	if math.Abs(np.MaxAbsError-0.1) > 1e-12 {
		t.Errorf("MaxAbsError = %v, want 0.1", np.MaxAbsError)
	}
}
