package govfi

import (
	"fmt"
)

// ModelParameters holds the economic and numerical parameters of one solve.
// The struct is passed by value into every solver and kernel task, so a
// running solve never observes caller-side mutation.
type ModelParameters struct {
	// Alpha is the capital productivity curvature, in (0, 1)
	Alpha float64

	// Beta is the discount factor, in (0, 1)
	Beta float64

	// MaxIterations is the fixed number of Bellman sweeps
	MaxIterations int

	// Tolerance is the convergence tolerance. The reference loop always
	// runs MaxIterations sweeps and ignores it; solvers consult it only
	// when StopOnConvergence is set.
	Tolerance float64
}

// DefaultParameters returns the reference scenario parameters
func DefaultParameters() ModelParameters {
	return ModelParameters{
		Alpha:         DefaultAlpha,
		Beta:          DefaultBeta,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultConvergenceTolerance,
	}
}

// Validate checks parameter ranges
func (p ModelParameters) Validate() error {
	if p.Alpha <= 0 || p.Alpha >= 1 {
		return NewInvalidArgError("ModelParameters",
			fmt.Sprintf("alpha must be in (0,1), got %g", p.Alpha))
	}
	if p.Beta <= 0 || p.Beta >= 1 {
		return NewInvalidArgError("ModelParameters",
			fmt.Sprintf("beta must be in (0,1), got %g", p.Beta))
	}
	if p.MaxIterations <= 0 {
		return NewInvalidArgError("ModelParameters",
			fmt.Sprintf("max iterations must be positive, got %d", p.MaxIterations))
	}
	if p.Tolerance <= 0 {
		return NewInvalidArgError("ModelParameters",
			fmt.Sprintf("tolerance must be positive, got %g", p.Tolerance))
	}
	return nil
}
