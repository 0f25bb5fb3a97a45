package govfi

// SequentialSolver runs Value Function Iteration on a single thread of
// control: one Bellman maximization per grid point, one grid point at a
// time. It is the correctness baseline for the parallel form.
type SequentialSolver struct {
	// StopOnConvergence stops sweeping once the L-infinity change between
	// consecutive value functions falls below params.Tolerance. The
	// reference loop runs exactly MaxIterations sweeps, so this is off by
	// default and changes observable behavior when enabled.
	StopOnConvergence bool
}

// Solve runs MaxIterations Bellman sweeps and returns the final value
// function. The input grid and every intermediate value array are treated
// as read-only during a sweep.
func (s SequentialSolver) Solve(grid Grid, params ModelParameters) (ValueFunction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := grid.Len()
	prev := NewInitialGuess(n)
	next := make(ValueFunction, n)

	for it := 0; it < params.MaxIterations; it++ {
		for i := 0; i < n; i++ {
			v, err := bellmanMax(grid.points, prev, i, params)
			if err != nil {
				return nil, err
			}
			next[i] = v
		}

		converged := s.StopOnConvergence && next.MaxAbsDiff(prev) < params.Tolerance
		prev, next = next, prev
		if converged {
			break
		}
	}

	return prev, nil
}
