package govfi

// ParallelSolver runs Value Function Iteration as a sequence of kernel
// launches on a device-style execution context: one work-item per grid
// point per sweep. Every work-item reads the shared previous value array
// and writes exactly one disjoint slot of the next array, so no locking is
// needed; the stream synchronization after each launch is the barrier
// between sweeps.
//
// The solver is stateless across Solve calls. Device buffers for the grid
// and the two value arrays are allocated on entry and freed before return;
// within one call they are reused sweep to sweep by swapping roles.
type ParallelSolver struct {
	// StopOnConvergence enables the opt-in early stop, see SequentialSolver
	StopOnConvergence bool

	// BlockSize is the number of work-items per block.
	// DefaultBlockSize when zero.
	BlockSize int

	// Context is the execution context to run on. The shared default
	// context when nil.
	Context *Context
}

// kernelParams is the per-task copy of the model parameters. Work-items
// receive it by value so a sweep never observes shared mutable state.
type kernelParams struct {
	alpha float64
	beta  float64
}

// bellmanKernel returns the per-work-item update of one sweep. Work-item i
// maximizes over next-period choices for grid point i, reading prev and
// writing only next[i].
func bellmanKernel(points, prev, next []float64, p kernelParams, n int) KernelFunc {
	params := ModelParameters{Alpha: p.alpha, Beta: p.beta}
	return func(tid ThreadID) error {
		i := tid.Global()
		if i >= n {
			return nil
		}
		v, err := bellmanMax(points, prev, i, params)
		if err != nil {
			return err
		}
		next[i] = v
		return nil
	}
}

// Solve runs MaxIterations Bellman sweeps, each as one kernel launch
// followed by a full barrier, and returns the final value function. The
// result matches SequentialSolver.Solve within floating-point tolerance for
// any number of worker threads.
func (s ParallelSolver) Solve(grid Grid, params ModelParameters) (ValueFunction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ctx := s.Context
	if ctx == nil {
		initRuntime()
		ctx = defaultContext
	}

	n := grid.Len()
	bytes := n * 8

	dGrid, err := ctx.Malloc(bytes)
	if err != nil {
		return nil, err
	}
	defer ctx.Free(dGrid)

	dPrev, err := ctx.Malloc(bytes)
	if err != nil {
		return nil, err
	}
	defer ctx.Free(dPrev)

	dNext, err := ctx.Malloc(bytes)
	if err != nil {
		return nil, err
	}
	defer ctx.Free(dNext)

	if err := ctx.Memcpy(dGrid, grid.points, bytes, MemcpyHostToDevice); err != nil {
		return nil, err
	}
	// All-ones initial guess, written on the device side
	if err := ctx.ForEach(dPrev, n, func(_ int, v *float64) error {
		*v = 1
		return nil
	}); err != nil {
		return nil, err
	}

	blockSize := s.BlockSize
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	launchGrid := Dim3{X: (n + blockSize - 1) / blockSize, Y: 1, Z: 1}
	launchBlock := Dim3{X: blockSize, Y: 1, Z: 1}

	points := dGrid.Float64()[:n]
	prev := dPrev.Float64()[:n]
	next := dNext.Float64()[:n]
	kp := kernelParams{alpha: params.Alpha, beta: params.Beta}

	for it := 0; it < params.MaxIterations; it++ {
		kernel := bellmanKernel(points, prev, next, kp, n)
		if err := ctx.LaunchFunc(kernel, launchGrid, launchBlock); err != nil {
			return nil, err
		}
		// Barrier: sweep k+1 must not read prev until every work-item of
		// sweep k has committed its write
		if err := ctx.Synchronize(); err != nil {
			return nil, err
		}

		converged := s.StopOnConvergence &&
			ValueFunction(next).MaxAbsDiff(ValueFunction(prev)) < params.Tolerance
		prev, next = next, prev
		if converged {
			break
		}
	}

	out := make(ValueFunction, n)
	if err := ctx.Memcpy(out, prev[:n:n], bytes, MemcpyDeviceToHost); err != nil {
		return nil, err
	}
	return out, nil
}
