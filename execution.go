package govfi

import (
	"runtime"
	"sync"
)

// launchInternal implements the core kernel execution logic
func (ctx *Context) launchInternal(
	kernelFunc func(ThreadID) error,
	grid, block Dim3,
	stream *Stream,
) error {
	gridSize := grid.Size()
	blockSize := block.Size()

	// Determine parallelism strategy
	numWorkers := runtime.NumCPU()
	if gridSize < numWorkers {
		numWorkers = gridSize
	}

	// Cache-aware scheduling: each worker processes a contiguous range of
	// blocks to maximize cache reuse
	blocksPerWorker := (gridSize + numWorkers - 1) / numWorkers

	// Submit work to stream
	stream.Submit(func() {
		var wg sync.WaitGroup
		wg.Add(numWorkers)

		for workerID := 0; workerID < numWorkers; workerID++ {
			startBlock := workerID * blocksPerWorker
			endBlock := startBlock + blocksPerWorker
			if endBlock > gridSize {
				endBlock = gridSize
			}

			go func(startBlock, endBlock int) {
				defer wg.Done()

				for blockID := startBlock; blockID < endBlock; blockID++ {
					blockIdx := linearTo3D(blockID, grid)

					// Execute all work-items in this block sequentially.
					// The block is the unit of scheduling; the items
					// inside it share the worker's cache.
					for threadID := 0; threadID < blockSize; threadID++ {
						tid := ThreadID{
							BlockIdx:  blockIdx,
							ThreadIdx: linearTo3D(threadID, block),
							BlockDim:  block,
							GridDim:   grid,
						}

						if err := kernelFunc(tid); err != nil {
							stream.setErr(err)
							return
						}
					}
				}
			}(startBlock, endBlock)
		}

		wg.Wait()
	})

	return nil
}

// linearTo3D converts a linear index to 3D coordinates
func linearTo3D(linear int, dim Dim3) Dim3 {
	x, y := dim.X, dim.Y
	if x == 0 {
		x = 1
	}
	if y == 0 {
		y = 1
	}
	z := linear / (x * y)
	rem := linear % (x * y)
	return Dim3{X: rem % x, Y: rem / x, Z: z}
}

// ForEach applies a function to each of n float64 elements in parallel and
// synchronizes before returning.
func (ctx *Context) ForEach(data DevicePtr, n int, fn func(idx int, val *float64) error) error {
	grid := Dim3{X: (n + DefaultBlockSize - 1) / DefaultBlockSize, Y: 1, Z: 1}
	block := Dim3{X: DefaultBlockSize, Y: 1, Z: 1}

	kernel := KernelFunc(func(tid ThreadID) error {
		idx := tid.Global()
		if idx >= n {
			return nil
		}
		slice := data.Float64()
		return fn(idx, &slice[idx])
	})

	if err := ctx.LaunchFunc(kernel, grid, block); err != nil {
		return err
	}
	return ctx.Synchronize()
}
