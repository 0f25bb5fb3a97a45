// Package govfi configuration constants
package govfi

// Reference model scenario. These are the values used throughout the
// comparison scenarios and by DefaultParameters.
const (
	// DefaultLowerBound is the smallest admissible capital stock
	DefaultLowerBound = 0.001

	// DefaultUpperBound is the largest admissible capital stock
	DefaultUpperBound = 10.0

	// DefaultGridSize is the number of capital grid points
	DefaultGridSize = 1000

	// DefaultAlpha is the capital productivity curvature
	DefaultAlpha = 0.5

	// DefaultBeta is the discount factor
	DefaultBeta = 0.7

	// DefaultMaxIterations is the fixed sweep count of the reference loop
	DefaultMaxIterations = 100

	// DefaultConvergenceTolerance is the convergence tolerance carried
	// by ModelParameters (only consulted when early stopping is opted in)
	DefaultConvergenceTolerance = 1e-6
)

// Thread and block dimensions
const (
	// DefaultBlockSize is the default number of work-items per block
	DefaultBlockSize = 256

	// MaxWorkItemsPerBlock caps block dimensions on kernel launches
	MaxWorkItemsPerBlock = 1024
)

// Memory pool parameters
const (
	// MemoryAlignment for device allocations, one cache line
	MemoryAlignment = 64

	// defaultSystemMemory is assumed when the platform probe fails
	defaultSystemMemory = 16 << 30
)

// Display budget for the truncated array formatter
const (
	DefaultDisplayRows = 8
	DefaultDisplayCols = 8
)
