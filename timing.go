package govfi

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// TimingResult captures one timed solver run
type TimingResult struct {
	Name       string        `json:"name"`
	GridSize   int           `json:"grid_size"`
	Alpha      float64       `json:"alpha"`
	Beta       float64       `json:"beta"`
	Iterations int           `json:"iterations"`
	Duration   time.Duration `json:"duration"`
	Checksum   float64       `json:"checksum"`
	Timestamp  time.Time     `json:"timestamp"`
}

// TimingLog manages logging of timed runs to a JSON file
type TimingLog struct {
	mu      sync.Mutex
	path    string
	results []TimingResult
}

// NewTimingLog creates a log that persists to the given path
func NewTimingLog(path string) *TimingLog {
	return &TimingLog{path: path}
}

// Record appends a result and flushes to disk immediately so a crashed run
// keeps what it measured
func (l *TimingLog) Record(r TimingResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	r.Timestamp = time.Now()
	l.results = append(l.results, r)
	return l.flush()
}

// Results returns a copy of the recorded results
func (l *TimingLog) Results() []TimingResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]TimingResult, len(l.results))
	copy(out, l.results)
	return out
}

func (l *TimingLog) flush() error {
	data, err := json.MarshalIndent(l.results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0644)
}

// LoadTimingResults reads a previously written timing log
func LoadTimingResults(path string) ([]TimingResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var results []TimingResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// MeasureSolve times one solver run and packages the result for logging
func MeasureSolve(name string, solver Solver, grid Grid, params ModelParameters) (ValueFunction, TimingResult, error) {
	start := time.Now()
	v, err := solver.Solve(grid, params)
	elapsed := time.Since(start)
	if err != nil {
		return nil, TimingResult{}, err
	}

	return v, TimingResult{
		Name:       name,
		GridSize:   grid.Len(),
		Alpha:      params.Alpha,
		Beta:       params.Beta,
		Iterations: params.MaxIterations,
		Duration:   elapsed,
		Checksum:   v.Checksum(),
	}, nil
}
