// Command vfibench runs the sequential and data-parallel VFI solvers on the
// same grid, prints the truncated value function, parity statistics, and a
// two-bar wall-clock comparison. Optionally appends the runs to a JSON
// timing log for later comparison with vficompare.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/giob1994/govfi"
)

func main() {
	var (
		lower     = flag.Float64("lower", govfi.DefaultLowerBound, "Lower capital bound")
		upper     = flag.Float64("upper", govfi.DefaultUpperBound, "Upper capital bound")
		size      = flag.Int("size", govfi.DefaultGridSize, "Number of grid points")
		alpha     = flag.Float64("alpha", govfi.DefaultAlpha, "Capital productivity curvature")
		beta      = flag.Float64("beta", govfi.DefaultBeta, "Discount factor")
		iters     = flag.Int("iters", govfi.DefaultMaxIterations, "Number of Bellman sweeps")
		tol       = flag.Float64("tol", govfi.DefaultConvergenceTolerance, "Convergence tolerance")
		earlyStop = flag.Bool("early-stop", false, "Stop sweeping on convergence (deviates from the fixed-count reference)")
		mode      = flag.String("mode", "both", "Which solver to run: seq, par or both")
		logFile   = flag.String("log", "", "Append results to this JSON timing log")
	)
	flag.Parse()

	grid, err := govfi.NewGrid(*lower, *upper, *size)
	if err != nil {
		log.Fatalf("grid construction failed: %v", err)
	}

	params := govfi.ModelParameters{
		Alpha:         *alpha,
		Beta:          *beta,
		MaxIterations: *iters,
		Tolerance:     *tol,
	}
	if err := params.Validate(); err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	device := govfi.GetDevice()
	fmt.Printf("govfi %s: VFI benchmark on %s, %d cores\n", govfi.Version(), device.Name, device.NumCores)
	fmt.Printf("Grid: [%g, %g] with %d points, alpha=%g beta=%g, %d sweeps\n\n",
		grid.Lower(), grid.Upper(), grid.Len(), params.Alpha, params.Beta, params.MaxIterations)

	var timingLog *govfi.TimingLog
	if *logFile != "" {
		timingLog = govfi.NewTimingLog(*logFile)
	}

	runSeq := *mode == "seq" || *mode == "both"
	runPar := *mode == "par" || *mode == "both"
	if !runSeq && !runPar {
		log.Fatalf("unknown mode %q, want seq, par or both", *mode)
	}

	var (
		seqResult, parResult govfi.TimingResult
		seqValues, parValues govfi.ValueFunction
	)

	if runSeq {
		solver := govfi.SequentialSolver{StopOnConvergence: *earlyStop}
		seqValues, seqResult, err = govfi.MeasureSolve("sequential", solver, grid, params)
		if err != nil {
			log.Fatalf("sequential solve failed: %v", err)
		}
		report(seqResult, seqValues, timingLog)
	}

	if runPar {
		solver := govfi.ParallelSolver{StopOnConvergence: *earlyStop}
		parValues, parResult, err = govfi.MeasureSolve("parallel", solver, grid, params)
		if err != nil {
			// No silent fallback to the sequential form: report and halt
			log.Printf("parallel solve failed: %v", err)
			os.Exit(1)
		}
		report(parResult, parValues, timingLog)
	}

	if runSeq && runPar {
		parity := &govfi.NumericalParity{}
		parity.CompareSlices(seqValues, parValues)
		fmt.Printf("Parity: %s\n\n", parity)

		printBars(seqResult, parResult)
	}
}

func report(r govfi.TimingResult, v govfi.ValueFunction, timingLog *govfi.TimingLog) {
	fmt.Printf("%s: %.2f ms (checksum %.6f)\n", r.Name, r.Duration.Seconds()*1000, r.Checksum)
	fmt.Println(govfi.NewFormatter().Vector(v))
	fmt.Println()

	if timingLog != nil {
		if err := timingLog.Record(r); err != nil {
			log.Printf("failed to record timing: %v", err)
		}
	}
}

// printBars renders the two-bar duration comparison
func printBars(seq, par govfi.TimingResult) {
	const width = 40
	max := seq.Duration
	if par.Duration > max {
		max = par.Duration
	}
	if max <= 0 {
		return
	}

	seqBar := int(float64(width) * float64(seq.Duration) / float64(max))
	parBar := int(float64(width) * float64(par.Duration) / float64(max))
	if seqBar < 1 {
		seqBar = 1
	}
	if parBar < 1 {
		parBar = 1
	}

	fmt.Printf("sequential  %-*s %8.2f ms\n", width, strings.Repeat("#", seqBar), seq.Duration.Seconds()*1000)
	fmt.Printf("parallel    %-*s %8.2f ms  (%.2fx speedup)\n", width, strings.Repeat("#", parBar),
		par.Duration.Seconds()*1000, float64(seq.Duration)/float64(par.Duration))
}
