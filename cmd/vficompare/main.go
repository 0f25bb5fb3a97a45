// Command vficompare compares two vfibench timing logs: checksums within a
// numerical tolerance, durations against a performance regression
// threshold. Exits nonzero when any run fails numerically.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/giob1994/govfi"
)

type comparison struct {
	Name    string
	Status  string // "PASS", "FAIL", "SLOWER", "FASTER"
	Speedup float64
	Message string
}

func main() {
	var (
		baselineFile = flag.String("baseline", "baseline.json", "Baseline timing log")
		currentFile  = flag.String("current", "current.json", "Current timing log")
		tolerance    = flag.Float64("tol", 1e-6, "Checksum tolerance")
		perfRegress  = flag.Float64("perf-regress", 1.1, "Performance regression threshold (1.1 = 10% slower)")
	)
	flag.Parse()

	baseline, err := govfi.LoadTimingResults(*baselineFile)
	if err != nil {
		log.Fatalf("failed to load baseline: %v", err)
	}
	current, err := govfi.LoadTimingResults(*currentFile)
	if err != nil {
		log.Fatalf("failed to load current results: %v", err)
	}

	comparisons := compare(baseline, current, *tolerance, *perfRegress)
	printSummary(comparisons)

	for _, c := range comparisons {
		if c.Status == "FAIL" {
			os.Exit(1)
		}
	}
}

func compare(baseline, current []govfi.TimingResult, tolerance, perfRegress float64) []comparison {
	currentMap := make(map[string]govfi.TimingResult)
	for _, r := range current {
		currentMap[key(r)] = r
	}

	comparisons := make([]comparison, 0, len(baseline))
	for _, base := range baseline {
		c := comparison{Name: key(base)}

		curr, ok := currentMap[key(base)]
		if !ok {
			c.Status = "FAIL"
			c.Message = "run missing in current results"
			comparisons = append(comparisons, c)
			continue
		}

		c.Speedup = float64(base.Duration) / float64(curr.Duration)
		if diff := math.Abs(base.Checksum - curr.Checksum); diff > tolerance {
			c.Status = "FAIL"
			c.Message = fmt.Sprintf("checksum difference %e exceeds tolerance %e", diff, tolerance)
		} else if c.Speedup < 1.0/perfRegress {
			c.Status = "SLOWER"
			c.Message = fmt.Sprintf("performance regression: %.2fx slower", 1.0/c.Speedup)
		} else if c.Speedup > 1.2 {
			c.Status = "FASTER"
			c.Message = fmt.Sprintf("performance improvement: %.2fx faster", c.Speedup)
		} else {
			c.Status = "PASS"
		}

		comparisons = append(comparisons, c)
	}

	return comparisons
}

func key(r govfi.TimingResult) string {
	return fmt.Sprintf("%s/n=%d/iters=%d", r.Name, r.GridSize, r.Iterations)
}

func printSummary(comparisons []comparison) {
	statusCount := make(map[string]int)
	for _, c := range comparisons {
		statusCount[c.Status]++
	}

	fmt.Println("=== VFI timing comparison ===")
	fmt.Printf("Total runs: %d (PASS %d, FAIL %d, SLOWER %d, FASTER %d)\n\n",
		len(comparisons), statusCount["PASS"], statusCount["FAIL"],
		statusCount["SLOWER"], statusCount["FASTER"])

	for _, c := range comparisons {
		if c.Status == "PASS" {
			fmt.Printf("  PASS   %s (%.2fx)\n", c.Name, c.Speedup)
			continue
		}
		fmt.Printf("  %-6s %s: %s\n", c.Status, c.Name, c.Message)
	}
}
