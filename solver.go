package govfi

import (
	"math"
)

// Solver is implemented by both execution strategies. The two strategies
// compute the same mathematical fixed point and must agree element-wise
// within floating-point tolerance for identical inputs.
type Solver interface {
	Solve(grid Grid, params ModelParameters) (ValueFunction, error)
}

// bellmanMax performs the per-grid-point maximization of one sweep: the best
// value over all feasible next-period capital choices j for current capital
// points[i], reading the previous sweep's values.
//
// The scan visits j in ascending order and stops at the first non-positive
// consumption. Consumption points[i]^alpha - points[j] is monotonically
// non-increasing in j because the grid is ascending, so the feasible set is
// a contiguous prefix and nothing past the first infeasible j can win.
//
// Returns negative infinity when no choice is feasible. A Domain error means
// the grid invariant was violated and the whole solve must abort.
func bellmanMax(points, prev []float64, i int, params ModelParameters) (float64, error) {
	resource := math.Pow(points[i], params.Alpha)
	best := math.Inf(-1)

	for j := 0; j < len(points); j++ {
		consumption := resource - points[j]
		if consumption <= 0 {
			break
		}
		utility := math.Log(consumption)
		if math.IsNaN(utility) {
			// Only reachable if resource is NaN or the ascending-grid
			// invariant was broken upstream.
			return 0, NewDomainError("bellmanMax",
				"log of non-positive consumption", map[string]interface{}{
					"i": i, "j": j, "consumption": consumption,
				})
		}
		if v := utility + params.Beta*prev[j]; v > best {
			best = v
		}
	}

	return best, nil
}
