package approx

import (
	"context"

	"github.com/arlojanssen/communitypb/pbknapsack/exact"
)

// FPTAS approximates single-budget 0/1 knapsack within a (1-epsilon)
// factor of optimal by rescaling values down to a coarser grid and
// running exact min-cost DP on the rescaled instance: P = max(values),
// K = epsilon*P/n, v'_i = floor(v_i/K). K is raised to 1 when epsilon*P/n
// is smaller, so values are never scaled up. The rescaled DP runs in
// O(n^3 / epsilon) instead of being pseudo-polynomial in the true values.
func FPTAS(ctx context.Context, budget int, costs, values []int, epsilon float64) ([]int, int, error) {
	n := len(values)
	if n == 0 {
		return nil, 0, nil
	}

	maxValue := values[0]
	for _, v := range values[1:] {
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue == 0 {
		return nil, 0, nil
	}

	k := epsilon * float64(maxValue) / float64(n)
	if k < 1 {
		k = 1
	}

	rescaled := make([]int, n)
	for i, v := range values {
		rescaled[i] = int(float64(v) / k)
	}

	allocation, _, err := exact.DPMinCost(ctx, budget, costs, rescaled)
	if err != nil {
		return nil, 0, err
	}

	value := 0
	for _, idx := range allocation {
		value += values[idx]
	}
	return allocation, value, nil
}
