package approx

import (
	"context"
	"sort"

	"github.com/arlojanssen/communitypb/internal/pbcancel"
)

// multiBBEngine mirrors the exact package's single-dimension bbEngine,
// generalized to a vector of budgets. Its bound is heuristic (not a true
// LP relaxation), so the result is not guaranteed optimal.
type multiBBEngine struct {
	n       int
	d       int
	budgets []int
	costs   [][]int
	values  []int
	order   []int

	cancel *pbcancel.Canceller

	bestValue      int
	bestAllocation []int
}

// fractionalBound walks ranked projects from `from`, taking whole ones
// while every dimension fits within `remaining`; for the first project
// that does not fit, the fractional share taken is the minimum across
// dimensions of remaining_k / cost_k (the tightest dimension governs).
func (e *multiBBEngine) fractionalBound(from int, remaining []int) float64 {
	remaining = append([]int(nil), remaining...)
	bound := 0.0

	for i := from; i < e.n; i++ {
		idx := e.order[i]

		fits := true
		for k := 0; k < e.d; k++ {
			if e.costs[k][idx] > remaining[k] {
				fits = false
				break
			}
		}
		if fits {
			for k := 0; k < e.d; k++ {
				remaining[k] -= e.costs[k][idx]
			}
			bound += float64(e.values[idx])
			continue
		}

		share := 1.0
		anyPositiveCost := false
		for k := 0; k < e.d; k++ {
			if e.costs[k][idx] == 0 {
				continue
			}
			anyPositiveCost = true
			ratio := float64(remaining[k]) / float64(e.costs[k][idx])
			if ratio < share {
				share = ratio
			}
		}
		if anyPositiveCost && share > 0 {
			bound += share * float64(e.values[idx])
		}
		break
	}
	return bound
}

func (e *multiBBEngine) dfs(depth, value int, cost []int, allocation []int) bool {
	if e.cancel.Tick() {
		return false
	}

	bound := float64(value) + e.fractionalBound(depth, subtract(e.budgets, cost))
	if bound <= float64(e.bestValue) {
		return true
	}

	if value > e.bestValue {
		e.bestValue = value
		e.bestAllocation = append([]int(nil), allocation...)
	}

	if depth == e.n {
		return true
	}

	idx := e.order[depth]

	fits := true
	for k := 0; k < e.d; k++ {
		if cost[k]+e.costs[k][idx] > e.budgets[k] {
			fits = false
			break
		}
	}
	if fits {
		nextCost := append([]int(nil), cost...)
		for k := 0; k < e.d; k++ {
			nextCost[k] += e.costs[k][idx]
		}
		if !e.dfs(depth+1, value+e.values[idx], nextCost, append(allocation, idx)) {
			return false
		}
	}

	return e.dfs(depth+1, value, cost, allocation)
}

func subtract(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// MultiBranchAndBound approximates multi-budget 0/1 knapsack via
// branch-and-bound: projects are pre-sorted by value divided by the sum
// of per-dimension costs, and the search is pruned by a heuristic
// multi-dimensional fractional-relaxation bound. Unlike the single-budget
// variant, this bound is not a true LP relaxation, so the result is not
// guaranteed optimal.
func MultiBranchAndBound(ctx context.Context, budgets []int, costs [][]int, values []int) ([]int, int, error) {
	n := len(values)
	d := len(budgets)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		ri := ratioKey(order[i], costs, values)
		rj := ratioKey(order[j], costs, values)
		if ri == rj {
			return order[i] < order[j]
		}
		return ri > rj
	})

	e := &multiBBEngine{
		n:       n,
		d:       d,
		budgets: budgets,
		costs:   costs,
		values:  values,
		order:   order,
		cancel:  pbcancel.New(ctx),
	}

	if !e.dfs(0, 0, make([]int, d), nil) {
		return nil, 0, ctx.Err()
	}

	allocation := append([]int(nil), e.bestAllocation...)
	sort.Ints(allocation)
	return allocation, e.bestValue, nil
}

func ratioKey(idx int, costs [][]int, values []int) float64 {
	total := 0
	for k := range costs {
		total += costs[k][idx]
	}
	return float64(values[idx]) / float64(total)
}
