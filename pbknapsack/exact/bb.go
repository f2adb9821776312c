package exact

import (
	"context"
	"sort"

	"github.com/arlojanssen/communitypb/internal/pbcancel"
)

// bbEngine holds the search state for branch-and-bound, kept as an
// explicit struct (rather than closures) so the hot dfs path has
// predictable, inspectable state.
type bbEngine struct {
	n      int
	budget int
	costs  []int
	values []int

	// order lists project indices sorted by value/cost descending; the
	// search branches on rank, not raw project index.
	order []int

	cancel *pbcancel.Canceller

	bestValue      int
	bestAllocation []int
}

// fractionalBound computes the greedy fractional-relaxation upper bound
// for the sub-problem starting at rank `from` with `remaining` capacity:
// walk ranked projects taking whole ones while they fit, then add a
// fractional piece of the first one that does not.
func (e *bbEngine) fractionalBound(from, remaining int) float64 {
	bound := 0.0
	cap := remaining
	for i := from; i < e.n; i++ {
		idx := e.order[i]
		if e.costs[idx] <= cap {
			cap -= e.costs[idx]
			bound += float64(e.values[idx])
			continue
		}
		if cap > 0 {
			bound += float64(cap) / float64(e.costs[idx]) * float64(e.values[idx])
		}
		break
	}
	return bound
}

// dfs explores rank `depth` onward. allocation holds the included project
// indices (input order, not rank order) chosen so far.
func (e *bbEngine) dfs(depth, value, cost int, allocation []int) bool {
	if e.cancel.Tick() {
		return false
	}

	bound := float64(value) + e.fractionalBound(depth, e.budget-cost)
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

	// Include child: may become the new incumbent.
	if cost+e.costs[idx] <= e.budget {
		if !e.dfs(depth+1, value+e.values[idx], cost+e.costs[idx], append(allocation, idx)) {
			return false
		}
	}

	// Exclude child.
	return e.dfs(depth+1, value, cost, allocation)
}

// BranchAndBound solves single-budget 0/1 knapsack exactly via
// branch-and-bound: a depth-first search over the binary decision tree
// (projects pre-sorted by value/cost descending), pruned by a greedy
// fractional-relaxation upper bound. Worst-case exponential, but typically
// far faster than brute force once the bound is tight.
func BranchAndBound(ctx context.Context, budget int, costs, values []int) ([]int, int, error) {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		ri := float64(values[order[i]]) / float64(costs[order[i]])
		rj := float64(values[order[j]]) / float64(costs[order[j]])
		if ri == rj {
			return order[i] < order[j]
		}
		return ri > rj
	})

	e := &bbEngine{
		n:      n,
		budget: budget,
		costs:  costs,
		values: values,
		order:  order,
		cancel: pbcancel.New(ctx),
	}

	if !e.dfs(0, 0, 0, nil) {
		return nil, 0, ctx.Err()
	}

	allocation := append([]int(nil), e.bestAllocation...)
	sort.Ints(allocation)
	return allocation, e.bestValue, nil
}
