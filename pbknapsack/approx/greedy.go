package approx

import (
	"context"
	"sort"

	"github.com/arlojanssen/communitypb/internal/pbcancel"
)

// greedyPick walks project indices in the order given, including each one
// that still fits the remaining budget, stopping once the budget is
// exhausted. Shared by Greedy and RatioGreedy; only the ranking differs.
func greedyPick(ctx context.Context, budget int, costs []int, order []int) ([]int, error) {
	var allocation []int
	c := pbcancel.New(ctx)

	for _, idx := range order {
		if c.Tick() {
			return nil, ctx.Err()
		}
		if budget == 0 {
			break
		}
		if costs[idx] > budget {
			continue
		}
		allocation = append(allocation, idx)
		budget -= costs[idx]
	}

	return allocation, nil
}

// Greedy ranks projects by raw value descending and includes each one that
// still fits, skipping ones that don't. O(n log n).
func Greedy(ctx context.Context, budget int, costs, values []int) ([]int, int, error) {
	order := rankByKey(values, func(i int) float64 { return float64(values[i]) })
	allocation, err := greedyPick(ctx, budget, costs, order)
	if err != nil {
		return nil, 0, err
	}
	return finalize(allocation, values)
}

// RatioGreedy ranks projects by value/cost ratio descending; typically
// dominates Greedy in practice despite sharing its worst-case bound.
func RatioGreedy(ctx context.Context, budget int, costs, values []int) ([]int, int, error) {
	order := rankByKey(values, func(i int) float64 { return float64(values[i]) / float64(costs[i]) })
	allocation, err := greedyPick(ctx, budget, costs, order)
	if err != nil {
		return nil, 0, err
	}
	return finalize(allocation, values)
}

// rankByKey returns project indices 0..n-1 sorted descending by key(i),
// ties broken by ascending index for determinism.
func rankByKey(values []int, key func(i int) float64) []int {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		ki, kj := key(order[i]), key(order[j])
		if ki == kj {
			return order[i] < order[j]
		}
		return ki > kj
	})
	return order
}

func finalize(allocation []int, values []int) ([]int, int, error) {
	sort.Ints(allocation)
	value := 0
	for _, idx := range allocation {
		value += values[idx]
	}
	return allocation, value, nil
}

// multiGreedyPick is greedyPick's multi-dimension counterpart: an item is
// skipped unless it fits every remaining budget dimension.
func multiGreedyPick(ctx context.Context, budgets []int, costs [][]int, order []int) ([]int, error) {
	d := len(budgets)
	remaining := append([]int(nil), budgets...)
	var allocation []int
	c := pbcancel.New(ctx)

	for _, idx := range order {
		if c.Tick() {
			return nil, ctx.Err()
		}

		exhausted := false
		for k := 0; k < d; k++ {
			if remaining[k] == 0 {
				exhausted = true
				break
			}
		}
		if exhausted {
			break
		}

		fits := true
		for k := 0; k < d; k++ {
			if costs[k][idx] > remaining[k] {
				fits = false
				break
			}
		}
		if !fits {
			continue
		}

		allocation = append(allocation, idx)
		for k := 0; k < d; k++ {
			remaining[k] -= costs[k][idx]
		}
	}

	return allocation, nil
}

// MultiGreedy ranks projects by raw value descending.
func MultiGreedy(ctx context.Context, budgets []int, costs [][]int, values []int) ([]int, int, error) {
	order := rankByKey(values, func(i int) float64 { return float64(values[i]) })
	allocation, err := multiGreedyPick(ctx, budgets, costs, order)
	if err != nil {
		return nil, 0, err
	}
	return finalize(allocation, values)
}

// MultiRatioGreedy ranks projects by value divided by the sum of its costs
// across every budget dimension.
func MultiRatioGreedy(ctx context.Context, budgets []int, costs [][]int, values []int) ([]int, int, error) {
	order := rankByKey(values, func(i int) float64 {
		total := 0
		for k := range budgets {
			total += costs[k][i]
		}
		return float64(values[i]) / float64(total)
	})
	allocation, err := multiGreedyPick(ctx, budgets, costs, order)
	if err != nil {
		return nil, 0, err
	}
	return finalize(allocation, values)
}
