package exact

import (
	"context"

	"github.com/arlojanssen/communitypb/internal/pbcancel"
)

// bitProject maps bit position j (0 = project 0) to its place in mask: the
// canonical encoding is MSB-first, so project j occupies bit (n-1-j).
func bitProject(mask, n, j int) bool {
	return (mask>>(n-1-j))&1 == 1
}

// BruteForce enumerates every one of the 2^n subsets of projects and
// returns the best one whose total cost does not exceed budget. O(2^n).
func BruteForce(ctx context.Context, budget int, costs, values []int) ([]int, int, error) {
	n := len(values)
	best := 0
	var bestAllocation []int

	c := pbcancel.New(ctx)
	total := 1 << uint(n)
	for mask := 0; mask < total; mask++ {
		if c.Tick() {
			return nil, 0, ctx.Err()
		}

		cost, value := 0, 0
		for j := 0; j < n; j++ {
			if bitProject(mask, n, j) {
				cost += costs[j]
				value += values[j]
			}
		}
		if cost <= budget && value > best {
			best = value
			bestAllocation = allocationFromMask(mask, n)
		}
	}

	return bestAllocation, best, nil
}

// MultiBruteForce is BruteForce's multi-dimension counterpart: an
// allocation is feasible iff every budget dimension's accumulated cost is
// within its budget.
func MultiBruteForce(ctx context.Context, budgets []int, costs [][]int, values []int) ([]int, int, error) {
	n := len(values)
	d := len(budgets)
	best := 0
	var bestAllocation []int

	c := pbcancel.New(ctx)
	total := 1 << uint(n)
	for mask := 0; mask < total; mask++ {
		if c.Tick() {
			return nil, 0, ctx.Err()
		}

		cost := make([]int, d)
		value := 0
		for j := 0; j < n; j++ {
			if bitProject(mask, n, j) {
				value += values[j]
				for k := 0; k < d; k++ {
					cost[k] += costs[k][j]
				}
			}
		}

		feasible := true
		for k := 0; k < d; k++ {
			if cost[k] > budgets[k] {
				feasible = false
				break
			}
		}
		if feasible && value > best {
			best = value
			bestAllocation = allocationFromMask(mask, n)
		}
	}

	return bestAllocation, best, nil
}

func allocationFromMask(mask, n int) []int {
	var allocation []int
	for j := 0; j < n; j++ {
		if bitProject(mask, n, j) {
			allocation = append(allocation, j)
		}
	}
	return allocation
}
