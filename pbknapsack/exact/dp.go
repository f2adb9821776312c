package exact

import (
	"context"

	"github.com/arlojanssen/communitypb/internal/pbcancel"
)

// DP solves single-budget 0/1 knapsack by bottom-up dynamic programming
// over a dense (n+1)x(budget+1) table, dp[i][j] = best value achievable
// using the first i projects with remaining budget j. O(n·budget) time
// and space, backtracked to recover the allocation.
func DP(ctx context.Context, budget int, costs, values []int) ([]int, int, error) {
	n := len(values)
	stride := budget + 1
	dp := make([]int, (n+1)*stride)

	c := pbcancel.New(ctx)
	for i := 1; i <= n; i++ {
		for j := 1; j <= budget; j++ {
			if c.Tick() {
				return nil, 0, ctx.Err()
			}

			exclude := dp[(i-1)*stride+j]
			if costs[i-1] > j {
				dp[i*stride+j] = exclude
				continue
			}
			include := dp[(i-1)*stride+(j-costs[i-1])] + values[i-1]
			if include > exclude {
				dp[i*stride+j] = include
			} else {
				dp[i*stride+j] = exclude
			}
		}
	}

	best := dp[n*stride+budget]
	var allocation []int
	i, j := n, budget
	for i > 0 && j > 0 {
		if dp[i*stride+j] != dp[(i-1)*stride+j] {
			allocation = append(allocation, i-1)
			j -= costs[i-1]
		}
		i--
	}
	reverseInts(allocation)

	return allocation, best, nil
}

const infCost = int(^uint(0) >> 1)

// DPMinCost is the min-cost dynamic programming variant required by
// FPTAS: dp[i][v] is the minimum cost to achieve at least value v using
// the first i projects. Base cases: dp[0][v>0] = +inf, dp[i][0] = 0.
// Returns the largest v with dp[n][v] <= budget and its allocation.
// O(n * sum(values)).
func DPMinCost(ctx context.Context, budget int, costs, values []int) ([]int, int, error) {
	n := len(values)
	valueSum := 0
	for _, v := range values {
		valueSum += v
	}
	stride := valueSum + 1
	dp := make([]int, (n+1)*stride)

	for v := 1; v <= valueSum; v++ {
		dp[v] = infCost
	}

	c := pbcancel.New(ctx)
	for i := 1; i <= n; i++ {
		for v := 1; v <= valueSum; v++ {
			if c.Tick() {
				return nil, 0, ctx.Err()
			}

			exclude := dp[(i-1)*stride+v]
			prevV := v - values[i-1]
			if prevV < 0 {
				prevV = 0
			}
			prevCost := dp[(i-1)*stride+prevV]
			var include int
			if prevCost == infCost {
				include = infCost
			} else {
				include = prevCost + costs[i-1]
			}

			if include < exclude {
				dp[i*stride+v] = include
			} else {
				dp[i*stride+v] = exclude
			}
		}
	}

	best := 0
	for v := valueSum; v >= 0; v-- {
		if dp[n*stride+v] <= budget {
			best = v
			break
		}
	}

	var allocation []int
	i, j := n, best
	for i > 0 && j > 0 {
		if dp[i*stride+j] < dp[(i-1)*stride+j] {
			allocation = append(allocation, i-1)
			j -= values[i-1]
		}
		i--
	}
	reverseInts(allocation)

	return allocation, best, nil
}

// multiDPKey hashes an (item, remaining-budgets) coordinate for the
// Cartesian-product DP table; tabulated in lexicographically
// non-decreasing order so predecessor states are always ready.
func multiDPKey(i int, remaining []int) string {
	return multiKey(i, remaining)
}

// MultiDP tabulates the max-value recurrence over the Cartesian product
// {0..n} x prod_k {0..budgets[k]}, iterated in lexicographic order.
// Practical only for small instances: O(n * prod(budgets)).
func MultiDP(ctx context.Context, budgets []int, costs [][]int, values []int) ([]int, int, error) {
	n := len(values)
	d := len(budgets)

	type entry struct {
		allocation []int
		value      int
	}
	table := make(map[string]entry)

	c := pbcancel.New(ctx)

	combo := make([]int, d)
	var iterate func(dim int, i int) error
	iterate = func(dim int, i int) error {
		if dim == d {
			if c.Tick() {
				return ctx.Err()
			}

			anyZero := i == 0
			for _, r := range combo {
				if r == 0 {
					anyZero = true
				}
			}
			if anyZero {
				table[multiDPKey(i, combo)] = entry{}
				return nil
			}

			exclude := table[multiDPKey(i-1, combo)]
			result := exclude

			fits := true
			for k := 0; k < d; k++ {
				if costs[k][i-1] > combo[k] {
					fits = false
					break
				}
			}
			if fits {
				prevRemaining := make([]int, d)
				for k := 0; k < d; k++ {
					prevRemaining[k] = combo[k] - costs[k][i-1]
				}
				include := table[multiDPKey(i-1, prevRemaining)]
				includeValue := include.value + values[i-1]
				if includeValue >= exclude.value {
					allocation := append(append([]int(nil), include.allocation...), i-1)
					result = entry{allocation: allocation, value: includeValue}
				}
			}

			table[multiDPKey(i, combo)] = result
			return nil
		}

		for v := 0; v <= budgets[dim]; v++ {
			combo[dim] = v
			if err := iterate(dim+1, i); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i <= n; i++ {
		if err := iterate(0, i); err != nil {
			return nil, 0, err
		}
	}

	result := table[multiDPKey(n, budgets)]
	allocation := append([]int(nil), result.allocation...)
	return allocation, result.value, nil
}
