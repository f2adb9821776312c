package exact

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/arlojanssen/communitypb/internal/pbcancel"
)

// Memoize solves single-budget 0/1 knapsack by top-down recursion on
// (i, j) = "best value using the first i projects with remaining budget
// j", memoizing each sub-problem. Equivalent to DP in asymptotic
// complexity (O(n·budget)) but explored lazily.
func Memoize(ctx context.Context, budget int, costs, values []int) ([]int, int, error) {
	n := len(values)
	table := make([]int, (n+1)*(budget+1))
	computed := make([]bool, (n+1)*(budget+1))
	stride := budget + 1

	c := pbcancel.New(ctx)
	var cancelled error

	var explore func(i, j int) int
	explore = func(i, j int) int {
		if cancelled != nil {
			return 0
		}
		if c.Tick() {
			cancelled = ctx.Err()
			return 0
		}
		if i == 0 || j == 0 {
			return 0
		}
		idx := i*stride + j
		if computed[idx] {
			return table[idx]
		}

		exclude := explore(i-1, j)
		best := exclude
		if costs[i-1] <= j {
			include := explore(i-1, j-costs[i-1]) + values[i-1]
			if include > best {
				best = include
			}
		}

		table[idx] = best
		computed[idx] = true
		return best
	}

	best := explore(n, budget)
	if cancelled != nil {
		return nil, 0, cancelled
	}

	var allocation []int
	i, j := n, budget
	for i > 0 && j > 0 {
		idx := i*stride + j
		prevIdx := (i-1)*stride + j
		if table[idx] != table[prevIdx] {
			allocation = append(allocation, i-1)
			j -= costs[i-1]
		}
		i--
	}
	reverseInts(allocation)

	return allocation, best, nil
}

// multiKey hashes a remaining-budget vector into a map key, treating the
// state as (rank, remaining-per-dimension).
func multiKey(i int, remaining []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", i)
	for _, r := range remaining {
		fmt.Fprintf(&b, ",%d", r)
	}
	return b.String()
}

// MultiMemoize is Memoize's multi-dimension counterpart: the memo key is
// (i, remaining budgets); a project is only includable while it fits every
// dimension.
func MultiMemoize(ctx context.Context, budgets []int, costs [][]int, values []int) ([]int, int, error) {
	n := len(values)
	d := len(budgets)

	type entry struct {
		allocation []int
		value      int
	}
	memo := make(map[string]entry)

	c := pbcancel.New(ctx)
	var cancelled error

	var explore func(i int, remaining []int) entry
	explore = func(i int, remaining []int) entry {
		if cancelled != nil {
			return entry{}
		}
		if c.Tick() {
			cancelled = ctx.Err()
			return entry{}
		}

		anyZero := i == 0
		for _, r := range remaining {
			if r == 0 {
				anyZero = true
			}
		}
		if anyZero {
			return entry{}
		}

		key := multiKey(i, remaining)
		if e, ok := memo[key]; ok {
			return e
		}

		exclude := explore(i-1, remaining)
		result := exclude

		fits := true
		for k := 0; k < d; k++ {
			if costs[k][i-1] > remaining[k] {
				fits = false
				break
			}
		}
		if fits {
			nextRemaining := make([]int, d)
			for k := 0; k < d; k++ {
				nextRemaining[k] = remaining[k] - costs[k][i-1]
			}
			include := explore(i-1, nextRemaining)
			includeValue := include.value + values[i-1]
			if includeValue >= exclude.value {
				allocation := append(append([]int(nil), include.allocation...), i-1)
				result = entry{allocation: allocation, value: includeValue}
			}
		}

		memo[key] = result
		return result
	}

	result := explore(n, append([]int(nil), budgets...))
	if cancelled != nil {
		return nil, 0, cancelled
	}

	allocation := append([]int(nil), result.allocation...)
	sort.Ints(allocation)
	return allocation, result.value, nil
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
