package exact_test

import (
	"context"
	"testing"

	"github.com/arlojanssen/communitypb/pbknapsack/exact"
	"github.com/stretchr/testify/require"
)

// smallInstance is a five-project single-budget fixture with a known
// optimal allocation, used to exercise every exact single-budget solver.
func smallInstance() (budget int, costs, values []int) {
	return 100, []int{50, 75, 90, 20, 10}, []int{3, 1, 3, 2, 2}
}

func TestBruteForce_SmallInstance(t *testing.T) {
	budget, costs, values := smallInstance()
	allocation, value, err := exact.BruteForce(context.Background(), budget, costs, values)
	require.NoError(t, err)
	require.Equal(t, 7, value)
	require.ElementsMatch(t, []int{1, 2, 4}, allocation)
}

func TestMemoize_SmallInstance(t *testing.T) {
	budget, costs, values := smallInstance()
	allocation, value, err := exact.Memoize(context.Background(), budget, costs, values)
	require.NoError(t, err)
	require.Equal(t, 7, value)
	require.ElementsMatch(t, []int{0, 3, 4}, allocation)
}

func TestDP_SmallInstance(t *testing.T) {
	budget, costs, values := smallInstance()
	allocation, value, err := exact.DP(context.Background(), budget, costs, values)
	require.NoError(t, err)
	require.Equal(t, 7, value)
	require.ElementsMatch(t, []int{1, 2, 4}, allocation)
}

func TestBranchAndBound_SmallInstance(t *testing.T) {
	budget, costs, values := smallInstance()
	allocation, value, err := exact.BranchAndBound(context.Background(), budget, costs, values)
	require.NoError(t, err)
	require.Equal(t, 7, value)
	require.ElementsMatch(t, []int{1, 2, 4}, allocation)
}

// TestDP_LargerInstance exercises the DP solver against a bigger fixture
// with a known optimal value.
func TestDP_LargerInstance(t *testing.T) {
	allocation, value, err := exact.DP(context.Background(), 1000, []int{200, 650, 400, 700, 400}, []int{2, 3, 3, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 8, value)
	require.NotEmpty(t, allocation)
}

func TestMultiBruteForce_TwoBudgets(t *testing.T) {
	budgets := []int{100, 200}
	costs := [][]int{{50, 75, 90, 20, 10}, {75, 100, 90, 50, 85}}
	values := []int{3, 1, 3, 2, 2}

	allocation, value, err := exact.MultiBruteForce(context.Background(), budgets, costs, values)
	require.NoError(t, err)
	require.Equal(t, 5, value)
	require.ElementsMatch(t, []int{1, 2}, allocation)
}

func TestMultiMemoize_TwoBudgets(t *testing.T) {
	budgets := []int{100, 200}
	costs := [][]int{{50, 75, 90, 20, 10}, {75, 100, 90, 50, 85}}
	values := []int{3, 1, 3, 2, 2}

	allocation, value, err := exact.MultiMemoize(context.Background(), budgets, costs, values)
	require.NoError(t, err)
	require.Equal(t, 5, value)
	require.ElementsMatch(t, []int{2, 4}, allocation)
}

func TestMultiDP_TwoBudgets(t *testing.T) {
	budgets := []int{100, 200}
	costs := [][]int{{50, 75, 90, 20, 10}, {75, 100, 90, 50, 85}}
	values := []int{3, 1, 3, 2, 2}

	allocation, value, err := exact.MultiDP(context.Background(), budgets, costs, values)
	require.NoError(t, err)
	require.Equal(t, 5, value)
	require.ElementsMatch(t, []int{2, 4}, allocation)
}

func TestDPMinCost_MatchesDPValue(t *testing.T) {
	budget, costs, values := smallInstance()
	_, maxValue, err := exact.DP(context.Background(), budget, costs, values)
	require.NoError(t, err)

	_, minCostValue, err := exact.DPMinCost(context.Background(), budget, costs, values)
	require.NoError(t, err)
	require.Equal(t, maxValue, minCostValue)
}

func TestBruteForce_EmptyInstance(t *testing.T) {
	allocation, value, err := exact.BruteForce(context.Background(), 10, nil, nil)
	require.NoError(t, err)
	require.Zero(t, value)
	require.Empty(t, allocation)
}

func TestBruteForce_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 20
	costs := make([]int, n)
	values := make([]int, n)
	for i := range costs {
		costs[i] = i + 1
		values[i] = i + 1
	}
	_, _, err := exact.BruteForce(ctx, 100, costs, values)
	require.ErrorIs(t, err, context.Canceled)
}
