package approx_test

import (
	"context"
	"testing"

	"github.com/arlojanssen/communitypb/pbknapsack/approx"
	"github.com/arlojanssen/communitypb/pbregistry"
	"github.com/stretchr/testify/require"
)

func smallInstance() (budget int, costs, values []int) {
	return 100, []int{50, 75, 90, 20, 10}, []int{3, 1, 3, 2, 2}
}

func TestGreedy_SmallInstance_Feasible(t *testing.T) {
	budget, costs, values := smallInstance()
	allocation, value, err := approx.Greedy(context.Background(), budget, costs, values)
	require.NoError(t, err)
	require.LessOrEqual(t, totalCost(allocation, costs), budget)
	require.Equal(t, sumValues(allocation, values), value)
}

func TestRatioGreedy_SmallInstance_ReachesOptimum(t *testing.T) {
	budget, costs, values := smallInstance()
	allocation, value, err := approx.RatioGreedy(context.Background(), budget, costs, values)
	require.NoError(t, err)
	require.LessOrEqual(t, totalCost(allocation, costs), budget)
	require.Equal(t, 7, value)
}

func TestMultiGreedy_Feasible(t *testing.T) {
	budgets := []int{100, 200}
	costs := [][]int{{50, 75, 90, 20, 10}, {75, 100, 90, 50, 85}}
	values := []int{3, 1, 3, 2, 2}

	allocation, value, err := approx.MultiGreedy(context.Background(), budgets, costs, values)
	require.NoError(t, err)
	require.Equal(t, sumValues(allocation, values), value)
	for k, budget := range budgets {
		require.LessOrEqual(t, totalCost(allocation, costs[k]), budget)
	}
}

func TestFPTAS_SmallInstance_WithinBound(t *testing.T) {
	budget, costs, values := smallInstance()
	allocation, value, err := approx.FPTAS(context.Background(), budget, costs, values, 0.5)
	require.NoError(t, err)
	require.LessOrEqual(t, totalCost(allocation, costs), budget)
	require.GreaterOrEqual(t, float64(value), 0.5*7)
}

func TestFPTAS_EmptyInstance(t *testing.T) {
	allocation, value, err := approx.FPTAS(context.Background(), 10, nil, nil, 0.5)
	require.NoError(t, err)
	require.Zero(t, value)
	require.Empty(t, allocation)
}

func TestSimulatedAnnealing_SmallInstance_Feasible(t *testing.T) {
	budget, costs, values := smallInstance()
	opts := pbregistry.DefaultOptions()
	opts.SATemperatureLength = 200
	opts.Seed = 42

	allocation, value, err := approx.SimulatedAnnealing(context.Background(), budget, costs, values, opts)
	require.NoError(t, err)
	require.LessOrEqual(t, totalCost(allocation, costs), budget)
	require.Equal(t, sumValues(allocation, values), value)
}

func TestMultiSimulatedAnnealing_Feasible(t *testing.T) {
	budgets := []int{100, 200}
	costs := [][]int{{50, 75, 90, 20, 10}, {75, 100, 90, 50, 85}}
	values := []int{3, 1, 3, 2, 2}
	opts := pbregistry.DefaultOptions()
	opts.SATemperatureLength = 200
	opts.Seed = 7

	allocation, value, err := approx.MultiSimulatedAnnealing(context.Background(), budgets, costs, values, opts)
	require.NoError(t, err)
	require.Equal(t, sumValues(allocation, values), value)
	for k, budget := range budgets {
		require.LessOrEqual(t, totalCost(allocation, costs[k]), budget)
	}
}

func TestGeneticAlgorithm_SmallInstance_Feasible(t *testing.T) {
	budget, costs, values := smallInstance()
	opts := pbregistry.DefaultOptions()
	opts.GAGenerations = 30
	opts.GAPopulationSize = 20
	opts.Seed = 1

	allocation, value, err := approx.GeneticAlgorithm(context.Background(), budget, costs, values, opts)
	require.NoError(t, err)
	require.LessOrEqual(t, totalCost(allocation, costs), budget)
	require.Equal(t, sumValues(allocation, values), value)
}

func TestMultiGeneticAlgorithm_Feasible(t *testing.T) {
	budgets := []int{100, 200}
	costs := [][]int{{50, 75, 90, 20, 10}, {75, 100, 90, 50, 85}}
	values := []int{3, 1, 3, 2, 2}
	opts := pbregistry.DefaultOptions()
	opts.GAGenerations = 30
	opts.GAPopulationSize = 20
	opts.Seed = 3

	allocation, value, err := approx.MultiGeneticAlgorithm(context.Background(), budgets, costs, values, opts)
	require.NoError(t, err)
	require.Equal(t, sumValues(allocation, values), value)
	for k, budget := range budgets {
		require.LessOrEqual(t, totalCost(allocation, costs[k]), budget)
	}
}

func TestMultiBranchAndBound_TwoBudgets_ReachesOptimum(t *testing.T) {
	budgets := []int{100, 200}
	costs := [][]int{{50, 75, 90, 20, 10}, {75, 100, 90, 50, 85}}
	values := []int{3, 1, 3, 2, 2}

	allocation, value, err := approx.MultiBranchAndBound(context.Background(), budgets, costs, values)
	require.NoError(t, err)
	require.Equal(t, 5, value)
	require.ElementsMatch(t, []int{0, 3}, allocation)
	for k, budget := range budgets {
		require.LessOrEqual(t, totalCost(allocation, costs[k]), budget)
	}
}

func TestGreedy_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 10000
	costs := make([]int, n)
	values := make([]int, n)
	for i := range costs {
		costs[i] = i + 1
		values[i] = i + 1
	}
	_, _, err := approx.Greedy(ctx, 100, costs, values)
	require.ErrorIs(t, err, context.Canceled)
}

func totalCost(allocation, costs []int) int {
	total := 0
	for _, idx := range allocation {
		total += costs[idx]
	}
	return total
}

func sumValues(allocation, values []int) int {
	total := 0
	for _, idx := range allocation {
		total += values[idx]
	}
	return total
}
