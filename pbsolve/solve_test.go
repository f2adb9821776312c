package pbsolve_test

import (
	"context"
	"testing"
	"time"

	"github.com/arlojanssen/communitypb/pbcore"
	"github.com/arlojanssen/communitypb/pbregistry"
	"github.com/arlojanssen/communitypb/pbsolve"
	"github.com/stretchr/testify/require"
)

func smallProblem(t *testing.T) *pbcore.SingleProblem {
	t.Helper()
	utilities := [][]int{
		{3, 1, 3, 2, 2},
	}
	problem, err := pbcore.NewSingleProblem(5, 1, 100, []int{50, 75, 90, 20, 10}, utilities, nil, nil)
	require.NoError(t, err)
	return problem
}

func TestSolveSingle_DP_SmallInstance(t *testing.T) {
	problem := smallProblem(t)
	result, err := pbsolve.SolveSingle(context.Background(), problem, pbregistry.SingleDynamicProgramming, pbregistry.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 7, result.Value)
	require.ElementsMatch(t, []string{"0", "3", "4"}, result.Allocation)
	require.False(t, result.IsApproximate)
	require.Empty(t, result.Warnings)
}

func TestSolveSingle_EmptyInstance(t *testing.T) {
	problem, err := pbcore.NewSingleProblem(0, 0, 100, nil, nil, nil, nil)
	require.NoError(t, err)

	result, err := pbsolve.SolveSingle(context.Background(), problem, pbregistry.SingleBruteForce, pbregistry.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, result.Value)
	require.Empty(t, result.Allocation)
}

func TestSolveSingle_Timeout(t *testing.T) {
	n := 40
	costs := make([]int, n)
	utilities := make([][]int, 1)
	utilities[0] = make([]int, n)
	for i := range costs {
		costs[i] = i + 1
		utilities[0][i] = i + 1
	}
	problem, err := pbcore.NewSingleProblem(n, 1, 1000, costs, utilities, nil, nil)
	require.NoError(t, err)

	opts := pbregistry.DefaultOptions()
	opts.Timeout = 100 * time.Millisecond

	result, err := pbsolve.SolveSingle(context.Background(), problem, pbregistry.SingleBruteForce, opts)
	require.NoError(t, err)
	require.Zero(t, result.Value)
	require.Empty(t, result.Allocation)
	require.NotEmpty(t, result.Warnings)
	require.Equal(t, 100.0, result.RuntimeMS)
}

func TestSolveSingle_UnsupportedAlgorithm(t *testing.T) {
	problem := smallProblem(t)
	_, err := pbsolve.SolveSingle(context.Background(), problem, pbregistry.SingleAlgorithm(999), pbregistry.DefaultOptions())
	require.ErrorIs(t, err, pbsolve.ErrUnsupportedAlgorithm)
}

func TestSolveMulti_TwoBudgets(t *testing.T) {
	utilities := [][]int{{3, 1, 3, 2, 2}}
	problem, err := pbcore.NewMultiProblem(5, 1, []int{100, 200}, [][]int{
		{50, 75, 90, 20, 10},
		{75, 100, 90, 50, 85},
	}, utilities, nil, nil)
	require.NoError(t, err)

	result, err := pbsolve.SolveMulti(context.Background(), problem, pbregistry.MultiDynamicProgramming, pbregistry.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 5, result.Value)
	require.ElementsMatch(t, []string{"2", "4"}, result.Allocation)
}

func TestSolveSingle_CrossSolverOptimality(t *testing.T) {
	problem := smallProblem(t)
	opts := pbregistry.DefaultOptions()

	algorithms := []pbregistry.SingleAlgorithm{
		pbregistry.SingleBruteForce,
		pbregistry.SingleMemoization,
		pbregistry.SingleDynamicProgramming,
		pbregistry.SingleBranchAndBound,
	}
	for _, algorithm := range algorithms {
		result, err := pbsolve.SolveSingle(context.Background(), problem, algorithm, opts)
		require.NoError(t, err)
		require.Equalf(t, 7, result.Value, "algorithm %s", algorithm)
	}
}
