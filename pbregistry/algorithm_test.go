package pbregistry_test

import (
	"testing"

	"github.com/arlojanssen/communitypb/pbregistry"
	"github.com/stretchr/testify/require"
)

func TestSingleAlgorithm_IsApproximate(t *testing.T) {
	approx := []pbregistry.SingleAlgorithm{
		pbregistry.SingleGreedy, pbregistry.SingleRatioGreedy, pbregistry.SingleFPTAS,
		pbregistry.SingleSimulatedAnnealing, pbregistry.SingleGeneticAlgorithm,
	}
	for _, a := range approx {
		require.True(t, a.IsApproximate(), a.String())
	}

	exact := []pbregistry.SingleAlgorithm{
		pbregistry.SingleBruteForce, pbregistry.SingleMemoization,
		pbregistry.SingleDynamicProgramming, pbregistry.SingleBranchAndBound, pbregistry.SingleILP,
	}
	for _, a := range exact {
		require.False(t, a.IsApproximate(), a.String())
	}
}

func TestMultiAlgorithm_BranchAndBoundIsApproximate(t *testing.T) {
	require.True(t, pbregistry.MultiBranchAndBound.IsApproximate())
	require.False(t, pbregistry.SingleBranchAndBound.IsApproximate())
}

func TestMultiAlgorithm_IsApproximate(t *testing.T) {
	approx := []pbregistry.MultiAlgorithm{
		pbregistry.MultiGreedy, pbregistry.MultiRatioGreedy, pbregistry.MultiBranchAndBound,
		pbregistry.MultiSimulatedAnnealing, pbregistry.MultiGeneticAlgorithm,
	}
	for _, a := range approx {
		require.True(t, a.IsApproximate(), a.String())
	}

	exact := []pbregistry.MultiAlgorithm{
		pbregistry.MultiBruteForce, pbregistry.MultiMemoization,
		pbregistry.MultiDynamicProgramming, pbregistry.MultiILP,
	}
	for _, a := range exact {
		require.False(t, a.IsApproximate(), a.String())
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := pbregistry.DefaultOptions()
	require.Equal(t, pbregistry.DefaultFPTASEpsilon, opts.FPTASEpsilon)
	require.Equal(t, pbregistry.DefaultSATemperatureLength, opts.SATemperatureLength)
	require.Equal(t, pbregistry.DefaultGAGenerations, opts.GAGenerations)
	require.Negative(t, int64(opts.Timeout))
}
