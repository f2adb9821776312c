package pbsolve

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/arlojanssen/communitypb/pbcore"
	"github.com/arlojanssen/communitypb/pbknapsack/approx"
	"github.com/arlojanssen/communitypb/pbknapsack/exact"
	"github.com/arlojanssen/communitypb/pbregistry"
)

// ErrUnsupportedAlgorithm indicates the dispatcher received an algorithm
// identifier it does not know how to route.
var ErrUnsupportedAlgorithm = errors.New("pbsolve: unsupported algorithm")

const timeoutWarning = "solve timed out before completion; returning an empty allocation"

type outcome struct {
	allocation []int
	value      int
	err        error
}

// run executes work in a supervised goroutine and returns as soon as
// either the work finishes or the context is done, whichever comes
// first. If the context wins, the goroutine is left to finish on its
// own time and its eventual result is discarded.
func run(ctx context.Context, work func(ctx context.Context) ([]int, int, error)) ([]int, int, error) {
	done := make(chan outcome, 1)
	go func() {
		allocation, value, err := work(ctx)
		done <- outcome{allocation, value, err}
	}()

	select {
	case o := <-done:
		return o.allocation, o.value, o.err
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	}
}

// SolveSingle dispatches a single-budget instance to the requested
// algorithm, bounding it by opts.Timeout (negative means no timeout), and
// assembles the Result. A timeout or cancellation is not an error: it
// yields a Result with Value 0 and a Warnings entry instead. An unknown
// algorithm yields ErrUnsupportedAlgorithm; any other error from the
// solver is returned unchanged.
func SolveSingle(ctx context.Context, problem *pbcore.SingleProblem, algorithm pbregistry.SingleAlgorithm, opts pbregistry.Options) (Result, error) {
	if problem.NumProjects() == 0 {
		return Result{AlgorithmName: algorithm.String(), IsApproximate: algorithm.IsApproximate(), Cost: []int{0}}, nil
	}

	ctx, cancel := withTimeout(ctx, opts.Timeout)
	defer cancel()

	budget := problem.Budget()
	costs := problem.Costs()
	values := problem.Values()

	start := time.Now()
	var allocation []int
	var value int
	var err error

	switch algorithm {
	case pbregistry.SingleBruteForce:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.BruteForce(ctx, budget, costs, values)
		})
	case pbregistry.SingleMemoization:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.Memoize(ctx, budget, costs, values)
		})
	case pbregistry.SingleDynamicProgramming:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.DP(ctx, budget, costs, values)
		})
	case pbregistry.SingleBranchAndBound:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.BranchAndBound(ctx, budget, costs, values)
		})
	case pbregistry.SingleILP:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.ILP(ctx, budget, costs, values)
		})
	case pbregistry.SingleGreedy:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.Greedy(ctx, budget, costs, values)
		})
	case pbregistry.SingleRatioGreedy:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.RatioGreedy(ctx, budget, costs, values)
		})
	case pbregistry.SingleFPTAS:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.FPTAS(ctx, budget, costs, values, opts.FPTASEpsilon)
		})
	case pbregistry.SingleSimulatedAnnealing:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.SimulatedAnnealing(ctx, budget, costs, values, opts)
		})
	case pbregistry.SingleGeneticAlgorithm:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.GeneticAlgorithm(ctx, budget, costs, values, opts)
		})
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}

	runtimeMS := float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Result{
				AlgorithmName: algorithm.String(),
				IsApproximate: algorithm.IsApproximate(),
				Cost:          []int{0},
				RuntimeMS:     timeoutRuntimeMS(opts.Timeout, runtimeMS),
				Warnings:      []string{timeoutWarning},
			}, nil
		}
		return Result{}, err
	}

	return buildResult(problem.Projects(), allocation, value, []int{totalCost(allocation, costs)}, runtimeMS, algorithm.String(), algorithm.IsApproximate()), nil
}

// SolveMulti is SolveSingle's multi-budget counterpart.
func SolveMulti(ctx context.Context, problem *pbcore.MultiProblem, algorithm pbregistry.MultiAlgorithm, opts pbregistry.Options) (Result, error) {
	if problem.NumProjects() == 0 {
		return Result{AlgorithmName: algorithm.String(), IsApproximate: algorithm.IsApproximate(), Cost: make([]int, problem.Dimensions())}, nil
	}

	ctx, cancel := withTimeout(ctx, opts.Timeout)
	defer cancel()

	budgets := problem.Budget()
	costs := problem.Costs()
	values := problem.Values()

	start := time.Now()
	var allocation []int
	var value int
	var err error

	switch algorithm {
	case pbregistry.MultiBruteForce:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.MultiBruteForce(ctx, budgets, costs, values)
		})
	case pbregistry.MultiMemoization:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.MultiMemoize(ctx, budgets, costs, values)
		})
	case pbregistry.MultiDynamicProgramming:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.MultiDP(ctx, budgets, costs, values)
		})
	case pbregistry.MultiBranchAndBound:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.MultiBranchAndBound(ctx, budgets, costs, values)
		})
	case pbregistry.MultiILP:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return exact.MultiILP(ctx, budgets, costs, values)
		})
	case pbregistry.MultiGreedy:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.MultiGreedy(ctx, budgets, costs, values)
		})
	case pbregistry.MultiRatioGreedy:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.MultiRatioGreedy(ctx, budgets, costs, values)
		})
	case pbregistry.MultiSimulatedAnnealing:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.MultiSimulatedAnnealing(ctx, budgets, costs, values, opts)
		})
	case pbregistry.MultiGeneticAlgorithm:
		allocation, value, err = run(ctx, func(ctx context.Context) ([]int, int, error) {
			return approx.MultiGeneticAlgorithm(ctx, budgets, costs, values, opts)
		})
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}

	runtimeMS := float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Result{
				AlgorithmName: algorithm.String(),
				IsApproximate: algorithm.IsApproximate(),
				Cost:          make([]int, problem.Dimensions()),
				RuntimeMS:     timeoutRuntimeMS(opts.Timeout, runtimeMS),
				Warnings:      []string{timeoutWarning},
			}, nil
		}
		return Result{}, err
	}

	return buildResult(problem.Projects(), allocation, value, totalCosts(allocation, costs), runtimeMS, algorithm.String(), algorithm.IsApproximate()), nil
}

// timeoutRuntimeMS reports the timeout duration itself rather than elapsed
// wall-clock time, so a caller can tell a timeout apart from an honest
// empty result by runtime == timeout exactly. A negative timeout means
// none was set, so the cancellation must have come from the parent
// context; elapsed time is the only figure available then.
func timeoutRuntimeMS(timeout time.Duration, elapsedMS float64) float64 {
	if timeout < 0 {
		return elapsedMS
	}
	return float64(timeout.Milliseconds())
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout < 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func totalCost(allocation, costs []int) int {
	total := 0
	for _, idx := range allocation {
		total += costs[idx]
	}
	return total
}

func totalCosts(allocation []int, costs [][]int) []int {
	totals := make([]int, len(costs))
	for k, row := range costs {
		totals[k] = totalCost(allocation, row)
	}
	return totals
}

func buildResult(projects []pbcore.Project, allocation []int, value int, cost []int, runtimeMS float64, algorithmName string, isApproximate bool) Result {
	sorted := append([]int(nil), allocation...)
	sort.Ints(sorted)

	ids := make([]string, len(sorted))
	for i, idx := range sorted {
		ids[i] = projects[idx].ID
	}

	return Result{
		Allocation:    ids,
		Value:         value,
		Cost:          cost,
		RuntimeMS:     runtimeMS,
		AlgorithmName: algorithmName,
		IsApproximate: isApproximate,
	}
}
