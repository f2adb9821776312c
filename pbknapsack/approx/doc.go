// Package approx implements approximate and heuristic solvers for the
// single- and multi-budget 0/1 knapsack problem: greedy, ratio-greedy,
// FPTAS, simulated annealing, genetic algorithm, and (for the
// multi-dimension case only) branch-and-bound with a heuristic bound.
//
// Every solver shares the exact package's signature contract:
// (ctx, budget(s), cost(s), values) -> (indices, value, error), with the
// only possible error being ctx.Err() on cancellation. None of these
// solvers are guaranteed to return the optimum.
package approx
