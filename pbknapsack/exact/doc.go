// Package exact implements the optimum-guaranteeing knapsack solvers:
// brute force, top-down memoization, bottom-up dynamic programming (both
// the max-value and min-cost variants — the latter feeds
// pbknapsack/approx's FPTAS), branch-and-bound with a greedy
// fractional-relaxation bound, and integer linear programming via
// github.com/jjhbw/GoMILP.
//
// Every exported solver has the signature
// (ctx, budget(s), cost(s), values) → (indices, value, error); the only
// error a solver returns is ctx.Err() on cancellation — a solver never
// fails on well-formed input (shape is the caller's responsibility, via
// pbcore). Each solver except ILP polls its context every 4096 loop
// iterations (internal/pbcancel), bounding how late a timed-out call is
// noticed to a small constant. ILP and MultiILP check the context only
// once, before handing the model to GoMILP.
package exact
