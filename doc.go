// Package communitypb is a library for solving participatory budgeting
// instances as 0/1 (multidimensional) knapsack problems.
//
// Subpackages:
//
//	pbvote/      — vote aggregation & ballot-to-utility conversion
//	pbcore/      — validated single- and multi-budget instance types
//	pbregistry/  — algorithm identifiers and solver options
//	pbknapsack/  — exact and approximate knapsack solvers
//	pbsolve/     — supervised dispatch with wall-clock timeouts
//	pbio/        — reader/writer for the semicolon-delimited .pb format
package communitypb
