// Package pbregistry enumerates the algorithms pbsolve can dispatch to,
// tags each with whether it is an exact or approximate method, and holds
// the tunable Options (timeout, RNG seed, FPTAS accuracy, SA/GA
// hyperparameters) a solve call is configured with.
package pbregistry
