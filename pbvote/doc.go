// Package pbvote converts raw ballots into the per-project utility
// vectors that pbcore instances are built from, and aggregates utilities
// into the values a solver optimizes.
package pbvote
