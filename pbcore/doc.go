// Package pbcore defines the validated data objects for participatory
// budgeting instances: SingleProblem (one budget dimension) and
// MultiProblem (d ≥ 1 budget dimensions), plus the Project and Voter
// identifiers they carry.
//
// Both problem types are immutable after construction except for their
// utility matrix, whose mutation invalidates and recomputes the cached
// aggregated value vector. Every field of an instance, readers and the
// utility mutation alike, is guarded by a single RWMutex per instance.
package pbcore
