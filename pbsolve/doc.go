// Package pbsolve dispatches a solve request to the algorithm registered
// in pbregistry, supervising it with a wall-clock timeout, and assembles
// the immutable Result record.
package pbsolve
