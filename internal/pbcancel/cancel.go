// Package pbcancel gives CPU-bound solver loops a cheap way to notice a
// cancelled context without calling ctx.Err() on every iteration.
package pbcancel

import "context"

// pollInterval is the number of iterations between cancellation checks,
// bounding how late a hot loop notices ctx has been cancelled. Must be a
// power of two.
const pollInterval = 4096

// Canceller batches ctx.Err() checks across iterations of a hot loop.
// Call Tick once per iteration; it reports true on the first poll that
// finds ctx cancelled. Calls between polls report false, so a loop should
// stop on the first true.
type Canceller struct {
	ctx   context.Context
	steps uint64
}

// New returns a Canceller polling ctx every pollInterval ticks.
func New(ctx context.Context) *Canceller {
	return &Canceller{ctx: ctx}
}

// Tick advances the counter and reports whether ctx is now cancelled. It
// only calls ctx.Err() every pollInterval calls, so it is safe to call
// from the innermost loop of brute force, DP, or branch-and-bound.
func (c *Canceller) Tick() bool {
	c.steps++
	if c.steps&(pollInterval-1) != 0 {
		return false
	}
	return c.ctx.Err() != nil
}
