// Package numeric implements the certified root-continuation kernel used
// by the monodromy tracker.
//
// The kernel consumes a bivariate polynomial family g(t,y) flattened to
// fixed-schema coefficient records (degree pair plus interval enclosures
// of the real and imaginary parts) and tracks one root of g(t,·) as t
// runs from 0 to 1. Steps in t are accepted only when an interval Newton
// contraction certifies that a disk around the current approximation
// contains exactly one root for every t in the step; otherwise the step
// is bisected. When bisection bottoms out the kernel reports
// ErrCertification and the caller is expected to retry at doubled
// working precision.
//
// All interval arithmetic uses big.Float endpoints with directed
// rounding, so enclosures remain valid at any working precision.
package numeric
