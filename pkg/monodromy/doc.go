// Package monodromy computes the braid monodromy of a plane algebraic
// curve and derives a finite presentation of the fundamental group of
// the curve's complement (the Zariski–Van Kampen method).
//
// # Pipeline
//
// The computation runs in five stages:
//
//  1. Discriminant: x-values where the fiber f(x,·) has a repeated root.
//  2. Network: bounded Voronoi ridges of the branch points form a
//     connected skeleton of segments that stay maximally far from every
//     branch point.
//  3. Continuation: for each segment and each fiber root, a certified
//     piecewise-linear approximation of the root's deformation.
//  4. Braid extraction: the crossing pattern of the tracked strands,
//     linearized into a braid word.
//  5. Assembly: one relator per (segment, sheet), plus an optional
//     projective relator, into a finite presentation.
//
// Segments are independent: the per-segment braid computation is the
// unit of parallelism, with a strict barrier before assembly. All shared
// inputs (the polynomial, the network) are immutable.
//
// # Entry point
//
//	pres, err := monodromy.FundamentalGroup(ctx, f, monodromy.Options{Simplified: true})
package monodromy
