// Package algebra provides exact arithmetic over the Gaussian rationals
// and the polynomial operations the monodromy pipeline depends on:
// univariate and bivariate polynomials, derivatives, GCDs, square-free
// parts, Sylvester resultants, and numeric root refinement.
//
// All exact values are immutable: every operation returns a fresh value
// and never mutates its receiver or arguments. This makes values safe to
// share across the per-segment worker goroutines without synchronization.
//
// # Representation
//
// A bivariate polynomial f(x,y) is stored as a slice of univariate
// polynomials in x: BiPoly[i] is the coefficient of y^i. Univariate
// polynomials are dense coefficient slices with trailing zeros trimmed,
// so the zero polynomial has length 0 and Degree() == -1.
//
// # Root finding
//
// Roots of univariate polynomials are located with Durand–Kerner
// iteration in complex128 and then polished by Newton's method in
// big.Float at a caller-chosen precision. This serves as the pipeline's
// root-isolation collaborator: callers receive approximations whose
// error is far below the separation of the (square-free) input's roots.
package algebra
