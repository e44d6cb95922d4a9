package monodromy

import (
	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/errors"
)

// Discriminant returns the branch points of f: the x-values where the
// fiber f(x,·) has a repeated root, computed as the roots of the
// square-free part of Res_y(f, ∂f/∂y). The returned points are
// deduplicated approximations polished at prec bits; callers use them
// only as geometry for the path network, never as exact values.
//
// Discriminant fails with ErrCodeNotSquareFree when f has a repeated
// factor in y (the resultant vanishes identically); callers are expected
// to reduce to the square-free part first.
func Discriminant(f algebra.BiPoly, prec uint) ([]complex128, error) {
	if f.DegY() < 1 {
		return nil, errors.New(errors.ErrCodeDegenerateDegree,
			"polynomial has y-degree %d; need at least 1", f.DegY())
	}
	disc := algebra.DiscriminantY(f)
	if disc.IsZero() {
		return nil, errors.New(errors.ErrCodeNotSquareFree,
			"polynomial has a repeated factor in y; reduce to the square-free part first")
	}
	if disc.IsConst() {
		return nil, nil // smooth family: no branch points
	}
	reduced := disc.SquareFreePart()
	points, err := reduced.Roots(prec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "isolating discriminant roots")
	}
	return points, nil
}
