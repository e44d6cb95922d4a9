package monodromy

import (
	"math/cmplx"

	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/braid"
	"github.com/algcurve/vankampen/pkg/errors"
)

// SegmentBraid computes the braid traced by the fiber roots of f as x
// moves along the segment from x0 to x1. Both endpoints are exact
// Gaussian rationals (network vertices), so the endpoint fibers can be
// solved once and shared by every segment meeting the vertex.
//
// The returned word composes three braids: a correction from the x0
// fiber roots to the tracked strands' (approximate) start points, the
// central braid of the tracked strands, and a correction from the
// strands' end points back to the x1 fiber roots. The corrections match
// each approximate endpoint to its nearest fiber root; two strands
// claiming the same root means the approximation is too coarse to
// distinguish them, which is fatal (ErrCodeAmbiguousRoot) rather than
// retried.
func SegmentBraid(f algebra.BiPoly, x0, x1 algebra.Gaussian, prec, maxPrec uint) (braid.Word, error) {
	y0s, err := fiberRoots(f, x0, prec)
	if err != nil {
		return nil, err
	}

	strands := make([]Strand, len(y0s))
	for i, y0 := range y0s {
		s, err := FollowStrand(f, x0, x1, y0, prec, maxPrec)
		if err != nil {
			return nil, err
		}
		strands[i] = s
	}
	central := BraidFromStrands(strands)

	starts := make([]complex128, len(strands))
	for i, s := range strands {
		starts[i] = complex(s[0].Re, s[0].Im)
	}
	initial, err := correctionBraid(y0s, starts, false)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "matching strand starts to the fiber at %v", x0)
	}

	y1s, err := fiberRoots(f, x1, prec)
	if err != nil {
		return nil, err
	}
	ends := make([]complex128, len(strands))
	for i, s := range strands {
		last := s[len(s)-1]
		ends[i] = complex(last.Re, last.Im)
	}
	final, err := correctionBraid(y1s, ends, true)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "matching strand ends to the fiber at %v", x1)
	}

	return braid.Compose(initial, central, final), nil
}

// fiberRoots solves f(x,·) at an exact x value.
func fiberRoots(f algebra.BiPoly, x algebra.Gaussian, prec uint) ([]complex128, error) {
	p := f.EvalX(x)
	roots, err := p.Roots(prec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "isolating fiber roots at x = %v", x)
	}
	return roots, nil
}

// correctionBraid builds the braid of straight-line strands joining each
// approximate point to its nearest fiber root. With fromApprox the
// strands run approximate -> root, otherwise root -> approximate.
func correctionBraid(roots, approx []complex128, fromApprox bool) (braid.Word, error) {
	used := make([]bool, len(roots))
	strands := make([]Strand, len(approx))
	for i, a := range approx {
		best, bestDist := -1, 0.0
		for r, root := range roots {
			d := cmplx.Abs(a - root)
			if best < 0 || d < bestDist {
				best, bestDist = r, d
			}
		}
		if used[best] {
			return nil, errors.New(errors.ErrCodeAmbiguousRoot,
				"two strands match the fiber root %v; roots are too close at the working precision", roots[best])
		}
		used[best] = true
		root := roots[best]
		if fromApprox {
			strands[i] = Strand{
				{T: 0, Re: real(a), Im: imag(a)},
				{T: 1, Re: real(root), Im: imag(root)},
			}
		} else {
			strands[i] = Strand{
				{T: 0, Re: real(root), Im: imag(root)},
				{T: 1, Re: real(a), Im: imag(a)},
			}
		}
	}
	return BraidFromStrands(strands), nil
}
