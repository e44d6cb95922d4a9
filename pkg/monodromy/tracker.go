package monodromy

import (
	stderrors "errors"
	"math/big"

	"github.com/algcurve/vankampen/pkg/algebra"
	"github.com/algcurve/vankampen/pkg/errors"
	"github.com/algcurve/vankampen/pkg/numeric"
	"github.com/algcurve/vankampen/pkg/observability"
)

// Strand is one tracked root path along a segment: certified samples of
// a single fiber root as x moves from the segment's start to its end.
type Strand []numeric.Sample

// lineCoeff is one exact monomial of g(t,y) = f((1-t)·x0 + t·x1, y).
// The rational coefficients are computed once; only their interval
// enclosures depend on the working precision.
type lineCoeff struct {
	degT, degY int
	c          algebra.Gaussian
}

// substituteLine expands f along the parametrized segment x(t) = x0 + t·d
// with d = x1 - x0. For a monomial a·x^j·y^i the binomial theorem gives
// the exact t-expansion a·Σ_m C(j,m)·x0^(j-m)·d^m·t^m.
func substituteLine(f algebra.BiPoly, x0, x1 algebra.Gaussian) []lineCoeff {
	d := x1.Sub(x0)
	degX := f.DegX()
	x0pow := powerTable(x0, degX)
	dpow := powerTable(d, degX)

	var out []lineCoeff
	for _, term := range f.Terms() {
		j := term.DegX
		for m := 0; m <= j; m++ {
			binom := new(big.Int).Binomial(int64(j), int64(m))
			c := term.Coeff.
				Mul(algebra.NewGaussian(new(big.Rat).SetInt(binom), nil)).
				Mul(x0pow[j-m]).
				Mul(dpow[m])
			if c.IsZero() {
				continue
			}
			out = append(out, lineCoeff{degT: m, degY: term.DegY, c: c})
		}
	}
	return out
}

func powerTable(g algebra.Gaussian, max int) []algebra.Gaussian {
	pow := make([]algebra.Gaussian, max+1)
	pow[0] = algebra.One()
	for k := 1; k <= max; k++ {
		pow[k] = pow[k-1].Mul(g)
	}
	return pow
}

// intervalRecords encloses the exact coefficients at prec bits.
func intervalRecords(coeffs []lineCoeff, prec uint) []numeric.CoeffRecord {
	recs := make([]numeric.CoeffRecord, len(coeffs))
	for i, lc := range coeffs {
		recs[i] = numeric.CoeffRecord{
			DegT: lc.degT,
			DegY: lc.degY,
			Coeff: numeric.Complex{
				Re: numeric.IntervalFromRat(prec, lc.c.Re()),
				Im: numeric.IntervalFromRat(prec, lc.c.Im()),
			},
		}
	}
	return recs
}

// FollowStrand tracks the fiber root starting at y0 over the fiber of x0
// as x moves linearly to x1. Certification failures inside the kernel
// are retried with doubled working precision; once the precision would
// exceed maxPrec the failure is surfaced as ErrCodePrecisionExhausted.
func FollowStrand(f algebra.BiPoly, x0, x1 algebra.Gaussian, y0 complex128, prec, maxPrec uint) (Strand, error) {
	coeffs := substituteLine(f, x0, x1)
	degY := f.DegY()

	for p := prec; ; p *= 2 {
		y0re := new(big.Float).SetPrec(p).SetFloat64(real(y0))
		y0im := new(big.Float).SetPrec(p).SetFloat64(imag(y0))
		samples, err := numeric.Track(degY, intervalRecords(coeffs, p), y0re, y0im, p)
		if err == nil {
			return Strand(samples), nil
		}
		if !stderrors.Is(err, numeric.ErrCertification) {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "tracking fiber root from %v", y0)
		}
		if p*2 > maxPrec {
			return nil, errors.Wrap(errors.ErrCodePrecisionExhausted, err,
				"certification still failing at %d bits (cap %d)", p, maxPrec)
		}
		observability.Tracker().OnPrecisionRetry(p * 2)
	}
}
