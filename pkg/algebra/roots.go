package algebra

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
)

// Root-finding collaborator: Durand–Kerner simultaneous iteration in
// complex128, followed by Newton polishing in big.Float at the caller's
// precision. Inputs are expected to be square-free; every caller in this
// module reduces to the square-free part first, so the roots are simple
// and the iteration is well conditioned.

const (
	dkMaxIter     = 800
	polishMaxIter = 64
)

// Roots returns approximations of all deg(p) complex roots of p, each
// polished by Newton's method at prec bits and rounded to complex128.
// It returns an error when the iteration fails to converge, which for
// square-free input indicates pathological coefficient scaling.
func (p UPoly) Roots(prec uint) ([]complex128, error) {
	d := p.Degree()
	if d <= 0 {
		return nil, nil
	}
	// monic complex128 coefficients
	lead := p.Lead().Complex128()
	coeffs := make([]complex128, d+1)
	for i := range p {
		coeffs[i] = p[i].Complex128() / lead
	}

	// Cauchy bound on root moduli
	bound := 0.0
	for i := 0; i < d; i++ {
		if m := cmplx.Abs(coeffs[i]); m > bound {
			bound = m
		}
	}
	bound++

	// initial guesses spread on a spiral inside the root bound
	roots := make([]complex128, d)
	seed := complex(0.4, 0.9)
	z := complex(bound*0.5, 0)
	for i := range roots {
		z *= seed
		roots[i] = z
	}

	eval := func(z complex128) complex128 {
		acc := complex(1, 0)
		for i := d - 1; i >= 0; i-- {
			acc = acc*z + coeffs[i]
		}
		return acc
	}

	converged := false
	for iter := 0; iter < dkMaxIter; iter++ {
		maxStep := 0.0
		for i := range roots {
			denom := complex(1, 0)
			for j := range roots {
				if j != i {
					denom *= roots[i] - roots[j]
				}
			}
			if denom == 0 {
				// coincident iterates: nudge apart and continue
				roots[i] += complex(1e-8*bound, 1e-8*bound)
				maxStep = math.Inf(1)
				continue
			}
			step := eval(roots[i]) / denom
			roots[i] -= step
			if s := cmplx.Abs(step); s > maxStep {
				maxStep = s
			}
		}
		if maxStep < 1e-13*(bound+1) {
			converged = true
			break
		}
	}
	if !converged {
		return nil, fmt.Errorf("root iteration did not converge for degree %d", d)
	}

	for i := range roots {
		roots[i] = p.polish(roots[i], prec)
	}
	return roots, nil
}

// polish refines an approximate root by Newton's method in big.Float at
// prec bits and returns the correctly rounded complex128.
func (p UPoly) polish(z0 complex128, prec uint) complex128 {
	d := p.Degree()
	if d <= 0 {
		return z0
	}
	cre := make([]*big.Float, d+1)
	cim := make([]*big.Float, d+1)
	for i := range p {
		cre[i], cim[i] = p[i].Floats(prec)
	}
	dp := p.Derivative()
	dre := make([]*big.Float, len(dp))
	dim := make([]*big.Float, len(dp))
	for i := range dp {
		dre[i], dim[i] = dp[i].Floats(prec)
	}

	zr := new(big.Float).SetPrec(prec).SetFloat64(real(z0))
	zi := new(big.Float).SetPrec(prec).SetFloat64(imag(z0))

	horner := func(re, im []*big.Float) (*big.Float, *big.Float) {
		ar := new(big.Float).SetPrec(prec)
		ai := new(big.Float).SetPrec(prec)
		for i := len(re) - 1; i >= 0; i-- {
			// (ar+i*ai)*(zr+i*zi) + c_i
			nr := new(big.Float).SetPrec(prec).Mul(ar, zr)
			nr.Sub(nr, new(big.Float).SetPrec(prec).Mul(ai, zi))
			ni := new(big.Float).SetPrec(prec).Mul(ar, zi)
			ni.Add(ni, new(big.Float).SetPrec(prec).Mul(ai, zr))
			ar = nr.Add(nr, re[i])
			ai = ni.Add(ni, im[i])
		}
		return ar, ai
	}

	for iter := 0; iter < polishMaxIter; iter++ {
		fr, fi := horner(cre, cim)
		gr, gi := horner(dre, dim)
		// step = f/g
		den := new(big.Float).SetPrec(prec).Mul(gr, gr)
		den.Add(den, new(big.Float).SetPrec(prec).Mul(gi, gi))
		if den.Sign() == 0 {
			break
		}
		sr := new(big.Float).SetPrec(prec).Mul(fr, gr)
		sr.Add(sr, new(big.Float).SetPrec(prec).Mul(fi, gi))
		sr.Quo(sr, den)
		si := new(big.Float).SetPrec(prec).Mul(fi, gr)
		si.Sub(si, new(big.Float).SetPrec(prec).Mul(fr, gi))
		si.Quo(si, den)
		zr.Sub(zr, sr)
		zi.Sub(zi, si)

		stepR, _ := sr.Float64()
		stepI, _ := si.Float64()
		zrF, _ := zr.Float64()
		ziF, _ := zi.Float64()
		scale := math.Hypot(zrF, ziF) + 1
		if math.Hypot(stepR, stepI) < 1e-17*scale {
			break
		}
	}

	zrF, _ := zr.Float64()
	ziF, _ := zi.Float64()
	return complex(zrF, ziF)
}
