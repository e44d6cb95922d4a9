package algebra

import (
	"math/big"
	"strconv"
	"strings"
)

// BiPoly is a bivariate polynomial f(x,y) over the Gaussian rationals,
// stored as univariate polynomials in x: BiPoly[i] is the coefficient of
// y^i. The slice is normalized so the top coefficient is nonzero; the
// zero polynomial is the empty slice.
type BiPoly []UPoly

// Term is one monomial of a bivariate polynomial.
type Term struct {
	Coeff Gaussian
	DegX  int
	DegY  int
}

// NewBiPoly builds a polynomial from y-coefficients, lowest degree first.
func NewBiPoly(yCoeffs ...UPoly) BiPoly {
	return BiPoly(yCoeffs).normalize()
}

// BiPolyFromTerms accumulates monomials into a polynomial. Terms with
// equal degrees are summed.
func BiPolyFromTerms(terms []Term) BiPoly {
	degY := 0
	for _, t := range terms {
		if t.DegY > degY {
			degY = t.DegY
		}
	}
	rows := make([][]Gaussian, degY+1)
	for _, t := range terms {
		row := rows[t.DegY]
		for len(row) <= t.DegX {
			row = append(row, Zero())
		}
		row[t.DegX] = row[t.DegX].Add(t.Coeff)
		rows[t.DegY] = row
	}
	f := make(BiPoly, degY+1)
	for i, row := range rows {
		f[i] = NewUPoly(row...)
	}
	return f.normalize()
}

func (f BiPoly) normalize() BiPoly {
	n := len(f)
	for n > 0 && f[n-1].IsZero() {
		n--
	}
	return f[:n]
}

// IsZero reports whether f is the zero polynomial.
func (f BiPoly) IsZero() bool { return len(f) == 0 }

// DegY returns the degree of f in y, or -1 for the zero polynomial.
func (f BiPoly) DegY() int { return len(f) - 1 }

// DegX returns the degree of f in x, or -1 for the zero polynomial.
func (f BiPoly) DegX() int {
	d := -1
	for _, p := range f {
		if p.Degree() > d {
			d = p.Degree()
		}
	}
	return d
}

// TotalDegree returns the maximum of DegX(term)+DegY(term) over all
// nonzero monomials, or -1 for the zero polynomial.
func (f BiPoly) TotalDegree() int {
	d := -1
	for i, p := range f {
		for j := range p {
			if !p[j].IsZero() && i+j > d {
				d = i + j
			}
		}
	}
	return d
}

// LeadY returns the coefficient of y^DegY, a polynomial in x.
// It panics on the zero polynomial.
func (f BiPoly) LeadY() UPoly {
	if len(f) == 0 {
		panic("algebra: leading coefficient of zero polynomial")
	}
	return f[len(f)-1]
}

// Equal reports exact equality.
func (f BiPoly) Equal(g BiPoly) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if !f[i].Equal(g[i]) {
			return false
		}
	}
	return true
}

// DerivativeY returns ∂f/∂y.
func (f BiPoly) DerivativeY() BiPoly {
	if len(f) <= 1 {
		return nil
	}
	r := make(BiPoly, len(f)-1)
	for i := 1; i < len(f); i++ {
		r[i-1] = f[i].Scale(GaussianInt(int64(i), 0))
	}
	return r.normalize()
}

// EvalX substitutes an exact value for x, returning the fiber polynomial
// in y over the Gaussian rationals.
func (f BiPoly) EvalX(x Gaussian) UPoly {
	coeffs := make([]Gaussian, len(f))
	for i, p := range f {
		coeffs[i] = p.Eval(x)
	}
	return NewUPoly(coeffs...)
}

// Shear substitutes x -> x+y, the generic coordinate change used to keep
// the y-degree equal to the fiber root count.
func (f BiPoly) Shear() BiPoly {
	var terms []Term
	for i, p := range f {
		for j := range p {
			if p[j].IsZero() {
				continue
			}
			// x^j -> sum_m C(j,m) x^m y^(j-m)
			for m := 0; m <= j; m++ {
				c := new(big.Rat).SetInt(new(big.Int).Binomial(int64(j), int64(m)))
				terms = append(terms, Term{
					Coeff: p[j].Mul(NewGaussian(c, nil)),
					DegX:  m,
					DegY:  i + j - m,
				})
			}
		}
	}
	return BiPolyFromTerms(terms)
}

// Terms returns the nonzero monomials of f in deterministic
// (DegY, DegX) order.
func (f BiPoly) Terms() []Term {
	var terms []Term
	for i, p := range f {
		for j := range p {
			if !p[j].IsZero() {
				terms = append(terms, Term{Coeff: p[j], DegX: j, DegY: i})
			}
		}
	}
	return terms
}

// String formats f with y-degree descending, e.g. "y^3 + (x^3) + (-1)".
func (f BiPoly) String() string {
	if f.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(f) - 1; i >= 0; i-- {
		if f[i].IsZero() {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		switch {
		case i == 0:
			b.WriteString("(" + f[i].String() + ")")
		case f[i].Equal(UPolyConst(One())):
			b.WriteString("y")
		default:
			b.WriteString("(" + f[i].String() + ")y")
		}
		if i > 1 {
			b.WriteString("^")
			b.WriteString(strconv.Itoa(i))
		}
	}
	return b.String()
}
