package algebra

// Square-free reduction of a bivariate polynomial with respect to y.
// The computation runs over the field of rational functions in x: a
// polynomial in y with ratFunc coefficients is a Euclidean domain, so
// the plain Euclidean GCD applies. The result is cleared of denominators
// and its coefficient content reduced to its square-free part, so
// x-only factors survive with multiplicity one.

// ratFunc is a reduced quotient of two univariate polynomials in x.
// The denominator is kept monic and the fraction in lowest terms.
type ratFunc struct {
	num UPoly
	den UPoly
}

func rfZero() ratFunc { return ratFunc{num: nil, den: UPolyConst(One())} }

func rfFromPoly(p UPoly) ratFunc { return ratFunc{num: p, den: UPolyConst(One())} }

func (a ratFunc) isZero() bool { return a.num.IsZero() }

func (a ratFunc) reduce() ratFunc {
	if a.num.IsZero() {
		return rfZero()
	}
	g := a.num.GCD(a.den)
	if g.Degree() > 0 {
		a.num, _ = a.num.Div(g)
		a.den, _ = a.den.Div(g)
	}
	// keep the denominator monic by moving its leading unit to num
	lc := a.den.Lead()
	if !lc.Equal(One()) {
		inv := lc.Inv()
		a.num = a.num.Scale(inv)
		a.den = a.den.Scale(inv)
	}
	return a
}

func (a ratFunc) add(b ratFunc) ratFunc {
	return ratFunc{
		num: a.num.Mul(b.den).Add(b.num.Mul(a.den)),
		den: a.den.Mul(b.den),
	}.reduce()
}

func (a ratFunc) mul(b ratFunc) ratFunc {
	return ratFunc{num: a.num.Mul(b.num), den: a.den.Mul(b.den)}.reduce()
}

func (a ratFunc) neg() ratFunc {
	return ratFunc{num: a.num.Neg(), den: a.den}
}

func (a ratFunc) inv() ratFunc {
	if a.isZero() {
		panic("algebra: inverse of zero rational function")
	}
	return ratFunc{num: a.den, den: a.num}.reduce()
}

// yRat is a polynomial in y with rational-function coefficients,
// normalized like UPoly (trailing zeros trimmed).
type yRat []ratFunc

func yRatFromBiPoly(f BiPoly) yRat {
	r := make(yRat, len(f))
	for i := range f {
		r[i] = rfFromPoly(f[i])
	}
	return r.normalize()
}

func (p yRat) normalize() yRat {
	n := len(p)
	for n > 0 && p[n-1].isZero() {
		n--
	}
	return p[:n]
}

func (p yRat) degree() int { return len(p) - 1 }

func (p yRat) derivative() yRat {
	if len(p) <= 1 {
		return nil
	}
	r := make(yRat, len(p)-1)
	for i := 1; i < len(p); i++ {
		r[i-1] = p[i].mul(rfFromPoly(UPolyConst(GaussianInt(int64(i), 0))))
	}
	return r.normalize()
}

func (p yRat) quoRem(q yRat) (quo, rem yRat) {
	if len(q) == 0 {
		panic("algebra: division by zero polynomial in y")
	}
	rem = make(yRat, len(p))
	copy(rem, p)
	if p.degree() < q.degree() {
		return nil, rem
	}
	quo = make(yRat, p.degree()-q.degree()+1)
	for i := range quo {
		quo[i] = rfZero()
	}
	lcInv := q[len(q)-1].inv()
	for rem.degree() >= q.degree() {
		shift := rem.degree() - q.degree()
		c := rem[len(rem)-1].mul(lcInv)
		quo[shift] = c
		next := make(yRat, len(rem))
		copy(next, rem)
		for i := range q {
			next[i+shift] = next[i+shift].add(q[i].mul(c).neg())
		}
		rem = next.normalize()
	}
	return quo.normalize(), rem
}

func (p yRat) gcd(q yRat) yRat {
	a, b := p.normalize(), q.normalize()
	for len(b) > 0 {
		_, r := a.quoRem(b)
		a, b = b, r
	}
	// normalize to a monic polynomial in y
	if len(a) > 0 {
		lcInv := a[len(a)-1].inv()
		for i := range a {
			a[i] = a[i].mul(lcInv)
		}
	}
	return a
}

// clearDenominators converts a y-polynomial over rational functions back
// to a BiPoly by multiplying through by the LCM of the denominators. The
// coefficient content is reduced to its square-free part rather than
// divided out: an x-only factor is a vertical component of the curve and
// must stay in the zero set.
func (p yRat) clearDenominators() BiPoly {
	if len(p) == 0 {
		return nil
	}
	lcm := UPolyConst(One())
	for _, c := range p {
		g := lcm.GCD(c.den)
		q, _ := c.den.Div(g)
		lcm = lcm.Mul(q)
	}
	coeffs := make(BiPoly, len(p))
	for i, c := range p {
		m, _ := lcm.Div(c.den)
		coeffs[i] = c.num.Mul(m)
	}
	return coeffs.normalize().contentSquareFree()
}

// contentSquareFree reduces the GCD content of the coefficients to its
// square-free part, keeping one copy of every x-only factor.
func (f BiPoly) contentSquareFree() BiPoly {
	var content UPoly
	for _, c := range f {
		content = content.GCD(c)
	}
	if content.Degree() <= 0 {
		return f
	}
	drop, ok := content.Div(content.SquareFreePart())
	if !ok || drop.Degree() <= 0 {
		return f
	}
	out := make(BiPoly, len(f))
	for i, c := range f {
		out[i], _ = c.Div(drop)
	}
	return out.normalize()
}

// SquareFreePartY returns the radical of f as seen by the fibration:
// f divided by gcd(f, ∂f/∂y) over the rational function field in x,
// with denominators cleared and repeated x-only factors reduced to one
// copy. Every irreducible factor of f, vertical components included,
// divides the result exactly once.
func (f BiPoly) SquareFreePartY() BiPoly {
	if f.DegY() <= 0 {
		return f.contentSquareFree()
	}
	F := yRatFromBiPoly(f)
	G := F.gcd(F.derivative())
	if G.degree() <= 0 {
		return f.contentSquareFree()
	}
	quo, rem := F.quoRem(G)
	if len(rem) != 0 {
		panic("algebra: gcd does not divide polynomial in y")
	}
	return quo.clearDenominators()
}

// IsSquareFreeY reports whether f has no repeated factor in y, i.e.
// whether gcd(f, ∂f/∂y) is constant in y.
func (f BiPoly) IsSquareFreeY() bool {
	if f.DegY() <= 0 {
		return true
	}
	F := yRatFromBiPoly(f)
	return F.gcd(F.derivative()).degree() <= 0
}
