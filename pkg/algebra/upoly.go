package algebra

import (
	"strconv"
	"strings"
)

// UPoly is a dense univariate polynomial over the Gaussian rationals.
// UPoly[i] is the coefficient of X^i. The representation is normalized:
// trailing zero coefficients are trimmed, and the zero polynomial is the
// empty slice. Construct values with NewUPoly or the arithmetic methods,
// all of which return normalized results.
type UPoly []Gaussian

// NewUPoly builds a polynomial from low-to-high coefficients.
func NewUPoly(coeffs ...Gaussian) UPoly {
	return UPoly(coeffs).normalize()
}

// UPolyConst returns the constant polynomial c.
func UPolyConst(c Gaussian) UPoly {
	return NewUPoly(c)
}

func (p UPoly) normalize() UPoly {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p UPoly) Degree() int { return len(p) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p UPoly) IsZero() bool { return len(p) == 0 }

// IsConst reports whether p has degree at most zero.
func (p UPoly) IsConst() bool { return len(p) <= 1 }

// Lead returns the leading coefficient. It panics on the zero polynomial.
func (p UPoly) Lead() Gaussian {
	if len(p) == 0 {
		panic("algebra: leading coefficient of zero polynomial")
	}
	return p[len(p)-1]
}

// Clone returns a copy sharing no backing storage with p.
func (p UPoly) Clone() UPoly {
	q := make(UPoly, len(p))
	copy(q, p)
	return q
}

// Equal reports exact coefficient-wise equality.
func (p UPoly) Equal(q UPoly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p UPoly) Add(q UPoly) UPoly {
	n := max(len(p), len(q))
	r := make(UPoly, n)
	for i := range r {
		switch {
		case i >= len(p):
			r[i] = q[i]
		case i >= len(q):
			r[i] = p[i]
		default:
			r[i] = p[i].Add(q[i])
		}
	}
	return r.normalize()
}

// Sub returns p - q.
func (p UPoly) Sub(q UPoly) UPoly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p UPoly) Neg() UPoly {
	r := make(UPoly, len(p))
	for i := range p {
		r[i] = p[i].Neg()
	}
	return r
}

// Scale returns c * p.
func (p UPoly) Scale(c Gaussian) UPoly {
	if c.IsZero() {
		return nil
	}
	r := make(UPoly, len(p))
	for i := range p {
		r[i] = p[i].Mul(c)
	}
	return r.normalize()
}

// Mul returns p * q.
func (p UPoly) Mul(q UPoly) UPoly {
	if p.IsZero() || q.IsZero() {
		return nil
	}
	r := make(UPoly, len(p)+len(q)-1)
	for i := range r {
		r[i] = Zero()
	}
	for i := range p {
		if p[i].IsZero() {
			continue
		}
		for j := range q {
			r[i+j] = r[i+j].Add(p[i].Mul(q[j]))
		}
	}
	return r.normalize()
}

// ShiftMul returns p * X^k.
func (p UPoly) ShiftMul(k int) UPoly {
	if p.IsZero() {
		return nil
	}
	r := make(UPoly, len(p)+k)
	for i := 0; i < k; i++ {
		r[i] = Zero()
	}
	copy(r[k:], p)
	return r
}

// QuoRem divides p by q over the field of Gaussian rationals, returning
// quotient and remainder with deg rem < deg q. It panics if q is zero.
func (p UPoly) QuoRem(q UPoly) (quo, rem UPoly) {
	if q.IsZero() {
		panic("algebra: division by zero polynomial")
	}
	rem = p.Clone()
	if p.Degree() < q.Degree() {
		return nil, rem
	}
	quo = make(UPoly, p.Degree()-q.Degree()+1)
	for i := range quo {
		quo[i] = Zero()
	}
	lcInv := q.Lead().Inv()
	for rem.Degree() >= q.Degree() {
		shift := rem.Degree() - q.Degree()
		c := rem.Lead().Mul(lcInv)
		quo[shift] = c
		rem = rem.Sub(q.Scale(c).ShiftMul(shift))
	}
	return quo.normalize(), rem.normalize()
}

// Div returns p / q when the division is exact. The second result is
// false if q does not divide p.
func (p UPoly) Div(q UPoly) (UPoly, bool) {
	quo, rem := p.QuoRem(q)
	if !rem.IsZero() {
		return nil, false
	}
	return quo, true
}

// Monic returns p scaled so its leading coefficient is 1.
// The zero polynomial is returned unchanged.
func (p UPoly) Monic() UPoly {
	if p.IsZero() {
		return p
	}
	return p.Scale(p.Lead().Inv())
}

// GCD returns the monic greatest common divisor of p and q, computed by
// the Euclidean algorithm over the Gaussian rationals.
func (p UPoly) GCD(q UPoly) UPoly {
	a, b := p.Clone(), q.Clone()
	for !b.IsZero() {
		_, r := a.QuoRem(b)
		a, b = b, r
	}
	return a.Monic()
}

// Derivative returns dp/dX.
func (p UPoly) Derivative() UPoly {
	if len(p) <= 1 {
		return nil
	}
	r := make(UPoly, len(p)-1)
	for i := 1; i < len(p); i++ {
		r[i-1] = p[i].Mul(GaussianInt(int64(i), 0))
	}
	return r.normalize()
}

// SquareFreePart returns p / gcd(p, p'), the product of the distinct
// irreducible factors of p, normalized to be monic.
func (p UPoly) SquareFreePart() UPoly {
	if p.Degree() <= 0 {
		return p.Monic()
	}
	g := p.GCD(p.Derivative())
	if g.Degree() <= 0 {
		return p.Monic()
	}
	q, ok := p.Div(g)
	if !ok {
		// gcd always divides; reaching this indicates a bug upstream.
		panic("algebra: gcd does not divide polynomial")
	}
	return q.Monic()
}

// Eval evaluates p at the exact point v by Horner's rule.
func (p UPoly) Eval(v Gaussian) Gaussian {
	acc := Zero()
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc.Mul(v).Add(p[i])
	}
	return acc
}

// EvalComplex evaluates p at a complex128 point by Horner's rule.
func (p UPoly) EvalComplex(v complex128) complex128 {
	var acc complex128
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*v + p[i].Complex128()
	}
	return acc
}

// String formats p in the variable "x", lowest degree first omitted,
// e.g. "x^3-2/3x+1".
func (p UPoly) String() string { return p.format("x") }

func (p UPoly) format(v string) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].IsZero() {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		switch {
		case i == 0:
			b.WriteString("(" + p[i].String() + ")")
		case p[i].Equal(One()):
			b.WriteString(v)
		default:
			b.WriteString("(" + p[i].String() + ")" + v)
		}
		if i > 1 {
			b.WriteString("^")
			b.WriteString(strconv.Itoa(i))
		}
	}
	return b.String()
}
